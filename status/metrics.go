package status

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"github.com/gogpu/sketch"
)

// Metrics exports frame statistics to Prometheus.
type Metrics struct {
	frames    prometheus.Counter
	drawCalls prometheus.Counter
	shapes    prometheus.Gauge
	frameTime prometheus.Histogram
}

// NewMetrics registers the sketch metrics with reg. A nil reg uses
// prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Metrics{
		frames: f.NewCounter(prometheus.CounterOpts{
			Name: "sketch_frames_total",
			Help: "Number of full canvas redraws",
		}),
		drawCalls: f.NewCounter(prometheus.CounterOpts{
			Name: "sketch_draw_calls_total",
			Help: "Number of primitives submitted to the surface",
		}),
		shapes: f.NewGauge(prometheus.GaugeOpts{
			Name: "sketch_shapes",
			Help: "Number of shapes in the registry at the last redraw",
		}),
		frameTime: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "sketch_frame_seconds",
			Help:    "Wall-clock time of a full redraw",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
	}
}

// Report implements sketch.StatusSink.
func (m *Metrics) Report(s sketch.Status) {
	m.frames.Inc()
	m.drawCalls.Add(float64(s.DrawCalls))
	m.shapes.Set(float64(s.Shapes))
	m.frameTime.Observe(s.Elapsed.Seconds())
}

// WriteText writes every metric family gathered from g in the Prometheus
// text exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
