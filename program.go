package sketch

import (
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/ir"
)

// Names of the shader variables a RenderPass writes.
const (
	AttrPosition          = "a_Position"
	UniformFragColor      = "u_FragColor"
	UniformSize           = "u_Size"
	UniformModelMatrix    = "u_ModelMatrix"
	UniformGlobalRotation = "u_GlobalRotateMatrix"
)

// ShapeShader is the WGSL program every shape is drawn with: a position
// attribute transformed by the model and global rotation matrices, and a
// flat fragment color. u_Size carries the point-sprite size for backends
// that rasterize point lists themselves.
const ShapeShader = `
@group(0) @binding(0) var<uniform> u_FragColor: vec4<f32>;
@group(0) @binding(1) var<uniform> u_Size: f32;
@group(0) @binding(2) var<uniform> u_ModelMatrix: mat4x4<f32>;
@group(0) @binding(3) var<uniform> u_GlobalRotateMatrix: mat4x4<f32>;

@vertex
fn vs_main(@location(0) a_Position: vec4<f32>) -> @builtin(position) vec4<f32> {
    return u_GlobalRotateMatrix * u_ModelMatrix * a_Position;
}

@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return u_FragColor;
}
`

// Location identifies a uniform by its bind group and binding index.
type Location struct {
	Group   uint32
	Binding uint32
}

// Program is a compiled shape shader with its variable locations resolved.
type Program struct {
	spirv      []byte
	uniforms   map[string]Location
	attributes map[string]uint32
}

// CompileProgram parses, validates and compiles WGSL source to SPIR-V and
// indexes its uniforms and vertex attributes by name.
func CompileProgram(source string) (*Program, error) {
	ast, err := naga.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("sketch: shader: %w", err)
	}
	module, err := naga.LowerWithSource(ast, source)
	if err != nil {
		return nil, fmt.Errorf("sketch: shader: %w", err)
	}
	spirv, err := naga.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("sketch: shader: %w", err)
	}

	p := &Program{
		spirv:      spirv,
		uniforms:   make(map[string]Location),
		attributes: make(map[string]uint32),
	}
	for _, gv := range module.GlobalVariables {
		if gv.Space != ir.SpaceUniform || gv.Binding == nil {
			continue
		}
		p.uniforms[gv.Name] = Location{Group: gv.Binding.Group, Binding: gv.Binding.Binding}
	}
	for _, ep := range module.EntryPoints {
		if ep.Stage != ir.StageVertex {
			continue
		}
		for _, arg := range ep.Function.Arguments {
			if arg.Binding == nil {
				continue
			}
			switch b := (*arg.Binding).(type) {
			case ir.LocationBinding:
				p.attributes[arg.Name] = b.Location
			case *ir.LocationBinding:
				p.attributes[arg.Name] = b.Location
			}
		}
	}
	return p, nil
}

// UniformLocation returns the location of the named uniform.
func (p *Program) UniformLocation(name string) (Location, bool) {
	loc, ok := p.uniforms[name]
	return loc, ok
}

// AttribLocation returns the vertex input location of the named attribute.
func (p *Program) AttribLocation(name string) (uint32, bool) {
	loc, ok := p.attributes[name]
	return loc, ok
}

// SPIRV returns the compiled module.
func (p *Program) SPIRV() []byte {
	return p.spirv
}

// BindingError reports a shader variable the program does not declare.
type BindingError struct {
	Kind string // "attribute" or "uniform"
	Name string
}

func (e *BindingError) Error() string {
	return "sketch: failed to get the storage location of " + e.Kind + " " + e.Name
}

// Bindings are the resolved locations a RenderPass writes every draw.
type Bindings struct {
	Position       uint32
	FragColor      Location
	Size           Location
	ModelMatrix    Location
	GlobalRotation Location
}

// Bind resolves every variable a RenderPass needs. The first missing
// variable is reported as a *BindingError.
func (p *Program) Bind() (Bindings, error) {
	var b Bindings
	pos, ok := p.AttribLocation(AttrPosition)
	if !ok {
		return b, &BindingError{Kind: "attribute", Name: AttrPosition}
	}
	b.Position = pos

	for _, u := range []struct {
		name string
		dst  *Location
	}{
		{UniformFragColor, &b.FragColor},
		{UniformSize, &b.Size},
		{UniformModelMatrix, &b.ModelMatrix},
		{UniformGlobalRotation, &b.GlobalRotation},
	} {
		loc, ok := p.UniformLocation(u.name)
		if !ok {
			return b, &BindingError{Kind: "uniform", Name: u.name}
		}
		*u.dst = loc
	}
	return b, nil
}
