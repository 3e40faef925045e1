package shader

// Attribute locations shared by every program.
const (
	PositionAttrib = 0
	ColorAttrib    = 1
)

// ColorUniform is the vec4 uniform read by the flat-uniform program.
const ColorUniform = "uColor"

// ────────────────────────────────── Desktop GL ──────────────────────────────────

const positionVertexSourceGL = `#version 410 core
layout (location = 0) in vec2 position;
void main() {
    gl_Position = vec4(position, 0.0, 1.0);
}
`

const flatConstFragmentSourceGL = `#version 410 core
out vec4 fragColor;
void main() {
    fragColor = vec4(0.1, 0.7, 0.9, 1.0);
}
`

const flatUniformFragmentSourceGL = `#version 410 core
out vec4 fragColor;
uniform vec4 uColor;
void main() {
    fragColor = uColor;
}
`

const gradientVertexSourceGL = `#version 410 core
layout (location = 0) in vec2 position;
layout (location = 1) in vec3 vColor;
out vec3 color;
void main() {
    gl_Position = vec4(position, 0.0, 1.0);
    color = vColor;
}
`

const gradientFragmentSourceGL = `#version 410 core
in vec3 color;
out vec4 fragColor;
void main() {
    fragColor = vec4(color, 1.0);
}
`

// ──────────────────────────────────── GLES ──────────────────────────────────────
// These double as the WebGL2 input of the translator.

const positionVertexSourceGLES = `#version 300 es
layout (location = 0) in vec2 position;
void main() {
    gl_Position = vec4(position, 0.0, 1.0);
}
`

const flatConstFragmentSourceGLES = `#version 300 es
precision mediump float;
out vec4 fragColor;
void main() {
    fragColor = vec4(0.1, 0.7, 0.9, 1.0);
}
`

const flatUniformFragmentSourceGLES = `#version 300 es
precision mediump float;
out vec4 fragColor;
uniform vec4 uColor;
void main() {
    fragColor = uColor;
}
`

const gradientVertexSourceGLES = `#version 300 es
layout (location = 0) in vec2 position;
layout (location = 1) in vec3 vColor;
out vec3 color;
void main() {
    gl_Position = vec4(position, 0.0, 1.0);
    color = vColor;
}
`

const gradientFragmentSourceGLES = `#version 300 es
precision mediump float;
in vec3 color;
out vec4 fragColor;
void main() {
    fragColor = vec4(color, 1.0);
}
`

// ────────────────────────────────── Public API ─────────────────────────────────

// Kind identifies one of the three demo programs.
type Kind int

const (
	FlatConstant Kind = iota
	FlatUniform
	Gradient
)

// Kinds lists every program in build order.
var Kinds = []Kind{FlatConstant, FlatUniform, Gradient}

func (k Kind) String() string {
	switch k {
	case FlatConstant:
		return "flat-constant"
	case FlatUniform:
		return "flat-uniform"
	case Gradient:
		return "gradient"
	}
	return "unknown"
}

// Source is a vertex/fragment pair plus the uniforms the program exposes.
type Source struct {
	Vertex   string
	Fragment string
	Uniforms []string
}

// GetSource returns the sources for a program in the requested dialect.
func GetSource(k Kind, isGLES bool) Source {
	switch k {
	case FlatUniform:
		if isGLES {
			return Source{positionVertexSourceGLES, flatUniformFragmentSourceGLES, []string{ColorUniform}}
		}
		return Source{positionVertexSourceGL, flatUniformFragmentSourceGL, []string{ColorUniform}}
	case Gradient:
		if isGLES {
			return Source{Vertex: gradientVertexSourceGLES, Fragment: gradientFragmentSourceGLES}
		}
		return Source{Vertex: gradientVertexSourceGL, Fragment: gradientFragmentSourceGL}
	default:
		if isGLES {
			return Source{Vertex: positionVertexSourceGLES, Fragment: flatConstFragmentSourceGLES}
		}
		return Source{Vertex: positionVertexSourceGL, Fragment: flatConstFragmentSourceGL}
	}
}
