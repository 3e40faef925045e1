package gpu

import (
	"fmt"
	"strings"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/richinsley/goshapes/shader"
)

// Compiler builds shader programs on the current context.
type Compiler struct{}

var stageTypes = map[shader.Stage]uint32{
	shader.VertexStage:   gl.VERTEX_SHADER,
	shader.FragmentStage: gl.FRAGMENT_SHADER,
}

func (Compiler) CompileShader(stage shader.Stage, source string) (uint32, error) {
	sh := gl.CreateShader(stageTypes[stage])
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(sh, 1, csources, nil)
	free()
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(sh, logLength, nil, gl.Str(logText))
		return sh, fmt.Errorf("failed to compile %s shader: %v", stage, strings.TrimRight(logText, "\x00\n"))
	}
	return sh, nil
}

func (Compiler) LinkProgram(vertexShader, fragmentShader uint32) (uint32, error) {
	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		return program, fmt.Errorf("failed to link program: %v", strings.TrimRight(log, "\x00\n"))
	}
	// Detach so deleting the shaders frees them right away.
	gl.DetachShader(program, vertexShader)
	gl.DetachShader(program, fragmentShader)
	return program, nil
}

func (Compiler) DeleteShader(sh uint32) {
	if sh != 0 {
		gl.DeleteShader(sh)
	}
}

func (Compiler) DeleteProgram(program uint32) {
	if program != 0 {
		gl.DeleteProgram(program)
	}
}

func (Compiler) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}
