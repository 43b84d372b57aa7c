package opengl

import (
	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/go-theft-auto/engine"
)

// Compiler implements engine.Compiler on the current GL context.
type Compiler struct{}

var _ engine.Compiler = Compiler{}

// CompileShader compiles one shader stage.
func (Compiler) CompileShader(stage engine.ShaderStage, source string) (uint32, bool, string) {
	shader := gl.CreateShader(shaderType(stage))
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		return shader, false, readInfoLog(logLength, func(n int32, buf *uint8) {
			gl.GetShaderInfoLog(shader, n, nil, buf)
		})
	}

	return shader, true, ""
}

// LinkProgram links the vertex and fragment stages into a program.
func (Compiler) LinkProgram(vertex, fragment uint32) (uint32, bool, string) {
	program := gl.CreateProgram()
	gl.AttachShader(program, vertex)
	gl.AttachShader(program, fragment)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		return program, false, readInfoLog(logLength, func(n int32, buf *uint8) {
			gl.GetProgramInfoLog(program, n, nil, buf)
		})
	}

	return program, true, ""
}

// DeleteShader deletes a stage object. Stages attached to a program are
// freed once the program is deleted.
func (Compiler) DeleteShader(shader uint32) {
	if shader != 0 {
		gl.DeleteShader(shader)
	}
}

// DeleteProgram releases a program built by engine.BuildProgram.
func DeleteProgram(p engine.Program) {
	if p.ID != 0 {
		gl.DeleteProgram(p.ID)
	}
}

func shaderType(stage engine.ShaderStage) uint32 {
	if stage == engine.StageFragment {
		return gl.FRAGMENT_SHADER
	}
	return gl.VERTEX_SHADER
}

// readInfoLog reads at most engine.MaxInfoLogLength bytes of a driver log.
func readInfoLog(length int32, read func(n int32, buf *uint8)) string {
	if length <= 0 {
		return ""
	}
	if length > engine.MaxInfoLogLength {
		length = engine.MaxInfoLogLength
	}
	log := make([]byte, length+1)
	read(length, &log[0])
	return gl.GoStr(&log[0])
}
