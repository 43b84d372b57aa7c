// Package opengl provides the OpenGL 3.3 core and GLFW backend for the
// engine package.
package opengl

import (
	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/go-theft-auto/engine"
)

// Renderer issues the per-frame GL commands of the demo programs.
type Renderer struct {
	mode engine.PolygonMode
}

// NewRenderer creates a renderer and sets the initial viewport.
// A GL context must be current.
func NewRenderer(width, height int) *Renderer {
	r := &Renderer{}
	r.SetViewport(width, height)
	return r
}

// SetViewport maps normalized device coordinates to the framebuffer.
func (r *Renderer) SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Clear fills the color buffer.
func (r *Renderer) Clear(c engine.Color) {
	gl.ClearColor(c.R, c.G, c.B, c.A)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// SetPolygonMode switches between filled and wireframe triangles for both
// faces.
func (r *Renderer) SetPolygonMode(mode engine.PolygonMode) {
	r.mode = mode
	if mode == engine.PolygonLine {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

// PolygonMode returns the last mode set.
func (r *Renderer) PolygonMode() engine.PolygonMode {
	return r.mode
}

// DrawMesh binds p, sets its color uniform and draws m. An unlinked program
// is still bound; the driver then draws nothing.
func (r *Renderer) DrawMesh(p engine.Program, uniform string, color engine.Color, m *Mesh) {
	if p.ID == 0 || m == nil {
		return
	}

	loc := gl.GetUniformLocation(p.ID, gl.Str(uniform+"\x00"))
	gl.UseProgram(p.ID)
	gl.Uniform4f(loc, color.R, color.G, color.B, color.A)

	gl.BindVertexArray(m.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}
