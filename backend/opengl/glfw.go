package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/engine"
)

// Init initializes GLFW. It must be called from the main thread, which the
// caller keeps locked with runtime.LockOSThread.
func Init() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	return nil
}

// Terminate destroys remaining windows and releases GLFW.
func Terminate() {
	glfw.Terminate()
}

// Window is a GLFW window with a current OpenGL core context. It implements
// engine.Window.
type Window struct {
	window   *glfw.Window
	onResize func(width, height int)
}

var _ engine.Window = (*Window)(nil)

// WindowOption configures NewWindow.
type WindowOption func(*windowOptions)

type windowOptions struct {
	hidden bool
}

// Hidden creates the window invisible. Used for offscreen contexts in tests.
func Hidden() WindowOption {
	return func(o *windowOptions) { o.hidden = true }
}

// NewWindow creates the window, makes its context current and loads the GL
// function pointers. Init must have succeeded.
func NewWindow(cfg engine.WindowConfig, opts ...WindowOption) (*Window, error) {
	var o windowOptions
	for _, opt := range opts {
		opt(&o)
	}

	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, boolHint(cfg.Resizable))
	glfw.WindowHint(glfw.Visible, boolHint(!o.hidden))

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	w := &Window{window: window}
	window.SetFramebufferSizeCallback(w.framebufferSizeCallback)
	return w, nil
}

// OnResize sets the function called with the new framebuffer size whenever
// the window is resized.
func (w *Window) OnResize(fn func(width, height int)) {
	w.onResize = fn
}

func (w *Window) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	if w.onResize != nil {
		w.onResize(width, height)
	}
}

// FramebufferSize returns the framebuffer size in pixels.
func (w *Window) FramebufferSize() (width, height int) {
	return w.window.GetFramebufferSize()
}

// KeyDown reports whether key is pressed.
func (w *Window) KeyDown(key engine.Key) bool {
	glfwKey, ok := engineKeyToGLFW(key)
	if !ok {
		return false
	}
	return w.window.GetKey(glfwKey) == glfw.Press
}

// ShouldClose reports whether the close flag is set.
func (w *Window) ShouldClose() bool {
	return w.window.ShouldClose()
}

// SetShouldClose sets the close flag.
func (w *Window) SetShouldClose(value bool) {
	w.window.SetShouldClose(value)
}

// SwapBuffers presents the back buffer.
func (w *Window) SwapBuffers() {
	w.window.SwapBuffers()
}

// PollEvents processes pending window events.
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// Destroy destroys the window and its context.
func (w *Window) Destroy() {
	if w.window != nil {
		w.window.Destroy()
		w.window = nil
	}
}

// engineKeyToGLFW maps engine keys to GLFW keys.
func engineKeyToGLFW(key engine.Key) (glfw.Key, bool) {
	switch key {
	case engine.KeyEscape:
		return glfw.KeyEscape, true
	case engine.Key1:
		return glfw.Key1, true
	case engine.Key2:
		return glfw.Key2, true
	default:
		return glfw.KeyUnknown, false
	}
}

func boolHint(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}
