package opengl_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"testing"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/go-theft-auto/engine"
	"github.com/go-theft-auto/engine/backend/opengl"
	"github.com/go-theft-auto/engine/shaders"
)

// newTestWindow creates a hidden 64x64 window with a current context, or
// skips the test when no display is available.
func newTestWindow(t *testing.T) *opengl.Window {
	t.Helper()

	switch runtime.GOOS {
	case "darwin":
		t.Skip("GLFW must run on the process main thread on macOS")
	case "linux", "freebsd", "openbsd", "netbsd":
		if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
			t.Skip("no display")
		}
	}

	runtime.LockOSThread()
	if err := opengl.Init(); err != nil {
		runtime.UnlockOSThread()
		t.Skipf("GLFW unavailable: %v", err)
	}

	cfg := engine.DefaultConfig().Window
	cfg.Width, cfg.Height = 64, 64
	window, err := opengl.NewWindow(cfg, opengl.Hidden())
	if err != nil {
		opengl.Terminate()
		runtime.UnlockOSThread()
		t.Skipf("OpenGL %d.%d context unavailable: %v", cfg.GLMajor, cfg.GLMinor, err)
	}

	t.Cleanup(func() {
		window.Destroy()
		opengl.Terminate()
		runtime.UnlockOSThread()
	})
	return window
}

func testLogger(buf *bytes.Buffer) engine.LoopOption {
	return engine.WithLogger(engine.NewLogger(buf, slog.LevelDebug))
}

func TestUploadMeshRejectsInvalidMesh(t *testing.T) {
	_, err := opengl.UploadMesh(engine.Mesh{Vertices: []float32{0, 0}})
	var meshErr *engine.MeshError
	if !errors.As(err, &meshErr) {
		t.Errorf("UploadMesh() error = %v, want *MeshError", err)
	}

	if _, err := opengl.UploadMesh(engine.Mesh{Vertices: []float32{0, 0, 0}}); err == nil {
		t.Error("UploadMesh() without indices should fail")
	}
}

func TestBuildProgramLinks(t *testing.T) {
	newTestWindow(t)

	var logs bytes.Buffer
	p := engine.BuildProgram(opengl.Compiler{}, engine.EmbeddedShaderSources(), engine.NewLogger(&logs, slog.LevelInfo))
	defer opengl.DeleteProgram(p)

	if !p.Linked {
		t.Fatalf("default shaders did not link: %s", p.Log)
	}
	if p.ID == 0 {
		t.Error("expected a program handle")
	}
	if strings.Contains(logs.String(), "level=ERROR") {
		t.Errorf("unexpected error log: %s", logs.String())
	}
}

func TestBuildProgramMalformedSource(t *testing.T) {
	newTestWindow(t)

	src := engine.EmbeddedShaderSources()
	src.Fragment = "#version 330 core\nout vec4 FragColor\nvoid main( { FragColor = ; }\n"

	var logs bytes.Buffer
	p := engine.BuildProgram(opengl.Compiler{}, src, engine.NewLogger(&logs, slog.LevelInfo))
	defer opengl.DeleteProgram(p)

	if p.Linked {
		t.Fatal("malformed fragment shader linked")
	}
	if p.Log == "" {
		t.Error("expected a diagnostic message")
	}
	var shaderErr *engine.ShaderError
	if !errors.As(p.Err(), &shaderErr) || shaderErr.Stage != engine.StageFragment {
		t.Errorf("Err() = %v, want fragment stage failure", p.Err())
	}
	if !strings.Contains(logs.String(), "shader compilation failed") {
		t.Errorf("compile failure not logged: %s", logs.String())
	}
}

func TestRendererState(t *testing.T) {
	newTestWindow(t)

	r := opengl.NewRenderer(32, 16)
	var viewport [4]int32
	gl.GetIntegerv(gl.VIEWPORT, &viewport[0])
	if viewport != [4]int32{0, 0, 32, 16} {
		t.Errorf("viewport = %v, want [0 0 32 16]", viewport)
	}

	r.Clear(engine.ColorTeal)
	var clear [4]float32
	gl.GetFloatv(gl.COLOR_CLEAR_VALUE, &clear[0])
	if clear != engine.ColorTeal.Components() {
		t.Errorf("clear color = %v, want %v", clear, engine.ColorTeal.Components())
	}

	r.SetPolygonMode(engine.PolygonLine)
	if r.PolygonMode() != engine.PolygonLine {
		t.Errorf("PolygonMode() = %v, want line", r.PolygonMode())
	}
	r.SetPolygonMode(engine.PolygonFill)

	if code := gl.GetError(); code != gl.NO_ERROR {
		t.Errorf("GL error 0x%x", code)
	}
}

func TestQuadBuffersUnchangedByLoop(t *testing.T) {
	window := newTestWindow(t)

	quad := engine.Quad()
	mesh, err := opengl.UploadMesh(quad)
	if err != nil {
		t.Fatalf("UploadMesh() error = %v", err)
	}
	defer mesh.Delete()

	if mesh.IndexCount() != 6 {
		t.Errorf("IndexCount() = %d, want 6", mesh.IndexCount())
	}
	before := mesh.ReadBack()
	if !before.Equal(quad) {
		t.Fatalf("uploaded buffers = %+v, want %+v", before, quad)
	}

	var logs bytes.Buffer
	program := engine.BuildProgram(opengl.Compiler{}, engine.EmbeddedShaderSources(), engine.NewLogger(&logs, slog.LevelInfo))
	defer opengl.DeleteProgram(program)

	r := opengl.NewRenderer(window.FramebufferSize())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loop := engine.NewLoop(window,
		engine.WithBindings(engine.DefaultBindings()),
		engine.WithPolygonMode(r.SetPolygonMode),
		engine.WithFrame(func(frame uint64) error {
			r.Clear(engine.ColorTeal)
			r.DrawMesh(program, shaders.ColorUniform, engine.ColorWhite, mesh)
			if frame == 9 {
				cancel()
			}
			return nil
		}),
		testLogger(&logs),
	)
	if err := loop.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() error = %v, want context.Canceled", err)
	}
	if loop.Frames() != 10 {
		t.Errorf("Frames() = %d, want 10", loop.Frames())
	}

	if code := gl.GetError(); code != gl.NO_ERROR {
		t.Errorf("GL error 0x%x after drawing", code)
	}
	if after := mesh.ReadBack(); !after.Equal(before) {
		t.Errorf("buffers changed during loop: got %+v, want %+v", after, before)
	}
	if !quad.Equal(engine.Quad()) {
		t.Error("CPU-side quad changed")
	}
}
