/*
Package engine holds the window-independent half of three small OpenGL
programs: an empty window, a window cleared to a color, and a window drawing
one shaded quad. The GPU and window half lives in backend/opengl; the
programs themselves live under examples/.

# Overview

Each program is one linear procedure:

 1. Create a GLFW window with an OpenGL 3.3 core context and install a resize
    callback that resets the viewport.
 2. Compile a vertex and fragment shader and link them (quad only).
 3. Upload four vertices and six indices describing two triangles (quad
    only).
 4. Loop: sample keys, clear, bind the program and its color uniform, draw,
    swap buffers, poll events.
 5. Release GL objects and terminate GLFW.

# Quick Start

	if err := opengl.Init(); err != nil {
	    return err
	}
	defer opengl.Terminate()

	window, _ := opengl.NewWindow(engine.DefaultConfig().Window)
	renderer := opengl.NewRenderer(window.FramebufferSize())
	window.OnResize(renderer.SetViewport)

	sources, err := engine.DefaultConfig().ShaderSources() // ./VertexShader.txt, ./FragmentShader.txt
	if err != nil {
	    return err
	}
	program := engine.BuildProgram(opengl.Compiler{}, sources, logger)
	mesh, _ := opengl.UploadMesh(engine.Quad())

	loop := engine.NewLoop(window,
	    engine.WithBindings(engine.DefaultBindings()),
	    engine.WithPolygonMode(renderer.SetPolygonMode),
	    engine.WithFrame(func(uint64) error {
	        renderer.Clear(engine.ColorTeal)
	        renderer.DrawMesh(program, shaders.ColorUniform, engine.ColorWhite, mesh)
	        return nil
	    }),
	)
	err := loop.Run(ctx)

# Shader Failures

BuildProgram never fails. Compile and link diagnostics are logged at error
level and kept on the returned Program; the loop keeps running and the draw
call renders nothing. Only a missing shader file (ErrShaderNotFound) is
reported as an error, by LoadShaderSource and Config.ShaderSources.

# Keys

	Esc   Close the window
	1     Wireframe (window and quad programs)
	2     Filled triangles (window and quad programs)

Escape acts every frame it is held, and the loop's transition to
StateClosing happens once no matter how long it is held. 1 and 2 act on the
frame the key goes down.

# Configuration

Programs accept -config with a TOML or YAML file. Omitted keys keep the
defaults from DefaultConfig:

	[window]
	width = 800
	height = 600
	title = "Maya But Actually Works V: 0.01 alpha"
	gl_major = 3
	gl_minor = 3
	vsync = true
	resizable = true

	[render]
	clear_color = [0.2, 0.3, 0.3, 1.0]
	quad_color = [1.0, 1.0, 1.0, 1.0]
	wireframe = false

	[shaders]
	dir = "."   # or "embedded" for the copies compiled into the binary

	[log]
	level = "info"
*/
package engine
