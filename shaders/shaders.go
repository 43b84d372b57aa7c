// Package shaders embeds the default GLSL sources of the quad program.
package shaders

import _ "embed"

//go:embed VertexShader.txt
var vertexSource string

//go:embed FragmentShader.txt
var fragmentSource string

// ColorUniform is the vec4 uniform the fragment shader outputs.
const ColorUniform = "ourColor"

// Vertex returns the embedded vertex stage.
func Vertex() string { return vertexSource }

// Fragment returns the embedded fragment stage.
func Fragment() string { return fragmentSource }
