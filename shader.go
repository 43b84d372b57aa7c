package engine

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/go-theft-auto/engine/shaders"
)

// Conventional shader file names, read from the working directory or the
// configured shader directory.
const (
	VertexShaderFile   = "VertexShader.txt"
	FragmentShaderFile = "FragmentShader.txt"
)

// EmbeddedShaders is the shader directory value that selects the sources
// compiled into the binary instead of files on disk.
const EmbeddedShaders = "embedded"

// MaxInfoLogLength caps the compile/link diagnostic kept per stage.
const MaxInfoLogLength = 512

// ErrShaderNotFound is returned when a shader source file does not exist.
var ErrShaderNotFound = errors.New("shader source not found")

// LoadShaderSource returns the exact contents of the file at path.
func LoadShaderSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s: %w", ErrShaderNotFound, path, err)
		}
		return "", fmt.Errorf("read shader %s: %w", path, err)
	}
	return string(data), nil
}

// ShaderSources is a vertex/fragment source pair.
type ShaderSources struct {
	Vertex   string
	Fragment string
}

// LoadShaderSources loads VertexShaderFile and FragmentShaderFile from dir.
func LoadShaderSources(dir string) (ShaderSources, error) {
	vertex, err := LoadShaderSource(filepath.Join(dir, VertexShaderFile))
	if err != nil {
		return ShaderSources{}, err
	}
	fragment, err := LoadShaderSource(filepath.Join(dir, FragmentShaderFile))
	if err != nil {
		return ShaderSources{}, err
	}
	return ShaderSources{Vertex: vertex, Fragment: fragment}, nil
}

// EmbeddedShaderSources returns the vertex/fragment pair compiled into the
// binary.
func EmbeddedShaderSources() ShaderSources {
	return ShaderSources{Vertex: shaders.Vertex(), Fragment: shaders.Fragment()}
}

// ShaderStage identifies a step of the shader build.
type ShaderStage int

const (
	StageVertex ShaderStage = iota
	StageFragment
	StageLink
)

func (s ShaderStage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	case StageLink:
		return "program"
	default:
		return fmt.Sprintf("ShaderStage(%d)", int(s))
	}
}

// ShaderError describes a failed compile or link step.
type ShaderError struct {
	Stage ShaderStage
	Log   string
}

func (e *ShaderError) Error() string {
	if e.Stage == StageLink {
		return "shader program linking failed: " + e.Log
	}
	return fmt.Sprintf("%s shader compilation failed: %s", e.Stage, e.Log)
}

// Compiler is the GPU side of the shader build. Handles are opaque driver
// object names; a failed step still returns its handle so it can be deleted
// or bound later.
type Compiler interface {
	CompileShader(stage ShaderStage, source string) (shader uint32, ok bool, infoLog string)
	LinkProgram(vertex, fragment uint32) (program uint32, ok bool, infoLog string)
	DeleteShader(shader uint32)
}

// Program is the result of BuildProgram.
type Program struct {
	ID     uint32
	Linked bool
	// Log holds every diagnostic produced while building, one per line.
	Log    string

	err *ShaderError
}

// Err returns the first compile or link failure, or nil when the program
// linked.
func (p Program) Err() error {
	if p.err == nil {
		return nil
	}
	return p.err
}

// BuildProgram compiles both stages, links them and deletes the stage
// objects. Failures are logged and recorded on the returned Program; the
// build always runs to completion and the program handle is returned even
// when linking failed.
func BuildProgram(c Compiler, src ShaderSources, logger *slog.Logger) Program {
	if logger == nil {
		logger = slog.Default()
	}

	var (
		p    Program
		logs []string
	)
	fail := func(stage ShaderStage, infoLog string) {
		infoLog = truncateInfoLog(infoLog)
		if infoLog == "" {
			infoLog = "no info log"
		}
		if stage == StageLink {
			logger.Error("shader program linking failed", "log", infoLog)
		} else {
			logger.Error("shader compilation failed", "stage", stage.String(), "log", infoLog)
		}
		logs = append(logs, infoLog)
		if p.err == nil {
			p.err = &ShaderError{Stage: stage, Log: infoLog}
		}
	}

	vertex, ok, infoLog := c.CompileShader(StageVertex, src.Vertex)
	if !ok {
		fail(StageVertex, infoLog)
	}

	fragment, ok, infoLog := c.CompileShader(StageFragment, src.Fragment)
	if !ok {
		fail(StageFragment, infoLog)
	}

	program, ok, infoLog := c.LinkProgram(vertex, fragment)
	if !ok {
		fail(StageLink, infoLog)
	}

	c.DeleteShader(vertex)
	c.DeleteShader(fragment)

	p.ID = program
	p.Linked = ok
	p.Log = strings.Join(logs, "\n")
	if p.Linked {
		logger.Debug("shader program linked", "program", program)
	}
	return p
}

func truncateInfoLog(s string) string {
	s = strings.TrimRight(s, "\x00 \t\r\n")
	if len(s) <= MaxInfoLogLength {
		return s
	}
	// Cut at a rune boundary so the log stays valid UTF-8.
	n := MaxInfoLogLength
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
