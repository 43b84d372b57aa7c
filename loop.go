package engine

import (
	"context"
	"fmt"
	"log/slog"
)

// Window is the part of a platform window the frame loop drives.
type Window interface {
	KeySource
	ShouldClose() bool
	SetShouldClose(value bool)
	SwapBuffers()
	PollEvents()
}

// State is the frame loop state.
type State int

const (
	StateRunning State = iota
	StateClosing
)

func (s State) String() string {
	if s == StateClosing {
		return "closing"
	}
	return "running"
}

// FrameFunc renders one frame. frame counts from zero.
type FrameFunc func(frame uint64) error

// Loop runs the per-frame sequence: sample input, apply bindings, render,
// present, poll events. It is single threaded and must run on the thread that
// owns the window's context.
type Loop struct {
	window   Window
	input    *InputState
	bindings Bindings
	frame    FrameFunc
	logger   *slog.Logger

	onClose       func()
	onPolygonMode func(PolygonMode)

	state  State
	frames uint64
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithBindings replaces the key bindings. The default is CloseBindings.
func WithBindings(b Bindings) LoopOption {
	return func(l *Loop) { l.bindings = b }
}

// WithFrame sets the render callback.
func WithFrame(fn FrameFunc) LoopOption {
	return func(l *Loop) { l.frame = fn }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) LoopOption {
	return func(l *Loop) { l.logger = logger }
}

// WithOnClose sets a hook called once when the loop enters StateClosing.
func WithOnClose(fn func()) LoopOption {
	return func(l *Loop) { l.onClose = fn }
}

// WithPolygonMode sets the hook applying ActionWireframe and ActionFill.
// Without it those actions are ignored.
func WithPolygonMode(fn func(PolygonMode)) LoopOption {
	return func(l *Loop) { l.onPolygonMode = fn }
}

// NewLoop creates a loop driving window.
func NewLoop(window Window, opts ...LoopOption) *Loop {
	l := &Loop{
		window:   window,
		input:    NewInputState(),
		bindings: CloseBindings(),
	}

	for _, opt := range opts {
		opt(l)
	}

	if l.logger == nil {
		l.logger = slog.Default()
	}

	return l
}

// State returns the current loop state.
func (l *Loop) State() State {
	return l.state
}

// Frames returns the number of completed frames.
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Run executes frames until the window is asked to close or ctx is done.
// A frame that observes the close request still renders and presents; the
// loop exits before the next one. Run returns ctx.Err() on cancellation and
// the frame callback's error if it fails.
func (l *Loop) Run(ctx context.Context) error {
	for l.state == StateRunning {
		if err := ctx.Err(); err != nil {
			l.close("context")
			return err
		}
		if l.window.ShouldClose() {
			l.close("window")
			break
		}

		l.input.Update(l.window)
		l.ProcessInput()

		if l.frame != nil {
			if err := l.frame(l.frames); err != nil {
				l.close("error")
				return fmt.Errorf("frame %d: %w", l.frames, err)
			}
		}

		l.window.SwapBuffers()
		l.window.PollEvents()
		l.frames++
	}

	l.logger.Debug("frame loop finished", "frames", l.frames)
	return nil
}

// ProcessInput applies the bound actions triggered by the current input
// state.
func (l *Loop) ProcessInput() {
	for _, action := range l.bindings.Actions(l.input) {
		switch action {
		case ActionClose:
			l.window.SetShouldClose(true)
			l.close("key")
		case ActionWireframe:
			l.setPolygonMode(PolygonLine)
		case ActionFill:
			l.setPolygonMode(PolygonFill)
		}
	}
}

func (l *Loop) setPolygonMode(mode PolygonMode) {
	if l.onPolygonMode != nil {
		l.onPolygonMode(mode)
	}
}

// close moves the loop to StateClosing. Only the first call has an effect.
func (l *Loop) close(reason string) {
	if l.state == StateClosing {
		return
	}
	l.state = StateClosing
	l.logger.Info("closing window", "reason", reason, "frames", l.frames)
	if l.onClose != nil {
		l.onClose()
	}
}
