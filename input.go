package engine

// Key represents a keyboard key the demo programs react to.
type Key int

const (
	KeyNone Key = iota
	KeyEscape
	Key1
	Key2
	KeyCount
)

// KeySource reports whether a key is currently held. Windows implement it by
// polling the platform once per call.
type KeySource interface {
	KeyDown(key Key) bool
}

// InputState holds keyboard state for the current frame.
type InputState struct {
	keyDown    [KeyCount]bool
	keyPressed [KeyCount]bool // True on the frame key was pressed
}

// NewInputState creates a new InputState.
func NewInputState() *InputState {
	return &InputState{}
}

// Reset clears per-frame input state.
func (s *InputState) Reset() {
	for i := range s.keyPressed {
		s.keyPressed[i] = false
	}
}

// Update samples every known key from src. Call this once at the start of
// each frame.
func (s *InputState) Update(src KeySource) {
	s.Reset()
	for key := KeyNone + 1; key < KeyCount; key++ {
		s.SetKey(key, src.KeyDown(key))
	}
}

// SetKey sets key state.
func (s *InputState) SetKey(key Key, down bool) {
	if key < 0 || key >= KeyCount {
		return
	}

	wasDown := s.keyDown[key]
	s.keyDown[key] = down

	if down && !wasDown {
		s.keyPressed[key] = true
	}
}

// KeyDown returns true if a key is currently held.
func (s *InputState) KeyDown(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyDown[key]
}

// KeyPressed returns true if a key was just pressed (pressed this frame).
func (s *InputState) KeyPressed(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyPressed[key]
}

// KeyName returns a human-readable name for a key.
func KeyName(k Key) string {
	switch k {
	case KeyNone:
		return "--"
	case KeyEscape:
		return "Esc"
	case Key1:
		return "1"
	case Key2:
		return "2"
	default:
		return "?"
	}
}

// Action is what a bound key does.
type Action int

const (
	ActionNone Action = iota
	// ActionClose requests the frame loop to stop. It fires every frame the
	// key is held.
	ActionClose
	// ActionWireframe switches rasterization to PolygonLine on key press.
	ActionWireframe
	// ActionFill switches rasterization to PolygonFill on key press.
	ActionFill
)

// held reports whether the action repeats while its key is held rather than
// firing once per press.
func (a Action) held() bool {
	return a == ActionClose
}

func (a Action) String() string {
	switch a {
	case ActionClose:
		return "close"
	case ActionWireframe:
		return "wireframe"
	case ActionFill:
		return "fill"
	default:
		return "none"
	}
}

// Bindings maps keys to actions.
type Bindings map[Key]Action

// CloseBindings binds Escape to close and nothing else.
func CloseBindings() Bindings {
	return Bindings{KeyEscape: ActionClose}
}

// DefaultBindings binds Escape to close, 1 to wireframe and 2 to fill.
func DefaultBindings() Bindings {
	return Bindings{
		KeyEscape: ActionClose,
		Key1:      ActionWireframe,
		Key2:      ActionFill,
	}
}

// Actions returns the actions triggered by s, ordered by key. ActionClose
// triggers while its key is held; the polygon mode actions trigger only on
// the frame their key goes down.
func (b Bindings) Actions(s *InputState) []Action {
	var actions []Action
	for key := KeyNone + 1; key < KeyCount; key++ {
		action, ok := b[key]
		if !ok || action == ActionNone {
			continue
		}
		if (action.held() && s.KeyDown(key)) || s.KeyPressed(key) {
			actions = append(actions, action)
		}
	}
	return actions
}
