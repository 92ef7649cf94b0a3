package arbor

// InputEventType identifies a host input or window event.
type InputEventType uint8

const (
	EventKeyDown   InputEventType = iota // a key was pressed
	EventKeyUp                           // a key was released
	EventMouseDown                       // a mouse button was pressed
	EventMouseUp                         // a mouse button was released
	EventMouseMove                       // the cursor moved
	EventResize                          // the window size changed
)

// InputEvent carries one host event. Only the fields relevant to Type are set.
type InputEvent struct {
	Type   InputEventType
	Frame  uint64
	Key    Key
	Button MouseButton
	X, Y   float64
	Width  int
	Height int
}

// InputSink receives every input event the Game processes, after the Game's
// own input state has been updated. See the ecs sub-package for a Donburi
// adapter.
type InputSink interface {
	EmitInput(event InputEvent)
}

// Input is the keyboard and mouse state nodes read during the update pass.
// It is updated synchronously by the Game as host events arrive.
type Input struct {
	keysDown     map[Key]struct{}
	keysPressed  map[Key]struct{}
	mouseDown    map[MouseButton]struct{}
	mousePressed map[MouseButton]struct{}
	cursor       Vec2
}

func newInput() *Input {
	return &Input{
		keysDown:     make(map[Key]struct{}),
		keysPressed:  make(map[Key]struct{}),
		mouseDown:    make(map[MouseButton]struct{}),
		mousePressed: make(map[MouseButton]struct{}),
	}
}

func (in *Input) setKeyDown(k Key) {
	if _, held := in.keysDown[k]; !held {
		in.keysPressed[k] = struct{}{}
	}
	in.keysDown[k] = struct{}{}
}

func (in *Input) setKeyUp(k Key) {
	delete(in.keysDown, k)
}

func (in *Input) setMouseDown(b MouseButton) {
	if _, held := in.mouseDown[b]; !held {
		in.mousePressed[b] = struct{}{}
	}
	in.mouseDown[b] = struct{}{}
}

func (in *Input) setMouseUp(b MouseButton) {
	delete(in.mouseDown, b)
}

// endFrame clears the per-frame "just pressed" sets after an update pass.
func (in *Input) endFrame() {
	clear(in.keysPressed)
	clear(in.mousePressed)
}

// IsKeyDown reports whether k is held.
func (in *Input) IsKeyDown(k Key) bool {
	_, ok := in.keysDown[k]
	return ok
}

// IsKeyJustPressed reports whether k went down since the last update pass.
func (in *Input) IsKeyJustPressed(k Key) bool {
	_, ok := in.keysPressed[k]
	return ok
}

// IsMouseDown reports whether b is held.
func (in *Input) IsMouseDown(b MouseButton) bool {
	_, ok := in.mouseDown[b]
	return ok
}

// IsMouseJustPressed reports whether b went down since the last update pass.
func (in *Input) IsMouseJustPressed(b MouseButton) bool {
	_, ok := in.mousePressed[b]
	return ok
}

// Cursor returns the last known cursor position in window pixels.
func (in *Input) Cursor() Vec2 {
	return in.cursor
}

// Axis returns -1 if only neg is held, +1 if only pos is held, and 0
// otherwise.
func (in *Input) Axis(neg, pos Key) float64 {
	var v float64
	if in.IsKeyDown(neg) {
		v--
	}
	if in.IsKeyDown(pos) {
		v++
	}
	return v
}
