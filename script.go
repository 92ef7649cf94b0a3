package arbor

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Key    string  `json:"key,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Width  int     `json:"width,omitempty"`
	Height int     `json:"height,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// syntheticEvent is one queued host callback. At most one is delivered per
// Tick, before the update pass.
type syntheticEvent struct {
	typ    InputEventType
	key    Key
	button MouseButton
	x, y   float64
}

// Script replays a sequence of input events, resizes, and screenshots across
// frames. It drives the same Game callbacks a host does, which makes scenes
// testable without a window. Attach with Game.SetScript.
//
//	{"steps": [
//		{"action": "key", "key": "Space"},
//		{"action": "click", "x": 100, "y": 200},
//		{"action": "wait", "frames": 3},
//		{"action": "screenshot", "label": "after-click"}
//	]}
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	queue     []syntheticEvent
	done      bool
}

// ParseScript parses a JSON input script.
func ParseScript(data []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("arbor: parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("arbor: parse script: no steps")
	}
	for i, st := range f.Steps {
		switch st.Action {
		case "key", "key_down", "key_up":
			var k Key
			if err := k.UnmarshalText([]byte(st.Key)); err != nil {
				return nil, fmt.Errorf("arbor: parse script: step %d: unknown key %q", i, st.Key)
			}
		case "click", "move", "drag", "wait", "resize", "screenshot", "quit":
		default:
			return nil, fmt.Errorf("arbor: parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// SetScript attaches s. Its steps run at the start of each Tick. Nil detaches.
func (g *Game) SetScript(s *Script) {
	g.script = s
}

// Done reports whether every step has run and every queued event has been
// delivered.
func (s *Script) Done() bool {
	return s.done
}

func (s *Script) push(ev syntheticEvent) {
	s.queue = append(s.queue, ev)
}

func (s *Script) pushDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.push(syntheticEvent{typ: EventMouseMove, x: fromX, y: fromY})
	s.push(syntheticEvent{typ: EventMouseDown, button: MouseButtonLeft})
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.push(syntheticEvent{
			typ: EventMouseMove,
			x:   fromX + (toX-fromX)*t,
			y:   fromY + (toY-fromY)*t,
		})
	}
	s.push(syntheticEvent{typ: EventMouseMove, x: toX, y: toY})
	s.push(syntheticEvent{typ: EventMouseUp, button: MouseButtonLeft})
}

// deliver pops one queued event and feeds it to g. Returns false when the
// queue is empty.
func (s *Script) deliver(g *Game) bool {
	if len(s.queue) == 0 {
		return false
	}
	ev := s.queue[0]
	copy(s.queue, s.queue[1:])
	s.queue = s.queue[:len(s.queue)-1]

	switch ev.typ {
	case EventKeyDown:
		g.KeyDown(ev.key)
	case EventKeyUp:
		g.KeyUp(ev.key)
	case EventMouseDown:
		g.MouseDown(ev.button)
	case EventMouseUp:
		g.MouseUp(ev.button)
	case EventMouseMove:
		g.MouseMove(ev.x, ev.y)
	}
	return true
}

// step advances the script by one frame. Called from Game.Tick.
func (s *Script) step(g *Game) {
	if s.done {
		return
	}
	// Queued events drain one per frame before the script advances.
	if s.deliver(g) {
		s.finishIfIdle()
		return
	}
	if s.waitCount > 0 {
		s.waitCount--
		s.finishIfIdle()
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "key":
		k := mustKey(st.Key)
		s.push(syntheticEvent{typ: EventKeyDown, key: k})
		s.push(syntheticEvent{typ: EventKeyUp, key: k})
	case "key_down":
		s.push(syntheticEvent{typ: EventKeyDown, key: mustKey(st.Key)})
	case "key_up":
		s.push(syntheticEvent{typ: EventKeyUp, key: mustKey(st.Key)})
	case "click":
		s.push(syntheticEvent{typ: EventMouseMove, x: st.X, y: st.Y})
		s.push(syntheticEvent{typ: EventMouseDown, button: MouseButtonLeft})
		s.push(syntheticEvent{typ: EventMouseUp, button: MouseButtonLeft})
	case "move":
		s.push(syntheticEvent{typ: EventMouseMove, x: st.X, y: st.Y})
	case "drag":
		s.pushDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "resize":
		if st.Width > 0 && st.Height > 0 {
			g.Resize(st.Width, st.Height)
		}
	case "screenshot":
		g.Screenshot(st.Label)
	case "quit":
		g.Quit()
	}

	// The first queued event goes out on the same frame as its step.
	s.deliver(g)
	s.finishIfIdle()
}

func (s *Script) finishIfIdle() {
	if s.cursor >= len(s.steps) && s.waitCount == 0 && len(s.queue) == 0 {
		s.done = true
	}
}

// mustKey resolves a key name already validated by ParseScript.
func mustKey(name string) Key {
	var k Key
	if err := k.UnmarshalText([]byte(name)); err != nil {
		panic(fmt.Sprintf("arbor: unknown key %q", name))
	}
	return k
}
