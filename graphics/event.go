package graphics

import (
	"fmt"
	"strings"
)

// Key is a keyboard key the demo reacts to. Keys are independent of the
// windowing library; glfwcontext translates native codes into them.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	Key1
	Key2
	Key3
	Key4
	KeyF1
	KeyF2
	KeyF3
	KeyF4
)

var keyNames = map[Key]string{
	KeyEscape: "Escape",
	Key1:      "1",
	Key2:      "2",
	Key3:      "3",
	Key4:      "4",
	KeyF1:     "F1",
	KeyF2:     "F2",
	KeyF3:     "F3",
	KeyF4:     "F4",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unknown"
}

// ParseKey accepts the names printed by Key.String, case-insensitively.
// "Esc" is accepted for Escape.
func ParseKey(s string) (Key, error) {
	name := strings.TrimSpace(s)
	if strings.EqualFold(name, "esc") {
		return KeyEscape, nil
	}
	for k, n := range keyNames {
		if strings.EqualFold(n, name) {
			return k, nil
		}
	}
	return KeyUnknown, fmt.Errorf("unknown key %q", s)
}

type EventKind int

const (
	KeyPressed EventKind = iota
	CloseRequested
)

// Event is one discrete input event.
type Event struct {
	Kind EventKind
	Key  Key
}

// Press builds a key-press event.
func Press(k Key) Event {
	return Event{Kind: KeyPressed, Key: k}
}

// Close builds a window-close request.
func Close() Event {
	return Event{Kind: CloseRequested}
}

func (e Event) String() string {
	if e.Kind == CloseRequested {
		return "close"
	}
	return "press " + e.Key.String()
}
