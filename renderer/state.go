package renderer

import (
	"fmt"
	"strings"

	"github.com/richinsley/goshapes/graphics"
)

// View selects which shapes are drawn.
type View int

const (
	ViewQuad View = iota
	ViewFan
	ViewPentagon
	ViewAll
)

func (v View) String() string {
	switch v {
	case ViewQuad:
		return "quad"
	case ViewFan:
		return "fan"
	case ViewPentagon:
		return "pentagon"
	case ViewAll:
		return "all"
	}
	return "unknown"
}

func ParseView(s string) (View, error) {
	for v := ViewQuad; v <= ViewAll; v++ {
		if strings.EqualFold(strings.TrimSpace(s), v.String()) {
			return v, nil
		}
	}
	return ViewAll, fmt.Errorf("unknown view %q", s)
}

// Shading selects how the visible shapes are colored.
type Shading int

const (
	FlatConstant Shading = iota
	FlatUniform
	Gradient
	// Showcase draws each shape with its own shading: the quad flat
	// constant, the fan flat uniform and the pentagon gradient.
	Showcase
)

func (s Shading) String() string {
	switch s {
	case FlatConstant:
		return "flat-constant"
	case FlatUniform:
		return "flat-uniform"
	case Gradient:
		return "gradient"
	case Showcase:
		return "showcase"
	}
	return "unknown"
}

func ParseShading(s string) (Shading, error) {
	for sh := FlatConstant; sh <= Showcase; sh++ {
		if strings.EqualFold(strings.TrimSpace(s), sh.String()) {
			return sh, nil
		}
	}
	return FlatConstant, fmt.Errorf("unknown shading %q", s)
}

// State is the render configuration for one frame. It is a value; every
// transition returns a new State.
type State struct {
	View    View
	Shading Shading
	// Closing is terminal: once set, no further frames are rendered and
	// later events are ignored.
	Closing bool
}

// InitialState shows every shape with the constant shader.
func InitialState() State {
	return State{View: ViewAll, Shading: FlatConstant}
}

var viewKeys = map[graphics.Key]View{
	graphics.Key1: ViewQuad,
	graphics.Key2: ViewFan,
	graphics.Key3: ViewPentagon,
	graphics.Key4: ViewAll,
}

var shadingKeys = map[graphics.Key]Shading{
	graphics.KeyF1: FlatConstant,
	graphics.KeyF2: FlatUniform,
	graphics.KeyF3: Gradient,
	graphics.KeyF4: Showcase,
}

// Apply returns the state after ev. A transition replaces at most one axis.
func (s State) Apply(ev graphics.Event) State {
	if s.Closing {
		return s
	}
	if ev.Kind == graphics.CloseRequested {
		s.Closing = true
		return s
	}
	if ev.Key == graphics.KeyEscape {
		s.Closing = true
	} else if v, ok := viewKeys[ev.Key]; ok {
		s.View = v
	} else if sh, ok := shadingKeys[ev.Key]; ok {
		s.Shading = sh
	}
	return s
}

// ApplyAll folds Apply over evs in order.
func (s State) ApplyAll(evs []graphics.Event) State {
	for _, ev := range evs {
		s = s.Apply(ev)
	}
	return s
}

func (s State) String() string {
	if s.Closing {
		return fmt.Sprintf("%s/%s (closing)", s.View, s.Shading)
	}
	return fmt.Sprintf("%s/%s", s.View, s.Shading)
}
