package renderer

import (
	"github.com/richinsley/goshapes/geometry"
	"github.com/richinsley/goshapes/shader"
)

// DrawCommand is one draw call: a shape and the program that colors it.
type DrawCommand struct {
	View    View
	Shape   *geometry.Shape
	Program shader.Kind
}

var shadingPrograms = map[Shading]shader.Kind{
	FlatConstant: shader.FlatConstant,
	FlatUniform:  shader.FlatUniform,
	Gradient:     shader.Gradient,
}

var showcasePrograms = map[View]shader.Kind{
	ViewQuad:     shader.FlatConstant,
	ViewFan:      shader.FlatUniform,
	ViewPentagon: shader.Gradient,
}

// drawOrder is the order shapes are drawn in when every shape is visible.
var drawOrder = []View{ViewQuad, ViewFan, ViewPentagon}

// Commands returns the draw calls for one frame of s, in draw order. A
// closing state draws nothing.
func (r *Renderer) Commands(s State) []DrawCommand {
	if s.Closing {
		return nil
	}
	views := drawOrder
	if s.View != ViewAll {
		views = []View{s.View}
	}
	cmds := make([]DrawCommand, 0, len(views))
	for _, v := range views {
		shape, ok := r.shapes[v]
		if !ok {
			continue
		}
		kind, ok := shadingPrograms[s.Shading]
		if s.Shading == Showcase {
			kind, ok = showcasePrograms[v]
		}
		if !ok {
			continue
		}
		cmds = append(cmds, DrawCommand{View: v, Shape: shape, Program: kind})
	}
	return cmds
}
