package geometry

import "fmt"

// Shape is an immutable vertex sequence plus the constants used to draw it.
type Shape struct {
	name      string
	positions []Vec2
	colors    []RGB
	primitive Primitive
	uniform   RGBA
}

// NewShape copies its inputs. colors may be nil; when present it must have
// one entry per position.
func NewShape(name string, prim Primitive, uniform RGBA, positions []Vec2, colors []RGB) (*Shape, error) {
	if colors != nil && len(colors) != len(positions) {
		return nil, fmt.Errorf("shape %s: %d colors for %d positions", name, len(colors), len(positions))
	}
	s := &Shape{
		name:      name,
		primitive: prim,
		uniform:   uniform,
		positions: append([]Vec2(nil), positions...),
	}
	if colors != nil {
		s.colors = append([]RGB(nil), colors...)
	}
	return s, nil
}

func mustShape(name string, prim Primitive, uniform RGBA, positions []Vec2, colors []RGB) *Shape {
	s, err := NewShape(name, prim, uniform, positions, colors)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Shape) Name() string { return s.name }
func (s *Shape) Primitive() Primitive { return s.primitive }
func (s *Shape) UniformColor() RGBA { return s.uniform }
func (s *Shape) VertexCount() int { return len(s.positions) }
func (s *Shape) HasColors() bool { return s.colors != nil }
func (s *Shape) Positions() []Vec2 { return append([]Vec2(nil), s.positions...) }
func (s *Shape) Colors() []RGB { return append([]RGB(nil), s.colors...) }
func (s *Shape) PositionData() []float32 { return FlattenPositions(s.positions) }
func (s *Shape) ColorData() []float32 { return FlattenColors(s.colors) }

// Triangulated returns a copy of a fan-ordered shape as an explicit triangle
// list (v0, vi, vi+1). Triangle lists are returned unchanged.
func (s *Shape) Triangulated() *Shape {
	if s.primitive == TriangleList || len(s.positions) < 3 {
		return s
	}
	n := len(s.positions)
	pos := make([]Vec2, 0, (n-2)*3)
	var cols []RGB
	if s.colors != nil {
		cols = make([]RGB, 0, (n-2)*3)
	}
	for i := 1; i < n-1; i++ {
		pos = append(pos, s.positions[0], s.positions[i], s.positions[i+1])
		if cols != nil {
			cols = append(cols, s.colors[0], s.colors[i], s.colors[i+1])
		}
	}
	return mustShape(s.name, TriangleList, s.uniform, pos, cols)
}

// GradientColors assigns vertex i of n the color (i/n, 1-i/n, 0.3+0.1i).
func GradientColors(n int) []RGB {
	cols := make([]RGB, n)
	for i := range cols {
		t := float32(i) / float32(n)
		cols[i] = RGB{R: t, G: 1 - t, B: clamp01(0.3 + 0.1*float32(i))}
	}
	return cols
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

var (
	quadPositions = []Vec2{
		{-0.6, -0.4},
		{0.6, -0.4},
		{0.6, 0.4},
		{-0.6, 0.4},
	}
	fanPositions = []Vec2{
		{0, 0},
		{0.7, 0},
		{0.5, 0.5},
		{0, 0.7},
		{-0.5, 0.5},
		{-0.7, 0},
	}
)

// Quad, Fan and Pentagon return the three predefined shapes in fan layout.
func Quad() *Shape {
	return mustShape("quad", TriangleFan, RGBA{0.2, 0.9, 0.3, 1}, quadPositions, GradientColors(len(quadPositions)))
}

func Fan() *Shape {
	return mustShape("fan", TriangleFan, RGBA{1.0, 0.3, 0.2, 1}, fanPositions, GradientColors(len(fanPositions)))
}

func Pentagon() *Shape {
	return mustShape("pentagon", TriangleFan, RGBA{0, 0, 1, 1}, Polygon(5), GradientColors(5))
}
