package geometry

import "math"

// PolygonRadius is the circumradius of every generated regular polygon.
const PolygonRadius = 0.5

// Vec2 is a position in normalized device coordinates.
type Vec2 struct {
	X, Y float32
}

// RGB is a per-vertex color, each channel in [0, 1].
type RGB struct {
	R, G, B float32
}

// RGBA is a uniform color, each channel in [0, 1].
type RGBA struct {
	R, G, B, A float32
}

// Primitive tells the device how consecutive vertices form triangles.
type Primitive int

const (
	TriangleFan Primitive = iota
	TriangleList
)

func (p Primitive) String() string {
	switch p {
	case TriangleFan:
		return "triangle-fan"
	case TriangleList:
		return "triangle-list"
	}
	return "unknown"
}

// Polygon returns the n vertices of a regular polygon centered at the origin.
// Vertex i sits at angle 2*pi*i/n. The caller guarantees n >= 3.
func Polygon(n int) []Vec2 {
	pts := make([]Vec2, n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Vec2{
			X: float32(PolygonRadius * math.Cos(a)),
			Y: float32(PolygonRadius * math.Sin(a)),
		}
	}
	return pts
}

// FlattenPositions packs positions as x0, y0, x1, y1, ...
func FlattenPositions(pts []Vec2) []float32 {
	out := make([]float32, 0, len(pts)*2)
	for _, p := range pts {
		out = append(out, p.X, p.Y)
	}
	return out
}

// FlattenColors packs colors as r0, g0, b0, r1, ...
func FlattenColors(cols []RGB) []float32 {
	out := make([]float32, 0, len(cols)*3)
	for _, c := range cols {
		out = append(out, c.R, c.G, c.B)
	}
	return out
}
