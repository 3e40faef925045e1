package renderer

import (
	"testing"

	"github.com/richinsley/goshapes/geometry"
	"github.com/richinsley/goshapes/graphics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(keys ...graphics.Key) []graphics.Event {
	evs := make([]graphics.Event, len(keys))
	for i, k := range keys {
		evs[i] = graphics.Press(k)
	}
	return evs
}

func newTestRenderer(t *testing.T) (*Renderer, *fakeDevice) {
	t.Helper()
	dev := newFakeDevice()
	return NewRenderer(dev, fakePrograms(), Config{Background: DefaultBackground}), dev
}

func TestInitialState(t *testing.T) {
	s := InitialState()
	assert.Equal(t, ViewAll, s.View)
	assert.Equal(t, FlatConstant, s.Shading)
	assert.False(t, s.Closing)
}

func TestFanGradientFromAnyState(t *testing.T) {
	starts := []State{
		InitialState(),
		{View: ViewPentagon, Shading: FlatUniform},
		{View: ViewQuad, Shading: Showcase},
	}
	for _, s := range starts {
		got := s.ApplyAll(press(graphics.Key2, graphics.KeyF3))
		assert.Equal(t, State{View: ViewFan, Shading: Gradient}, got, "from %s", s)
	}
}

func TestTransitionsTouchOneAxis(t *testing.T) {
	s := State{View: ViewQuad, Shading: Gradient}
	for k, v := range viewKeys {
		next := s.Apply(graphics.Press(k))
		assert.Equal(t, v, next.View)
		assert.Equal(t, s.Shading, next.Shading)
	}
	for k, sh := range shadingKeys {
		next := s.Apply(graphics.Press(k))
		assert.Equal(t, sh, next.Shading)
		assert.Equal(t, s.View, next.View)
	}
}

func TestRepeatedShapeKeyIsIdempotent(t *testing.T) {
	s := State{View: ViewAll, Shading: FlatUniform}
	once := s.Apply(graphics.Press(graphics.Key3))
	many := s.ApplyAll(press(graphics.Key3, graphics.Key3, graphics.Key3, graphics.Key3))
	assert.Equal(t, once, many)
	assert.Equal(t, FlatUniform, many.Shading)
}

func TestUnknownKeyIgnored(t *testing.T) {
	s := InitialState()
	assert.Equal(t, s, s.Apply(graphics.Press(graphics.KeyUnknown)))
}

func TestEscapeIsTerminal(t *testing.T) {
	for _, s := range []State{InitialState(), {View: ViewFan, Shading: Gradient}} {
		closing := s.Apply(graphics.Press(graphics.KeyEscape))
		assert.True(t, closing.Closing)
		assert.Equal(t, s.View, closing.View)

		after := closing.ApplyAll(press(graphics.Key1, graphics.KeyF2))
		assert.Equal(t, closing, after)
	}
	assert.True(t, InitialState().Apply(graphics.Close()).Closing)
}

func TestParseViewAndShading(t *testing.T) {
	v, err := ParseView("Pentagon")
	require.NoError(t, err)
	assert.Equal(t, ViewPentagon, v)
	_, err = ParseView("hexagon")
	assert.Error(t, err)

	sh, err := ParseShading("gradient")
	require.NoError(t, err)
	assert.Equal(t, Gradient, sh)
	_, err = ParseShading("phong")
	assert.Error(t, err)
}

func TestCommands(t *testing.T) {
	r, _ := newTestRenderer(t)

	cmds := r.Commands(State{View: ViewAll, Shading: Gradient})
	require.Len(t, cmds, 3)
	for i, v := range []View{ViewQuad, ViewFan, ViewPentagon} {
		assert.Equal(t, v, cmds[i].View)
		assert.Equal(t, r.Shape(v), cmds[i].Shape)
	}

	cmds = r.Commands(State{View: ViewAll, Shading: Showcase})
	require.Len(t, cmds, 3)
	assert.Equal(t, "flat-constant", cmds[0].Program.String())
	assert.Equal(t, "flat-uniform", cmds[1].Program.String())
	assert.Equal(t, "gradient", cmds[2].Program.String())

	cmds = r.Commands(State{View: ViewFan, Shading: FlatConstant})
	require.Len(t, cmds, 1)
	assert.Equal(t, ViewFan, cmds[0].View)

	assert.Empty(t, r.Commands(State{View: ViewAll, Closing: true}))
}

func TestRenderFrameAllFlatConstant(t *testing.T) {
	r, dev := newTestRenderer(t)
	r.RenderFrame(InitialState())

	assert.Equal(t, []geometry.RGBA{DefaultBackground}, dev.clears)
	require.Len(t, dev.draws, 3)
	for i, n := range []int{4, 6, 5} {
		d := dev.draws[i]
		assert.Equal(t, uint32(10), d.Program)
		assert.Equal(t, n, d.Vertices)
		assert.False(t, d.HasColors)
		assert.Nil(t, d.Uniform)
		assert.Equal(t, geometry.TriangleFan, d.Primitive)
	}
	assert.Zero(t, dev.live, "every upload must be released")
	for _, m := range dev.meshes {
		assert.Equal(t, 1, m.released)
	}
	assert.Equal(t, 1, r.Frames())
}

func TestPentagonFlatUniformEndToEnd(t *testing.T) {
	r, dev := newTestRenderer(t)
	ctx := &fakeContext{batches: [][]graphics.Event{
		press(graphics.Key3, graphics.KeyF2),
		{graphics.Press(graphics.KeyEscape)},
	}}

	final := r.Run(ctx, InitialState())

	assert.True(t, final.Closing)
	assert.Equal(t, ViewPentagon, final.View)
	assert.Equal(t, FlatUniform, final.Shading)
	assert.Equal(t, 1, r.Frames())
	assert.Equal(t, 1, ctx.swaps)
	assert.True(t, ctx.shouldClose)

	require.Len(t, dev.draws, 1)
	d := dev.draws[0]
	assert.Equal(t, uint32(11), d.Program)
	assert.Equal(t, 5, d.Vertices)
	assert.False(t, d.HasColors)
	require.NotNil(t, d.Uniform)
	assert.Equal(t, geometry.RGBA{R: 0, G: 0, B: 1, A: 1}, *d.Uniform)
	assert.Equal(t, geometry.RGBA{R: 0, G: 0, B: 1, A: 1}, dev.uniforms[3])
	assert.Zero(t, dev.live)
}

func TestGradientUploadsColors(t *testing.T) {
	r, dev := newTestRenderer(t)
	r.RenderFrame(State{View: ViewAll, Shading: Gradient})

	require.Len(t, dev.draws, 3)
	for _, d := range dev.draws {
		assert.Equal(t, uint32(12), d.Program)
		assert.True(t, d.HasColors)
		assert.Nil(t, d.Uniform)
	}
	assert.Zero(t, dev.live)
}

func TestUploadVertexCountMatchesShape(t *testing.T) {
	r, dev := newTestRenderer(t)
	for _, v := range []View{ViewQuad, ViewFan, ViewPentagon} {
		dev.reset()
		r.RenderFrame(State{View: v, Shading: Gradient})
		require.Len(t, dev.meshes, 1)
		m := dev.meshes[0]
		assert.True(t, m.hasColors)
		assert.Equal(t, r.Shape(v).VertexCount(), m.VertexCount(), v.String())
		assert.Len(t, r.Shape(v).Colors(), m.VertexCount())
	}
}

func TestEscapeStopsBeforeRendering(t *testing.T) {
	r, dev := newTestRenderer(t)
	ctx := &fakeContext{batches: [][]graphics.Event{
		nil,
		nil,
		press(graphics.Key1, graphics.KeyEscape, graphics.Key2),
	}}

	final := r.Run(ctx, InitialState())
	assert.True(t, final.Closing)
	assert.Equal(t, ViewQuad, final.View)
	assert.Equal(t, 2, r.Frames())
	assert.Equal(t, 2, ctx.swaps)
	assert.Equal(t, 3, ctx.polls)
	assert.Len(t, dev.clears, 2)
}

func TestWindowCloseStopsLoop(t *testing.T) {
	r, _ := newTestRenderer(t)
	ctx := &fakeContext{batches: [][]graphics.Event{{graphics.Close()}}}
	final := r.Run(ctx, InitialState())
	assert.True(t, final.Closing)
	assert.Zero(t, r.Frames())
}

func TestTriangleListLayout(t *testing.T) {
	dev := newFakeDevice()
	r := NewRenderer(dev, fakePrograms(), Config{Background: DefaultBackground, Layout: geometry.TriangleList})
	r.RenderFrame(State{View: ViewAll, Shading: Gradient})

	require.Len(t, dev.draws, 3)
	for i, n := range []int{4, 6, 5} {
		assert.Equal(t, geometry.TriangleList, dev.draws[i].Primitive)
		assert.Equal(t, 3*(n-2), dev.draws[i].Vertices)
	}
}

func TestShutdownDeletesPrograms(t *testing.T) {
	r, dev := newTestRenderer(t)
	r.Shutdown()
	assert.ElementsMatch(t, []uint32{10, 11, 12}, dev.deleted)
	r.Shutdown()
	assert.Len(t, dev.deleted, 3)
}
