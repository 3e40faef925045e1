package renderer

import (
	"github.com/richinsley/goshapes/geometry"
	"github.com/richinsley/goshapes/graphics"
	"github.com/richinsley/goshapes/shader"
)

type drawCall struct {
	Program   uint32
	Vertices  int
	HasColors bool
	Uniform   *geometry.RGBA
	Primitive geometry.Primitive
}

type fakeMesh struct {
	dev       *fakeDevice
	vertices  int
	hasColors bool
	released  int
}

func (m *fakeMesh) VertexCount() int { return m.vertices }

func (m *fakeMesh) Release() {
	m.released++
	m.dev.live--
}

// fakeDevice records the draw calls a frame produces.
type fakeDevice struct {
	clears   []geometry.RGBA
	program  uint32
	uniform  *geometry.RGBA
	draws    []drawCall
	meshes   []*fakeMesh
	live     int
	deleted  []uint32
	uniforms map[int32]geometry.RGBA
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{uniforms: make(map[int32]geometry.RGBA)}
}

func (d *fakeDevice) Clear(c geometry.RGBA) {
	d.clears = append(d.clears, c)
}

func (d *fakeDevice) UseProgram(p uint32) {
	d.program = p
	d.uniform = nil
}

func (d *fakeDevice) Upload(positions, colors []float32) graphics.Mesh {
	m := &fakeMesh{dev: d, vertices: len(positions) / 2, hasColors: colors != nil}
	if colors != nil && len(colors)/3 != m.vertices {
		panic("color count does not match position count")
	}
	d.meshes = append(d.meshes, m)
	d.live++
	return m
}

func (d *fakeDevice) SetUniformColor(loc int32, c geometry.RGBA) {
	d.uniforms[loc] = c
	d.uniform = &c
}

func (d *fakeDevice) Draw(mesh graphics.Mesh, prim geometry.Primitive) {
	m := mesh.(*fakeMesh)
	d.draws = append(d.draws, drawCall{
		Program:   d.program,
		Vertices:  m.vertices,
		HasColors: m.hasColors,
		Uniform:   d.uniform,
		Primitive: prim,
	})
}

func (d *fakeDevice) DeleteProgram(p uint32) {
	d.deleted = append(d.deleted, p)
}

func (d *fakeDevice) reset() {
	d.clears = nil
	d.draws = nil
	d.meshes = nil
}

// Program handles are 10, 11 and 12 for flat-constant, flat-uniform and
// gradient; the color uniform lives at location 3.
func fakePrograms() shader.Programs {
	progs := make(shader.Programs)
	c := &fakeCompiler{}
	b := &shader.Builder{Compiler: c, Policy: shader.Strict}
	for _, k := range shader.Kinds {
		p, err := b.Build(k.String(), shader.GetSource(k, false))
		if err != nil {
			panic(err)
		}
		progs[k] = p
	}
	return progs
}

type fakeCompiler struct {
	next uint32
}

func (c *fakeCompiler) CompileShader(shader.Stage, string) (uint32, error) { return 1, nil }
func (c *fakeCompiler) DeleteShader(uint32) {}
func (c *fakeCompiler) DeleteProgram(uint32) {}

func (c *fakeCompiler) LinkProgram(uint32, uint32) (uint32, error) {
	h := 10 + c.next
	c.next++
	return h, nil
}

func (c *fakeCompiler) GetUniformLocation(uint32, string) int32 { return 3 }

// fakeContext feeds one batch of events per poll.
type fakeContext struct {
	batches     [][]graphics.Event
	polls       int
	swaps       int
	shouldClose bool
}

func (c *fakeContext) MakeCurrent() {}
func (c *fakeContext) Shutdown() {}
func (c *fakeContext) GetFramebufferSize() (int, int) { return 800, 600 }
func (c *fakeContext) SetShouldClose(v bool) { c.shouldClose = v }
func (c *fakeContext) SwapBuffers() { c.swaps++ }

func (c *fakeContext) PollEvents() []graphics.Event {
	defer func() { c.polls++ }()
	if c.polls < len(c.batches) {
		return c.batches[c.polls]
	}
	// Close eventually so a broken loop cannot spin forever.
	if c.polls > 1000 {
		return []graphics.Event{graphics.Close()}
	}
	return nil
}
