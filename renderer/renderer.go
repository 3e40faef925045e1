package renderer

import (
	"log"

	"github.com/richinsley/goshapes/geometry"
	"github.com/richinsley/goshapes/graphics"
	"github.com/richinsley/goshapes/shader"
)

// DefaultBackground is the clear color of every frame.
var DefaultBackground = geometry.RGBA{R: 0.1, G: 0.1, B: 0.15, A: 1}

type Config struct {
	Background geometry.RGBA
	// Layout selects how shape vertices are submitted. TriangleList draws
	// each fan as an explicit list of triangles.
	Layout geometry.Primitive
}

type Renderer struct {
	device     graphics.Device
	programs   shader.Programs
	shapes     map[View]*geometry.Shape
	background geometry.RGBA
	frames     int
}

// NewRenderer takes ownership of programs; Shutdown deletes them.
func NewRenderer(device graphics.Device, programs shader.Programs, cfg Config) *Renderer {
	r := &Renderer{
		device:     device,
		programs:   programs,
		background: cfg.Background,
		shapes: map[View]*geometry.Shape{
			ViewQuad:     geometry.Quad(),
			ViewFan:      geometry.Fan(),
			ViewPentagon: geometry.Pentagon(),
		},
	}
	if cfg.Layout == geometry.TriangleList {
		for v, s := range r.shapes {
			r.shapes[v] = s.Triangulated()
		}
	}
	for k, p := range programs {
		if !p.Usable() {
			log.Printf("Warning: %s program is not usable, its shapes will not render correctly", k)
		}
	}
	return r
}

// Shape returns the geometry drawn for a single view.
func (r *Renderer) Shape(v View) *geometry.Shape {
	return r.shapes[v]
}

// Frames returns the number of frames rendered so far.
func (r *Renderer) Frames() int {
	return r.frames
}

// RenderFrame clears the target and issues one draw per visible shape.
func (r *Renderer) RenderFrame(s State) {
	r.device.Clear(r.background)
	for _, cmd := range r.Commands(s) {
		r.draw(cmd)
	}
	r.frames++
}

func (r *Renderer) draw(cmd DrawCommand) {
	prog := r.programs[cmd.Program]
	if prog == nil {
		return
	}
	r.device.UseProgram(prog.Handle)

	var colors []float32
	if cmd.Program == shader.Gradient {
		colors = cmd.Shape.ColorData()
	}
	mesh := r.device.Upload(cmd.Shape.PositionData(), colors)
	defer mesh.Release()

	if cmd.Program == shader.FlatUniform {
		r.device.SetUniformColor(prog.UniformLocation(shader.ColorUniform), cmd.Shape.UniformColor())
	}
	r.device.Draw(mesh, cmd.Shape.Primitive())
}

// Run drives the interactive loop: drain input, render, present. It returns
// the final state once a close is requested; no frame is rendered after
// that.
func (r *Renderer) Run(ctx graphics.Context, s State) State {
	for {
		for _, ev := range ctx.PollEvents() {
			next := s.Apply(ev)
			if next != s {
				log.Printf("%s -> %s", ev, next)
			}
			s = next
		}
		if s.Closing {
			ctx.SetShouldClose(true)
			return s
		}
		r.RenderFrame(s)
		ctx.SwapBuffers()
	}
}

// Shutdown deletes the shader programs.
func (r *Renderer) Shutdown() {
	r.programs.Delete(r.device)
}
