package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/richinsley/goshapes/geometry"
	"github.com/richinsley/goshapes/glfwcontext"
	"github.com/richinsley/goshapes/gpu"
	"github.com/richinsley/goshapes/options"
	"github.com/richinsley/goshapes/renderer"
	"github.com/richinsley/goshapes/shader"
	"github.com/richinsley/goshapes/translator"
)

// exitStartupFailure is returned when the window, the GL context or the
// shader programs cannot be brought up.
const exitStartupFailure = -1

// settings are the options after parsing and validation.
type settings struct {
	opts       *options.DemoOptions
	policy     shader.Policy
	initial    renderer.State
	layout     geometry.Primitive
	background geometry.RGBA
}

func parseSettings(o *options.DemoOptions) (*settings, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	s := &settings{opts: o}
	var err error
	if s.policy, err = shader.ParsePolicy(*o.ShaderPolicy); err != nil {
		return nil, err
	}
	if s.initial.View, err = renderer.ParseView(*o.View); err != nil {
		return nil, err
	}
	if s.initial.Shading, err = renderer.ParseShading(*o.Shading); err != nil {
		return nil, err
	}
	if s.layout, err = o.VertexLayout(); err != nil {
		return nil, err
	}
	if s.background, err = o.BackgroundColor(); err != nil {
		return nil, err
	}
	keys, err := o.KeyScript()
	if err != nil {
		return nil, err
	}
	s.initial = s.initial.ApplyAll(keys)
	return s, nil
}

func newBuilder(s *settings, compiler shader.Compiler) (*shader.Builder, error) {
	b := &shader.Builder{Compiler: compiler, Policy: s.policy}
	if !*s.opts.Translate {
		return b, nil
	}
	tr, err := translator.New(*s.opts.GLES)
	if err != nil {
		if s.policy == shader.Strict {
			return nil, err
		}
		log.Printf("Warning: %v; compiling sources untranslated", err)
		return b, nil
	}
	b.Translator = tr
	return b, nil
}

func run(s *settings) int {
	o := s.opts
	recordMode := *o.Mode == "record"

	if err := glfwcontext.InitGraphics(); err != nil {
		log.Printf("Failed to initialize GLFW: %v", err)
		return exitStartupFailure
	}
	defer glfwcontext.TerminateGraphics()

	// Record mode renders into an FBO behind a hidden window.
	ctx, err := glfwcontext.New(*o.Width, *o.Height, *o.Title, !recordMode)
	if err != nil {
		log.Printf("Failed to create window: %v", err)
		return exitStartupFailure
	}
	defer ctx.Shutdown()

	ctx.MakeCurrent()
	if err := gpu.Init(); err != nil {
		log.Printf("%v", err)
		return exitStartupFailure
	}
	fmt.Println(gpu.GetInfo())
	printLegend(os.Stdout)

	device := gpu.NewDevice()
	builder, err := newBuilder(s, device)
	if err != nil {
		log.Printf("Failed to set up shader translation: %v", err)
		return exitStartupFailure
	}
	programs, err := builder.BuildAll(*o.GLES)
	if err != nil {
		log.Printf("Failed to build shader programs: %v", err)
		return exitStartupFailure
	}

	r := renderer.NewRenderer(device, programs, renderer.Config{
		Background: s.background,
		Layout:     s.layout,
	})
	defer r.Shutdown()

	if recordMode {
		return record(r, s)
	}

	device.Viewport(ctx.GetFramebufferSize())
	ctx.SetResizeCallback(device.Viewport)

	log.Printf("Starting interactive render loop in %s...", s.initial)
	final := r.Run(ctx, s.initial)
	log.Printf("Closing after %d frames in %s", r.Frames(), final)
	return 0
}

func record(r *renderer.Renderer, s *settings) int {
	o := s.opts
	target, err := gpu.NewOffscreen(*o.Width, *o.Height)
	if err != nil {
		log.Printf("Failed to create offscreen target: %v", err)
		return exitStartupFailure
	}
	defer target.Destroy()

	ropts := renderer.RecordOptions{
		Width:      *o.Width,
		Height:     *o.Height,
		FPS:        *o.FPS,
		Frames:     *o.Frames,
		OutputFile: *o.OutputFile,
		FFMPEGPath: *o.FFMPEGPath,
		Codec:      *o.Codec,
		Progress:   os.Stderr,
	}
	if err := r.Record(target, s.initial, ropts, renderer.NewFFmpegEncoder(ropts)); err != nil {
		log.Printf("Recording failed: %v", err)
		return 1
	}
	log.Printf("Successfully rendered to %s", *o.OutputFile)
	return 0
}

func init() {
	runtime.LockOSThread()
}

func main() {
	opts := options.Register(flag.CommandLine)
	flag.Parse()

	if *opts.Help {
		fmt.Println("goshapes - polygon shading demo")
		flag.PrintDefaults()
		return
	}

	if *opts.ConfigFile != "" {
		cfg, err := options.Load(*opts.ConfigFile)
		if err != nil {
			log.Printf("%v", err)
			os.Exit(exitStartupFailure)
		}
		opts.Apply(cfg, flag.CommandLine)
	}

	s, err := parseSettings(opts)
	if err != nil {
		log.Printf("Invalid options: %v", err)
		os.Exit(exitStartupFailure)
	}
	os.Exit(run(s))
}
