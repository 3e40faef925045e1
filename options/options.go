package options

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/richinsley/goshapes/geometry"
	"github.com/richinsley/goshapes/graphics"
	"gopkg.in/yaml.v3"
)

type DemoOptions struct {
	ConfigFile   *string
	Help         *bool
	Mode         *string // "interactive" or "record"
	Width        *int
	Height       *int
	Title        *string
	View         *string // initial shape selection
	Shading      *string // initial shading mode
	ShaderPolicy *string // "permissive" or "strict"
	Translate    *bool   // run sources through the WebGL2 translator
	GLES         *bool   // use the GLES dialect
	Layout       *string // "fan" or "triangles"
	Background   *string // "r,g,b,a"
	// Record options
	Frames     *int
	FPS        *int
	OutputFile *string
	FFMPEGPath *string
	Codec      *string
	Keys       *string // key script applied before recording, e.g. "3,F2"
}

// FileConfig is the YAML form of the options. Zero values leave the flag
// defaults in place.
type FileConfig struct {
	Mode         string    `yaml:"mode"`
	Width        int       `yaml:"width"`
	Height       int       `yaml:"height"`
	Title        string    `yaml:"title"`
	View         string    `yaml:"view"`
	Shading      string    `yaml:"shading"`
	ShaderPolicy string    `yaml:"shader_policy"`
	Translate    *bool     `yaml:"translate"`
	GLES         *bool     `yaml:"gles"`
	Layout       string    `yaml:"layout"`
	Background   []float32 `yaml:"background"`
	Record       struct {
		Frames     int    `yaml:"frames"`
		FPS        int    `yaml:"fps"`
		OutputFile string `yaml:"output"`
		FFMPEGPath string `yaml:"ffmpeg"`
		Codec      string `yaml:"codec"`
		Keys       string `yaml:"keys"`
	} `yaml:"record"`
}

// Register binds the options to fs with the demo's defaults.
func Register(fs *flag.FlagSet) *DemoOptions {
	return &DemoOptions{
		ConfigFile:   fs.String("config", "", "YAML config file; explicit flags override it"),
		Help:         fs.Bool("help", false, "Show help message"),
		Mode:         fs.String("mode", "interactive", "interactive or record"),
		Width:        fs.Int("width", 800, "Window width"),
		Height:       fs.Int("height", 600, "Window height"),
		Title:        fs.String("title", "goshapes", "Window title"),
		View:         fs.String("view", "all", "Initial shape: quad, fan, pentagon or all"),
		Shading:      fs.String("shading", "flat-constant", "Initial shading: flat-constant, flat-uniform, gradient or showcase"),
		ShaderPolicy: fs.String("shader-policy", "permissive", "Shader build failures: permissive (log and continue) or strict (exit)"),
		Translate:    fs.Bool("translate", false, "Translate WebGL2 shader sources before compiling"),
		GLES:         fs.Bool("gles", false, "Use the GLES shader dialect"),
		Layout:       fs.String("layout", "fan", "Vertex layout: fan or triangles"),
		Background:   fs.String("background", "0.1,0.1,0.15,1", "Clear color as r,g,b,a"),
		Frames:       fs.Int("frames", 120, "Frames to record"),
		FPS:          fs.Int("fps", 60, "Frames per second for recording"),
		OutputFile:   fs.String("output", "output.mp4", "Output file name for recording"),
		FFMPEGPath:   fs.String("ffmpeg", "", "Path to ffmpeg executable"),
		Codec:        fs.String("codec", "libx264", "Video codec for recording"),
		Keys:         fs.String("keys", "", "Comma separated keys applied before recording, e.g. 3,F2"),
	}
}

// Load parses the YAML file at path.
func Load(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// Apply copies file values into o for every flag not set explicitly on fs.
func (o *DemoOptions) Apply(cfg *FileConfig, fs *flag.FlagSet) {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	setString := func(name string, dst *string, v string) {
		if !set[name] && v != "" {
			*dst = v
		}
	}
	setInt := func(name string, dst *int, v int) {
		if !set[name] && v != 0 {
			*dst = v
		}
	}
	setBool := func(name string, dst *bool, v *bool) {
		if !set[name] && v != nil {
			*dst = *v
		}
	}

	setString("mode", o.Mode, cfg.Mode)
	setInt("width", o.Width, cfg.Width)
	setInt("height", o.Height, cfg.Height)
	setString("title", o.Title, cfg.Title)
	setString("view", o.View, cfg.View)
	setString("shading", o.Shading, cfg.Shading)
	setString("shader-policy", o.ShaderPolicy, cfg.ShaderPolicy)
	setBool("translate", o.Translate, cfg.Translate)
	setBool("gles", o.GLES, cfg.GLES)
	setString("layout", o.Layout, cfg.Layout)
	if len(cfg.Background) > 0 {
		parts := make([]string, len(cfg.Background))
		for i, c := range cfg.Background {
			parts[i] = fmt.Sprint(c)
		}
		setString("background", o.Background, strings.Join(parts, ","))
	}
	setInt("frames", o.Frames, cfg.Record.Frames)
	setInt("fps", o.FPS, cfg.Record.FPS)
	setString("output", o.OutputFile, cfg.Record.OutputFile)
	setString("ffmpeg", o.FFMPEGPath, cfg.Record.FFMPEGPath)
	setString("codec", o.Codec, cfg.Record.Codec)
	setString("keys", o.Keys, cfg.Record.Keys)
}

// Validate checks the values that do not belong to another package's parser.
func (o *DemoOptions) Validate() error {
	switch *o.Mode {
	case "interactive", "record":
	default:
		return fmt.Errorf("unknown mode %q", *o.Mode)
	}
	if *o.Width <= 0 || *o.Height <= 0 {
		return fmt.Errorf("invalid size %dx%d", *o.Width, *o.Height)
	}
	if *o.Mode == "record" {
		if *o.Frames <= 0 || *o.FPS <= 0 {
			return fmt.Errorf("record needs positive -frames and -fps")
		}
		if *o.OutputFile == "" {
			return fmt.Errorf("record needs -output")
		}
	}
	if _, err := o.VertexLayout(); err != nil {
		return err
	}
	if _, err := o.BackgroundColor(); err != nil {
		return err
	}
	_, err := o.KeyScript()
	return err
}

func (o *DemoOptions) VertexLayout() (geometry.Primitive, error) {
	switch strings.ToLower(*o.Layout) {
	case "fan", "":
		return geometry.TriangleFan, nil
	case "triangles":
		return geometry.TriangleList, nil
	}
	return geometry.TriangleFan, fmt.Errorf("unknown layout %q", *o.Layout)
}

func (o *DemoOptions) BackgroundColor() (geometry.RGBA, error) {
	return ParseColor(*o.Background)
}

func (o *DemoOptions) KeyScript() ([]graphics.Event, error) {
	return ParseKeys(*o.Keys)
}

// ParseColor parses "r,g,b" or "r,g,b,a" with channels in [0, 1].
func ParseColor(s string) (geometry.RGBA, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 3 && len(fields) != 4 {
		return geometry.RGBA{}, fmt.Errorf("color %q: want r,g,b[,a]", s)
	}
	v := [4]float32{0, 0, 0, 1}
	for i, f := range fields {
		var c float32
		if _, err := fmt.Sscan(strings.TrimSpace(f), &c); err != nil {
			return geometry.RGBA{}, fmt.Errorf("color %q: %w", s, err)
		}
		if c < 0 || c > 1 {
			return geometry.RGBA{}, fmt.Errorf("color %q: channel %v out of range", s, c)
		}
		v[i] = c
	}
	return geometry.RGBA{R: v[0], G: v[1], B: v[2], A: v[3]}, nil
}

// ParseKeys turns "3,F2" into key-press events. "close" requests a window
// close.
func ParseKeys(s string) ([]graphics.Event, error) {
	var evs []graphics.Event
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		if strings.EqualFold(f, "close") {
			evs = append(evs, graphics.Close())
			continue
		}
		k, err := graphics.ParseKey(f)
		if err != nil {
			return nil, err
		}
		evs = append(evs, graphics.Press(k))
	}
	return evs, nil
}
