package renderer

import (
	"fmt"
	"io"
	"log"

	"github.com/schollz/progressbar/v3"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// Frame represents a single rendered frame's data, ready for encoding.
type Frame struct {
	Pixels []byte
	PTS    int64
}

// Target is an offscreen framebuffer frames are rendered into and read back
// from.
type Target interface {
	Bind()
	Unbind()
	// ReadPixels returns tightly packed RGBA8 rows, bottom row first.
	ReadPixels() ([]byte, error)
}

// Encoder consumes frames until the channel is closed. It must keep
// draining the channel after a failure so the producer never blocks.
type Encoder interface {
	Encode(frames <-chan *Frame) error
}

type RecordOptions struct {
	Width      int
	Height     int
	FPS        int
	Frames     int
	OutputFile string
	FFMPEGPath string
	Codec      string
	// Progress receives the progress bar; nil disables it.
	Progress io.Writer
}

const numBuffers = 3 // frames in flight between renderer and encoder

// Record renders opts.Frames frames of state s into target and hands them to
// enc. The state is fixed for the whole recording.
func (r *Renderer) Record(target Target, s State, opts RecordOptions, enc Encoder) error {
	if s.Closing {
		return fmt.Errorf("nothing to record: state is closing")
	}
	log.Printf("Recording %d frames of %s...", opts.Frames, s)

	frameChan := make(chan *Frame, numBuffers)
	encoderDoneChan := make(chan error, 1)
	go func() {
		encoderDoneChan <- enc.Encode(frameChan)
	}()

	progress := opts.Progress
	if progress == nil {
		progress = io.Discard
	}
	bar := progressbar.NewOptions(opts.Frames,
		progressbar.OptionSetWriter(progress),
		progressbar.OptionSetDescription("recording"),
		progressbar.OptionShowCount(),
	)
	defer bar.Close()

	for i := 0; i < opts.Frames; i++ {
		target.Bind()
		r.RenderFrame(s)
		pixels, err := target.ReadPixels()
		target.Unbind()
		if err != nil {
			close(frameChan)
			<-encoderDoneChan
			return fmt.Errorf("failed to read pixels on frame %d: %w", i, err)
		}

		frameChan <- &Frame{Pixels: pixels, PTS: int64(i)}
		bar.Add(1)
	}

	// Close the channel to signal the producer is done
	close(frameChan)
	if err := <-encoderDoneChan; err != nil {
		return fmt.Errorf("encoder failed: %w", err)
	}
	return nil
}

// FFmpegEncoder pipes raw RGBA frames into an ffmpeg process.
type FFmpegEncoder struct {
	opts RecordOptions
	// run executes the ffmpeg command reading frames from in.
	run func(cmd *ffmpeg.Stream, in io.Reader) error
}

func NewFFmpegEncoder(opts RecordOptions) *FFmpegEncoder {
	return &FFmpegEncoder{
		opts: opts,
		run:  func(cmd *ffmpeg.Stream, _ io.Reader) error { return cmd.Run() },
	}
}

// Args returns the ffmpeg input and output arguments.
func (e *FFmpegEncoder) Args() (inputArgs ffmpeg.KwArgs, outputArgs ffmpeg.KwArgs) {
	inputArgs = ffmpeg.KwArgs{
		"format":  "rawvideo",
		"pix_fmt": "rgba",
		"s":       fmt.Sprintf("%dx%d", e.opts.Width, e.opts.Height),
		"r":       e.opts.FPS,
	}
	codec := e.opts.Codec
	if codec == "" {
		codec = "libx264"
	}
	outputArgs = ffmpeg.KwArgs{
		// GL rows come bottom-up.
		"vf":      "vflip",
		"c:v":     codec,
		"pix_fmt": "yuv420p",
	}
	return
}

func (e *FFmpegEncoder) stream(in io.Reader) *ffmpeg.Stream {
	inputArgs, outputArgs := e.Args()
	cmd := ffmpeg.Input("pipe:", inputArgs).
		Output(e.opts.OutputFile, outputArgs).
		OverWriteOutput().WithInput(in).ErrorToStdOut()
	if e.opts.FFMPEGPath != "" {
		cmd = cmd.SetFfmpegPath(e.opts.FFMPEGPath)
	}
	return cmd
}

func (e *FFmpegEncoder) Encode(frames <-chan *Frame) error {
	pipeReader, pipeWriter := io.Pipe()
	cmd := e.stream(pipeReader)

	errc := make(chan error, 1)
	go func() {
		err := e.run(cmd, pipeReader)
		// Unblock writes if ffmpeg exits before reading everything.
		pipeReader.CloseWithError(err)
		errc <- err
	}()

	frameSize := e.opts.Width * e.opts.Height * 4
	var writeErr error
	for frame := range frames {
		if writeErr != nil {
			continue
		}
		if len(frame.Pixels) != frameSize {
			writeErr = fmt.Errorf("frame %d has %d bytes, want %d", frame.PTS, len(frame.Pixels), frameSize)
			continue
		}
		if _, err := pipeWriter.Write(frame.Pixels); err != nil {
			log.Printf("Error writing frame %d to ffmpeg: %v", frame.PTS, err)
			writeErr = fmt.Errorf("failed to write frame %d to ffmpeg: %w", frame.PTS, err)
		}
	}
	pipeWriter.Close()

	if err := <-errc; err != nil {
		return fmt.Errorf("ffmpeg failed: %w", err)
	}
	return writeErr
}
