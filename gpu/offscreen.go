package gpu

import (
	"fmt"
	"log"

	gl "github.com/go-gl/gl/v4.1-core/gl"
)

// Offscreen is an RGBA8 framebuffer object frames are rendered into when
// recording.
type Offscreen struct {
	fbo           uint32
	colorBuffer   uint32
	width, height int
}

func NewOffscreen(width, height int) (*Offscreen, error) {
	o := &Offscreen{width: width, height: height}

	gl.GenFramebuffers(1, &o.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, o.fbo)
	gl.GenRenderbuffers(1, &o.colorBuffer)
	gl.BindRenderbuffer(gl.RENDERBUFFER, o.colorBuffer)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.RGBA8, int32(width), int32(height))
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.RENDERBUFFER, o.colorBuffer)
	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		o.Destroy()
		return nil, fmt.Errorf("offscreen fbo is not complete (status 0x%x)", status)
	}
	log.Printf("Offscreen FBO: %dx%d RGBA8", width, height)
	return o, nil
}

func (o *Offscreen) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, o.fbo)
	gl.Viewport(0, 0, int32(o.width), int32(o.height))
}

func (o *Offscreen) Unbind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

// ReadPixels reads the color attachment. Rows come bottom-up.
func (o *Offscreen) ReadPixels() ([]byte, error) {
	pixels := make([]byte, o.width*o.height*4)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, o.fbo)
	gl.ReadBuffer(gl.COLOR_ATTACHMENT0)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(o.width), int32(o.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)
	if errCode := gl.GetError(); errCode != gl.NO_ERROR {
		return nil, fmt.Errorf("glReadPixels failed: 0x%x", errCode)
	}
	return pixels, nil
}

func (o *Offscreen) Destroy() {
	if o.colorBuffer != 0 {
		gl.DeleteRenderbuffers(1, &o.colorBuffer)
		o.colorBuffer = 0
	}
	if o.fbo != 0 {
		gl.DeleteFramebuffers(1, &o.fbo)
		o.fbo = 0
	}
}
