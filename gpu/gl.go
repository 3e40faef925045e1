package gpu

import (
	"fmt"
	"sync"

	gl "github.com/go-gl/gl/v4.1-core/gl"
)

var (
	glInitOnce sync.Once
	glInitErr  error
)

// Init loads the OpenGL function pointers for the current context. It must
// run after the context is made current.
func Init() error {
	glInitOnce.Do(func() {
		glInitErr = gl.Init()
	})
	if glInitErr != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", glInitErr)
	}
	return nil
}

// Info describes the driver behind the current context.
type Info struct {
	Vendor   string
	Renderer string
	Version  string
	GLSL     string
}

func GetInfo() Info {
	return Info{
		Vendor:   gl.GoStr(gl.GetString(gl.VENDOR)),
		Renderer: gl.GoStr(gl.GetString(gl.RENDERER)),
		Version:  gl.GoStr(gl.GetString(gl.VERSION)),
		GLSL:     gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
	}
}

func (i Info) String() string {
	return fmt.Sprintf("%s %s, OpenGL %s, GLSL %s", i.Vendor, i.Renderer, i.Version, i.GLSL)
}
