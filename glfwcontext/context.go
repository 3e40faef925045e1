package glfwcontext

import (
	"log"
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/richinsley/goshapes/graphics"
)

// Context owns a GLFW window and queues its input as graphics events.
type Context struct {
	window *glfw.Window
	events []graphics.Event
	resize func(width, height int)
}

var _ graphics.Context = (*Context)(nil)

// keyMap translates the GLFW keys the demo reacts to. The number row and
// the keypad both select shapes.
var keyMap = map[glfw.Key]graphics.Key{
	glfw.KeyEscape: graphics.KeyEscape,
	glfw.Key1:      graphics.Key1,
	glfw.Key2:      graphics.Key2,
	glfw.Key3:      graphics.Key3,
	glfw.Key4:      graphics.Key4,
	glfw.KeyKP1:    graphics.Key1,
	glfw.KeyKP2:    graphics.Key2,
	glfw.KeyKP3:    graphics.Key3,
	glfw.KeyKP4:    graphics.Key4,
	glfw.KeyF1:     graphics.KeyF1,
	glfw.KeyF2:     graphics.KeyF2,
	glfw.KeyF3:     graphics.KeyF3,
	glfw.KeyF4:     graphics.KeyF4,
}

// TranslateKey maps a GLFW key to a demo key, or KeyUnknown.
func TranslateKey(key glfw.Key) graphics.Key {
	if k, ok := keyMap[key]; ok {
		return k
	}
	return graphics.KeyUnknown
}

// New creates and initializes a new GLFW window and returns a Context object.
func New(width, height int, title string, visible bool) (*Context, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	if visible {
		glfw.WindowHint(glfw.Resizable, glfw.True)
		glfw.WindowHint(glfw.Visible, glfw.True)
	} else {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, err
	}

	c := &Context{window: win}
	win.SetKeyCallback(c.glfwKeyCallback)
	win.SetCloseCallback(c.glfwCloseCallback)
	win.SetFramebufferSizeCallback(c.glfwFramebufferSizeCallback)
	return c, nil
}

// SetResizeCallback registers fn to run when the framebuffer size changes.
func (c *Context) SetResizeCallback(fn func(width, height int)) {
	c.resize = fn
}

func (c *Context) glfwFramebufferSizeCallback(w *glfw.Window, width, height int) {
	if c.resize != nil {
		c.resize(width, height)
	}
}

// glfwKeyCallback queues presses of known keys. Repeats and releases are
// dropped.
func (c *Context) glfwKeyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	if k := TranslateKey(key); k != graphics.KeyUnknown {
		c.events = append(c.events, graphics.Press(k))
	}
}

func (c *Context) glfwCloseCallback(w *glfw.Window) {
	c.events = append(c.events, graphics.Close())
}

// PollEvents processes pending window events without blocking and returns
// what they produced.
func (c *Context) PollEvents() []graphics.Event {
	glfw.PollEvents()
	evs := c.events
	c.events = nil
	return evs
}

// MakeCurrent makes the context current for the calling goroutine.
func (c *Context) MakeCurrent() {
	c.window.MakeContextCurrent()
}

func (c *Context) SwapBuffers() {
	c.window.SwapBuffers()
}

func (c *Context) SetShouldClose(v bool) {
	c.window.SetShouldClose(v)
}

func (c *Context) GetFramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

// Shutdown destroys the window.
func (c *Context) Shutdown() {
	c.window.Destroy()
}

// InitGraphics initializes the main graphics subsystem (GLFW). Must be called from the main thread.
func InitGraphics() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return err
	}
	log.Printf("GLFW Initialized")
	return nil
}

// TerminateGraphics shuts down the graphics subsystem. Must be called from the main thread.
func TerminateGraphics() {
	glfw.Terminate()
	log.Printf("GLFW Terminated")
}
