package glfwcontext

import (
	"testing"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/richinsley/goshapes/graphics"
	"github.com/stretchr/testify/assert"
)

func TestTranslateKey(t *testing.T) {
	assert.Equal(t, graphics.KeyEscape, TranslateKey(glfw.KeyEscape))
	assert.Equal(t, graphics.Key3, TranslateKey(glfw.Key3))
	assert.Equal(t, graphics.Key3, TranslateKey(glfw.KeyKP3))
	assert.Equal(t, graphics.KeyF4, TranslateKey(glfw.KeyF4))
	assert.Equal(t, graphics.KeyUnknown, TranslateKey(glfw.KeyF5))
	assert.Equal(t, graphics.KeyUnknown, TranslateKey(glfw.KeyA))
}

func TestKeyCallbackQueuesPresses(t *testing.T) {
	c := &Context{}
	c.glfwKeyCallback(nil, glfw.Key2, 0, glfw.Press, 0)
	c.glfwKeyCallback(nil, glfw.Key2, 0, glfw.Release, 0)
	c.glfwKeyCallback(nil, glfw.KeyF3, 0, glfw.Repeat, 0)
	c.glfwKeyCallback(nil, glfw.KeyF3, 0, glfw.Press, 0)
	c.glfwKeyCallback(nil, glfw.KeyQ, 0, glfw.Press, 0)
	c.glfwCloseCallback(nil)

	assert.Equal(t, []graphics.Event{
		graphics.Press(graphics.Key2),
		graphics.Press(graphics.KeyF3),
		graphics.Close(),
	}, c.events)
}
