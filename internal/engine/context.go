package engine

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"candlechart/internal/utils"
)

// GraphicsContext owns window and GL context lifetime. It is created once
// at startup and must be closed on every exit path; the engine borrows it
// but never owns it.
type GraphicsContext struct {
	window *glfw.Window
}

// NewGraphicsContext initializes GLFW, opens a fixed-size window with a
// 3.3 core forward-compatible context and loads the GL function pointers.
// The caller must be locked to the OS thread.
func NewGraphicsContext(width, height int, title string) (*GraphicsContext, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("init glfw: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("init gl: %w", err)
	}

	// Pacing is the engine's own 60 Hz throttle, not vsync.
	glfw.SwapInterval(0)

	fbWidth, fbHeight := window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	utils.Info("GL: %s on %s", gl.GoStr(gl.GetString(gl.VERSION)), gl.GoStr(gl.GetString(gl.RENDERER)))
	return &GraphicsContext{window: window}, nil
}

func (c *GraphicsContext) Window() *glfw.Window {
	return c.window
}

func (c *GraphicsContext) SwapBuffers() {
	c.window.SwapBuffers()
}

// Close tears the window and GLFW down. Safe to call exactly once, on any
// exit path, including early startup failure after the context was made.
func (c *GraphicsContext) Close() {
	c.window.Destroy()
	glfw.Terminate()
}
