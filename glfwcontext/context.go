package glfwcontext

import (
	"fmt"
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/richinsley/goattractor/gpu"
	"github.com/richinsley/goattractor/graphics"
	"github.com/richinsley/goattractor/logging"
)

// Context is the GLFW window that backs a graphics.RenderContext.
type Context struct {
	window *glfw.Window
}

// Provider creates the single window and GL 4.6 core context of a run.
// All methods must be called from the main, OS-locked thread.
type Provider struct{}

// NewProvider returns a GLFW backed graphics.Provider.
func NewProvider() *Provider { return &Provider{} }

// Acquire initializes GLFW, creates the window and makes its context current.
func (p *Provider) Acquire(width, height int, title string) (*graphics.RenderContext, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("%w: failed to initialize glfw: %v", graphics.ErrPlatform, err)
	}
	logging.Logger().Info("GLFW initialized")

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.SRGBCapable, glfw.True)
	glfw.WindowHint(glfw.RedBits, 8)
	glfw.WindowHint(glfw.GreenBits, 8)
	glfw.WindowHint(glfw.BlueBits, 8)
	// The default framebuffer is single-sampled; the frame target is resolved into it.
	glfw.WindowHint(glfw.Samples, 0)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("%w: failed to create window: %v", graphics.ErrPlatform, err)
	}

	c := &Context{window: win}
	win.SetKeyCallback(c.glfwKeyCallback)
	c.MakeCurrent()

	dev, err := gpu.NewDevice()
	if err != nil {
		c.shutdown()
		return nil, fmt.Errorf("%w: %v", graphics.ErrPlatform, err)
	}

	fbWidth, fbHeight := win.GetFramebufferSize()
	logging.Logger().Info("window created",
		"title", title,
		"framebuffer_width", fbWidth,
		"framebuffer_height", fbHeight)

	return &graphics.RenderContext{Surface: c, Device: dev}, nil
}

// Release destroys the window and terminates GLFW. Releasing an already
// released context does nothing.
func (p *Provider) Release(rc *graphics.RenderContext) {
	if rc == nil || rc.Surface == nil {
		return
	}
	if c, ok := rc.Surface.(*Context); ok {
		c.shutdown()
	}
	rc.Surface = nil
	rc.Device = nil
}

func (c *Context) shutdown() {
	if c.window == nil {
		return
	}
	glfw.DetachCurrentContext()
	c.window.Destroy()
	c.window = nil
	glfw.Terminate()
	logging.Logger().Info("GLFW terminated")
}

func (c *Context) glfwKeyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	// Escape is the only key this host reacts to.
	if key == glfw.KeyEscape && action == glfw.Press {
		w.SetShouldClose(true)
	}
}

// MakeCurrent makes the context current for the calling thread.
func (c *Context) MakeCurrent() {
	c.window.MakeContextCurrent()
}

// PollEvents drains the event queue and reports whether the window should close.
func (c *Context) PollEvents() bool {
	glfw.PollEvents()
	return c.window.ShouldClose()
}

func (c *Context) SwapBuffers() {
	c.window.SwapBuffers()
}

func (c *Context) SetSwapInterval(interval int) {
	glfw.SwapInterval(interval)
}

func (c *Context) SetTitle(title string) {
	c.window.SetTitle(title)
}

func (c *Context) Time() float64 {
	return glfw.GetTime()
}
