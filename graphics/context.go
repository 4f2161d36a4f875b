package graphics

// Surface is the native drawable window plus its event queue.
type Surface interface {
	// PollEvents drains pending window events without blocking and reports
	// whether a termination request (window close, escape key) has been seen.
	PollEvents() bool
	SwapBuffers()
	SetSwapInterval(interval int)
	SetTitle(title string)
	// Time returns seconds since the surface was created.
	Time() float64
}

// FrameTarget is a framebuffer with a single multisampled color attachment.
type FrameTarget interface {
	Framebuffer() uint32
	Size() (int, int)
	Samples() int
}

// Info describes the driver behind a Device.
type Info struct {
	Version  string
	Renderer string
	Vendor   string
}

// Device is the GPU context that is current on the calling thread.
type Device interface {
	Info() Info
	// Extensions lists every extension string the context advertises.
	Extensions() []string
	CreateFrameTarget(width, height, samples int) (FrameTarget, error)
	ClearFrameTarget(target FrameTarget)
	// BindFrameTarget makes target the current draw framebuffer. A nil
	// target binds the default framebuffer.
	BindFrameTarget(target FrameTarget)
	// ResolveFrameTarget blits target 1:1 into the default framebuffer.
	ResolveFrameTarget(target FrameTarget)
	DeleteFrameTarget(target FrameTarget)
	// CheckError reports whether any GPU error was raised since the last call.
	CheckError() error
}

// RenderContext bundles the window and the GL context created for it.
type RenderContext struct {
	Surface Surface
	Device  Device
}

// Provider creates and tears down the one RenderContext of a run.
type Provider interface {
	Acquire(width, height int, title string) (*RenderContext, error)
	Release(rc *RenderContext)
}
