package graphics

import "errors"

var (
	// ErrPlatform means no window, context or pixel format could be created.
	ErrPlatform = errors.New("platform error")
	// ErrUnsupportedHardware means a required GPU capability is missing.
	ErrUnsupportedHardware = errors.New("unsupported hardware")
	// ErrGPURuntime means the GPU error flag was raised during a frame.
	ErrGPURuntime = errors.New("gpu runtime error")
)
