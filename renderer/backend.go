package renderer

import "github.com/richinsley/goattractor/graphics"

// Backend issues the GPU work of the accumulation renderer.
type Backend interface {
	// Create allocates the accumulation buffer (cleared to zero), makes its
	// handle resident and builds the point and tonemap programs.
	Create(width, height, samples int, maxPoints int) error
	// BeginAccumulate binds the accumulation framebuffer with additive blending.
	BeginAccumulate()
	// DrawPoints draws x,y pairs into the accumulation buffer.
	DrawPoints(points []float32)
	// EndAccumulate disables blending and unbinds the accumulation framebuffer.
	EndAccumulate()
	// Tonemap binds target and runs the tonemap pass over the full viewport.
	Tonemap(target graphics.FrameTarget)
	// Destroy releases everything Create made. Safe to call more than once.
	Destroy()
}
