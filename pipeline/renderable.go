package pipeline

import "github.com/richinsley/goattractor/graphics"

// Renderable is the generator driven by the pipeline.
type Renderable interface {
	// Init runs once before the first frame. An error skips the frame loop.
	Init() error
	// Update draws one frame into target, which is already bound.
	Update(dt float64, target graphics.FrameTarget) error
	// Shutdown runs exactly once, whether or not Init succeeded.
	Shutdown()
}
