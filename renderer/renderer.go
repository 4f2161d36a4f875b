// Package renderer accumulates the orbit of the attractor into an HDR buffer
// and tonemaps it into the frame target every frame.
package renderer

import (
	"errors"
	"fmt"

	"github.com/richinsley/goattractor/attractor"
	"github.com/richinsley/goattractor/graphics"
	"github.com/richinsley/goattractor/logging"
)

// Renderer implements pipeline.Renderable.
type Renderer struct {
	gen       *attractor.Generator
	be        Backend
	width     int
	height    int
	samples   int
	points    []float32
	drawn     uint64
	frames    uint64
	ready     bool
	saturated bool
}

// Stats summarizes the work done so far.
type Stats struct {
	Frames    uint64
	Samples   uint64
	Iteration uint64
	Exhausted bool
}

// New creates a renderer over be. The accumulation buffer matches the
// viewport and sample count of the frame target it tonemaps into.
func New(be Backend, gen *attractor.Generator, width, height, samples int) *Renderer {
	return &Renderer{
		gen:     gen,
		be:      be,
		width:   width,
		height:  height,
		samples: samples,
	}
}

func (r *Renderer) Init() error {
	if err := r.be.Create(r.width, r.height, r.samples, r.gen.BatchSize); err != nil {
		r.be.Destroy()
		return fmt.Errorf("failed to create accumulation resources: %w", err)
	}
	r.points = make([]float32, 0, 2*r.gen.BatchSize)
	r.ready = true
	logging.Logger().Info("accumulation renderer initialized",
		"batch_size", r.gen.BatchSize,
		"lifetime_cap", r.gen.LifetimeCap)
	return nil
}

func (r *Renderer) Update(dt float64, target graphics.FrameTarget) error {
	if !r.ready {
		return errors.New("renderer is not initialized")
	}
	r.frames++

	if !r.gen.Exhausted() {
		r.points = r.gen.AppendBatch(r.points[:0])
		if len(r.points) > 0 {
			r.be.BeginAccumulate()
			r.be.DrawPoints(r.points)
			r.be.EndAccumulate()
			r.drawn += uint64(len(r.points) / 2)
		}
	}
	if r.gen.Exhausted() && !r.saturated {
		r.saturated = true
		logging.Logger().Info("lifetime cap reached", "samples", r.drawn, "frames", r.frames)
	}

	r.be.Tonemap(target)
	return nil
}

func (r *Renderer) Shutdown() {
	r.be.Destroy()
	r.ready = false
}

func (r *Renderer) Stats() Stats {
	return Stats{
		Frames:    r.frames,
		Samples:   r.drawn,
		Iteration: r.gen.State().Iteration,
		Exhausted: r.gen.Exhausted(),
	}
}
