// Package pipeline runs the fixed per-frame sequence: poll, update into the
// multisampled frame target, resolve, present, check for GPU errors.
package pipeline

import (
	"errors"
	"fmt"

	"github.com/richinsley/goattractor/graphics"
	"github.com/richinsley/goattractor/logging"
	"github.com/richinsley/goattractor/notify"
	"github.com/richinsley/goattractor/options"
)

type Pipeline struct {
	cfg      options.Config
	provider graphics.Provider
	rc       *graphics.RenderContext
	notifier notify.Notifier
	stats    *FrameStats
	frames   uint64
}

// New takes ownership of rc; Run releases it through provider.
func New(cfg options.Config, provider graphics.Provider, rc *graphics.RenderContext, n notify.Notifier) *Pipeline {
	return &Pipeline{
		cfg:      cfg,
		provider: provider,
		rc:       rc,
		notifier: n,
		stats:    NewFrameStats(cfg.Name),
	}
}

// Frames returns the number of frames presented by Run.
func (p *Pipeline) Frames() uint64 { return p.frames }

// Run drives r until the surface asks to close or a frame fails. Shutdown of
// r, the frame target and the render context happen on every return path.
// The returned error is the first failure, nil on a normal close.
func (p *Pipeline) Run(r Renderable) (err error) {
	log := logging.Logger()
	surface, dev := p.rc.Surface, p.rc.Device

	var target graphics.FrameTarget
	defer func() {
		r.Shutdown()
		if target != nil {
			dev.BindFrameTarget(nil)
			dev.DeleteFrameTarget(target)
		}
		p.provider.Release(p.rc)
		log.Info("pipeline stopped", "frames", p.frames, "error", err)
	}()

	surface.SetSwapInterval(p.cfg.SwapInterval)

	target, err = dev.CreateFrameTarget(p.cfg.Width, p.cfg.Height, p.cfg.Samples)
	if err != nil {
		target = nil
		return fmt.Errorf("%w: failed to create frame target: %v", graphics.ErrPlatform, err)
	}
	dev.ClearFrameTarget(target)
	log.Info("frame target created",
		"width", p.cfg.Width,
		"height", p.cfg.Height,
		"samples", p.cfg.Samples)

	dev.BindFrameTarget(target)
	if err = r.Init(); err != nil {
		return fmt.Errorf("init failed: %w", err)
	}

	for {
		if surface.PollEvents() {
			log.Info("termination requested")
			return nil
		}
		if err = p.frame(r, target); err != nil {
			return err
		}
	}
}

func (p *Pipeline) frame(r Renderable, target graphics.FrameTarget) error {
	surface, dev := p.rc.Surface, p.rc.Device

	dt, published := p.stats.Tick(surface.Time())
	if published {
		fps, ms := p.stats.FPS()
		surface.SetTitle(p.stats.Title())
		logging.Logger().Debug("frame stats", "fps", fps, "frame_ms", ms)
	}

	dev.BindFrameTarget(target)
	updateErr := r.Update(dt, target)
	dev.BindFrameTarget(nil)

	dev.ResolveFrameTarget(target)
	surface.SwapBuffers()
	p.frames++

	var gpuErr error
	if err := dev.CheckError(); err != nil {
		p.notifier.Error("Error", "OpenGL error detected.")
		gpuErr = err
		if !errors.Is(gpuErr, graphics.ErrGPURuntime) {
			gpuErr = fmt.Errorf("%w: %v", graphics.ErrGPURuntime, err)
		}
	}

	if updateErr != nil {
		return fmt.Errorf("update failed: %w", updateErr)
	}
	return gpuErr
}
