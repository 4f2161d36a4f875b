// Package app wires startup: acquire the context, gate on capabilities, then
// hand everything to the frame pipeline.
package app

import (
	"errors"

	"github.com/richinsley/goattractor/capability"
	"github.com/richinsley/goattractor/graphics"
	"github.com/richinsley/goattractor/logging"
	"github.com/richinsley/goattractor/notify"
	"github.com/richinsley/goattractor/options"
	"github.com/richinsley/goattractor/pipeline"
)

// Process exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
)

const unsupportedMessage = "Sorry but this application requires modern NVIDIA GPU with latest graphics drivers."

// RenderableFactory builds the generator once the context is known to be usable.
type RenderableFactory func(dev graphics.Device, cfg options.Config) pipeline.Renderable

// Run executes one full session and returns the process exit code.
func Run(cfg options.Config, provider graphics.Provider, newRenderable RenderableFactory, n notify.Notifier) int {
	log := logging.Logger()

	if err := cfg.Validate(); err != nil {
		log.Error("startup failed", "error", err)
		return ExitFailure
	}

	rc, err := provider.Acquire(cfg.Width, cfg.Height, cfg.Name)
	if err != nil {
		log.Error("could not acquire render context", "error", err)
		return ExitFailure
	}

	caps := capability.Probe(rc.Device)
	log.Info("capabilities probed",
		"extensions", caps.Len(),
		"relevant", caps.Subset(cfg.RequiredExtensions...).Names())
	if err := capability.RequireAll(caps, cfg.RequiredExtensions); err != nil {
		log.Error("startup failed", "error", err)
		n.Error("Unsupported GPU", unsupportedMessage)
		provider.Release(rc)
		return ExitFailure
	}

	p := pipeline.New(cfg, provider, rc, n)
	if err := p.Run(newRenderable(rc.Device, cfg)); err != nil {
		if errors.Is(err, graphics.ErrGPURuntime) {
			log.Error("stopped after a GPU error", "error", err)
		} else {
			log.Error("run failed", "error", err)
		}
		return ExitFailure
	}
	return ExitOK
}
