package main

import (
	"log/slog"
	"os"
	"runtime"

	"github.com/richinsley/goattractor/app"
	"github.com/richinsley/goattractor/attractor"
	"github.com/richinsley/goattractor/glfwcontext"
	"github.com/richinsley/goattractor/graphics"
	"github.com/richinsley/goattractor/logging"
	"github.com/richinsley/goattractor/notify"
	"github.com/richinsley/goattractor/options"
	"github.com/richinsley/goattractor/pipeline"
	"github.com/richinsley/goattractor/renderer"
)

func init() {
	// GLFW and the GL context must stay on the main OS thread.
	runtime.LockOSThread()
}

func newAccumulationRenderer(_ graphics.Device, cfg options.Config) pipeline.Renderable {
	gen := attractor.NewGenerator(attractor.DefaultParams, attractor.NewRandomJitter(attractor.DefaultJitterScale))
	return renderer.New(renderer.NewGLBackend(), gen, cfg.Width, cfg.Height, cfg.Samples)
}

func main() {
	logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	code := app.Run(options.Default(), glfwcontext.NewProvider(), newAccumulationRenderer, notify.Dialog{})
	os.Exit(code)
}
