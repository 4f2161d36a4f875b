package options

import (
	"errors"
	"fmt"
)

// Compile-time defaults for the single window this host drives.
const (
	DefaultName         = "goattractor"
	DefaultWidth        = 2048
	DefaultHeight       = 2048
	DefaultSwapInterval = 1
	// DefaultSamples is the multisample count shared by the presentation
	// target and the accumulation buffer.
	DefaultSamples = 8
)

// DefaultRequiredExtensions gates startup. Only bindless textures are used by
// the renderer; the NV extensions select the class of hardware it was tuned on.
var DefaultRequiredExtensions = []string{
	"GL_ARB_bindless_texture",
	"GL_NV_mesh_shader",
	"GL_NV_path_rendering",
}

// Config holds everything fixed at startup. Nothing here is parsed at runtime.
type Config struct {
	Name               string
	Width              int
	Height             int
	SwapInterval       int // 0 = don't wait for vsync, 1 = one refresh, ...
	Samples            int
	RequiredExtensions []string
}

// Default returns the compiled-in configuration.
func Default() Config {
	req := make([]string, len(DefaultRequiredExtensions))
	copy(req, DefaultRequiredExtensions)
	return Config{
		Name:               DefaultName,
		Width:              DefaultWidth,
		Height:             DefaultHeight,
		SwapInterval:       DefaultSwapInterval,
		Samples:            DefaultSamples,
		RequiredExtensions: req,
	}
}

func (c Config) Validate() error {
	var errs []error
	if c.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("viewport must be positive, got %dx%d", c.Width, c.Height))
	}
	if c.SwapInterval < 0 {
		errs = append(errs, fmt.Errorf("swap interval must not be negative, got %d", c.SwapInterval))
	}
	if c.Samples <= 0 {
		errs = append(errs, fmt.Errorf("sample count must be positive, got %d", c.Samples))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
