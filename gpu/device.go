package gpu

import (
	"fmt"
	"sync"

	gl "github.com/go-gl/gl/v4.6-core/gl"
	"github.com/richinsley/goattractor/graphics"
	"github.com/richinsley/goattractor/logging"
)

var glInitOnce sync.Once

// Device implements graphics.Device on the OpenGL context current on the
// calling thread.
type Device struct {
	info graphics.Info
}

// NewDevice loads the GL function pointers. The context must already be
// current on this thread.
func NewDevice() (*Device, error) {
	var initErr error
	glInitOnce.Do(func() {
		initErr = gl.Init()
	})
	if initErr != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", initErr)
	}

	d := &Device{
		info: graphics.Info{
			Version:  gl.GoStr(gl.GetString(gl.VERSION)),
			Renderer: gl.GoStr(gl.GetString(gl.RENDERER)),
			Vendor:   gl.GoStr(gl.GetString(gl.VENDOR)),
		},
	}
	logging.Logger().Info("OpenGL initialized",
		"version", d.info.Version,
		"renderer", d.info.Renderer,
		"vendor", d.info.Vendor)

	gl.Enable(gl.FRAMEBUFFER_SRGB)
	gl.Enable(gl.MULTISAMPLE)
	return d, nil
}

func (d *Device) Info() graphics.Info { return d.info }

func (d *Device) Extensions() []string {
	var n int32
	gl.GetIntegerv(gl.NUM_EXTENSIONS, &n)
	exts := make([]string, 0, n)
	for i := int32(0); i < n; i++ {
		exts = append(exts, gl.GoStr(gl.GetStringi(gl.EXTENSIONS, uint32(i))))
	}
	return exts
}

// CheckError drains the GL error queue. Errors are only detected, not
// attributed to a call.
func (d *Device) CheckError() error {
	code := gl.GetError()
	if code == gl.NO_ERROR {
		return nil
	}
	first := code
	for code != gl.NO_ERROR {
		code = gl.GetError()
	}
	return fmt.Errorf("%w: glGetError returned 0x%04x", graphics.ErrGPURuntime, first)
}
