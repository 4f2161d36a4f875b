package gpu

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.6-core/gl"
	"github.com/richinsley/goattractor/graphics"
)

// frameTarget is an MSAA framebuffer with a single sRGB color attachment.
type frameTarget struct {
	fbo       uint32
	textureID uint32
	width     int
	height    int
	samples   int
}

func (t *frameTarget) Framebuffer() uint32 { return t.fbo }
func (t *frameTarget) Size() (int, int)    { return t.width, t.height }
func (t *frameTarget) Samples() int        { return t.samples }

func (d *Device) CreateFrameTarget(width, height, samples int) (graphics.FrameTarget, error) {
	t := &frameTarget{width: width, height: height, samples: samples}

	gl.CreateTextures(gl.TEXTURE_2D_MULTISAMPLE, 1, &t.textureID)
	gl.TextureStorage2DMultisample(t.textureID, int32(samples), gl.SRGB8_ALPHA8, int32(width), int32(height), false)

	gl.CreateFramebuffers(1, &t.fbo)
	gl.NamedFramebufferTexture(t.fbo, gl.COLOR_ATTACHMENT0, t.textureID, 0)
	if status := gl.CheckNamedFramebufferStatus(t.fbo, gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
		d.DeleteFrameTarget(t)
		return nil, fmt.Errorf("frame target fbo is not complete (status 0x%04x)", status)
	}
	return t, nil
}

func (d *Device) ClearFrameTarget(target graphics.FrameTarget) {
	black := [4]float32{0, 0, 0, 0}
	gl.ClearNamedFramebufferfv(target.Framebuffer(), gl.COLOR, 0, &black[0])
}

func (d *Device) BindFrameTarget(target graphics.FrameTarget) {
	if target == nil {
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		return
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, target.Framebuffer())
}

func (d *Device) ResolveFrameTarget(target graphics.FrameTarget) {
	w, h := target.Size()
	gl.BlitNamedFramebuffer(target.Framebuffer(), 0,
		0, 0, int32(w), int32(h),
		0, 0, int32(w), int32(h),
		gl.COLOR_BUFFER_BIT, gl.NEAREST)
}

func (d *Device) DeleteFrameTarget(target graphics.FrameTarget) {
	t, ok := target.(*frameTarget)
	if !ok || t == nil {
		return
	}
	if t.fbo != 0 {
		gl.DeleteFramebuffers(1, &t.fbo)
		t.fbo = 0
	}
	if t.textureID != 0 {
		gl.DeleteTextures(1, &t.textureID)
		t.textureID = 0
	}
}
