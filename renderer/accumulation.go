package renderer

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/goattractor/gpu"
	"github.com/richinsley/goattractor/graphics"
	"github.com/richinsley/goattractor/shader"
)

// PointIntensity is the color added by every orbit sample.
const PointIntensity = 0.007

// Projection maps attractor space onto the accumulation buffer.
func Projection() mgl32.Mat4 {
	return mgl32.Ortho2D(-3.5, 3.5, -3.0, 4.0)
}

// GLBackend is the OpenGL 4.6 implementation of Backend. The accumulation
// texture is multisampled RGBA16F and is read by the tonemap pass through an
// ARB bindless handle that stays resident until Destroy.
type GLBackend struct {
	accumFbo     uint32
	accumTexture uint32
	accumHandle  uint64
	resident     bool

	pointProgram   uint32
	tonemapProgram uint32
	pointVAO       uint32
	pointVBO       uint32
	emptyVAO       uint32
	maxPoints      int

	width  int
	height int
}

func NewGLBackend() *GLBackend { return &GLBackend{} }

func (b *GLBackend) Create(width, height, samples int, maxPoints int) error {
	b.width, b.height = width, height
	b.maxPoints = maxPoints

	gl.CreateTextures(gl.TEXTURE_2D_MULTISAMPLE, 1, &b.accumTexture)
	gl.TextureStorage2DMultisample(b.accumTexture, int32(samples), gl.RGBA16F, int32(width), int32(height), false)
	gl.ClearTexImage(b.accumTexture, 0, gl.RGBA, gl.FLOAT, nil)

	gl.CreateFramebuffers(1, &b.accumFbo)
	gl.NamedFramebufferTexture(b.accumFbo, gl.COLOR_ATTACHMENT0, b.accumTexture, 0)
	if status := gl.CheckNamedFramebufferStatus(b.accumFbo, gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
		return fmt.Errorf("accumulation fbo is not complete (status 0x%04x)", status)
	}

	b.accumHandle = gl.GetTextureHandleARB(b.accumTexture)
	if b.accumHandle == 0 {
		return fmt.Errorf("failed to get a bindless handle for the accumulation texture")
	}
	gl.MakeTextureHandleResidentARB(b.accumHandle)
	b.resident = true

	var err error
	b.pointProgram, err = gpu.NewProgram(shader.PointVertexShader(), shader.PointFragmentShader())
	if err != nil {
		return fmt.Errorf("failed to create point program: %w", err)
	}
	proj := Projection()
	gl.ProgramUniformMatrix4fv(b.pointProgram, shader.ProjectionLocation, 1, false, &proj[0])
	gl.ProgramUniform3f(b.pointProgram, shader.ColorLocation, PointIntensity, PointIntensity, PointIntensity)

	b.tonemapProgram, err = gpu.NewProgram(shader.FullscreenVertexShader(), shader.TonemapFragmentShader())
	if err != nil {
		return fmt.Errorf("failed to create tonemap program: %w", err)
	}
	gl.ProgramUniformHandleui64ARB(b.tonemapProgram, shader.AccumLocation, b.accumHandle)

	gl.CreateBuffers(1, &b.pointVBO)
	gl.NamedBufferData(b.pointVBO, 2*4*maxPoints, nil, gl.STREAM_DRAW)
	gl.CreateVertexArrays(1, &b.pointVAO)
	gl.VertexArrayVertexBuffer(b.pointVAO, 0, b.pointVBO, 0, 2*4)
	gl.EnableVertexArrayAttrib(b.pointVAO, 0)
	gl.VertexArrayAttribFormat(b.pointVAO, 0, 2, gl.FLOAT, false, 0)
	gl.VertexArrayAttribBinding(b.pointVAO, 0, 0)

	// The fullscreen triangle has no attributes but core profile still needs a VAO.
	gl.CreateVertexArrays(1, &b.emptyVAO)

	gl.PointSize(1.0)
	gl.BlendFunc(gl.ONE, gl.ONE)
	gl.BlendEquation(gl.FUNC_ADD)
	return nil
}

func (b *GLBackend) BeginAccumulate() {
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, b.accumFbo)
	gl.Viewport(0, 0, int32(b.width), int32(b.height))
	gl.Enable(gl.BLEND)
}

func (b *GLBackend) DrawPoints(points []float32) {
	for len(points) > 0 {
		n := min(len(points)/2, b.maxPoints)
		gl.NamedBufferSubData(b.pointVBO, 0, 2*4*n, gl.Ptr(points))
		gl.UseProgram(b.pointProgram)
		gl.BindVertexArray(b.pointVAO)
		gl.DrawArrays(gl.POINTS, 0, int32(n))
		points = points[2*n:]
	}
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

func (b *GLBackend) EndAccumulate() {
	gl.Disable(gl.BLEND)
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, 0)
}

func (b *GLBackend) Tonemap(target graphics.FrameTarget) {
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, target.Framebuffer())
	w, h := target.Size()
	gl.Viewport(0, 0, int32(w), int32(h))
	gl.UseProgram(b.tonemapProgram)
	gl.BindVertexArray(b.emptyVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

func (b *GLBackend) Destroy() {
	if b.resident {
		gl.MakeTextureHandleNonResidentARB(b.accumHandle)
		b.resident = false
		b.accumHandle = 0
	}
	if b.tonemapProgram != 0 {
		gl.DeleteProgram(b.tonemapProgram)
		b.tonemapProgram = 0
	}
	if b.pointProgram != 0 {
		gl.DeleteProgram(b.pointProgram)
		b.pointProgram = 0
	}
	if b.pointVAO != 0 {
		gl.DeleteVertexArrays(1, &b.pointVAO)
		b.pointVAO = 0
	}
	if b.emptyVAO != 0 {
		gl.DeleteVertexArrays(1, &b.emptyVAO)
		b.emptyVAO = 0
	}
	if b.pointVBO != 0 {
		gl.DeleteBuffers(1, &b.pointVBO)
		b.pointVBO = 0
	}
	if b.accumFbo != 0 {
		gl.DeleteFramebuffers(1, &b.accumFbo)
		b.accumFbo = 0
	}
	if b.accumTexture != 0 {
		gl.DeleteTextures(1, &b.accumTexture)
		b.accumTexture = 0
	}
}
