package renderer

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/goattractor/attractor"
	"github.com/richinsley/goattractor/graphics"
)

// softBackend accumulates points on the CPU with the same projection and
// additive blend as GLBackend.
type softBackend struct {
	w, h  int
	accum []float32
	proj  mgl32.Mat4

	createErr error
	created   int
	destroyed int

	begins, ends, draws, tonemaps int
	inAccum                       bool
	drawOutsideAccum              bool
	lastTarget                    graphics.FrameTarget
}

func (b *softBackend) Create(width, height, samples, maxPoints int) error {
	b.created++
	if b.createErr != nil {
		return b.createErr
	}
	b.w, b.h = width, height
	b.accum = make([]float32, width*height)
	b.proj = Projection()
	return nil
}

func (b *softBackend) BeginAccumulate() { b.begins++; b.inAccum = true }
func (b *softBackend) EndAccumulate()   { b.ends++; b.inAccum = false }

func (b *softBackend) DrawPoints(points []float32) {
	b.draws++
	if !b.inAccum {
		b.drawOutsideAccum = true
	}
	for i := 0; i+1 < len(points); i += 2 {
		clip := b.proj.Mul4x1(mgl32.Vec4{points[i], points[i+1], 0, 1})
		px := int((clip.X()*0.5 + 0.5) * float32(b.w))
		py := int((clip.Y()*0.5 + 0.5) * float32(b.h))
		if px < 0 || py < 0 || px >= b.w || py >= b.h {
			continue
		}
		b.accum[py*b.w+px] += PointIntensity
	}
}

func (b *softBackend) Tonemap(target graphics.FrameTarget) {
	b.tonemaps++
	b.lastTarget = target
}

func (b *softBackend) Destroy() { b.destroyed++ }

type stubTarget struct{}

func (stubTarget) Framebuffer() uint32 { return 1 }
func (stubTarget) Size() (int, int)    { return 32, 32 }
func (stubTarget) Samples() int        { return 8 }

func newTestRenderer(batch int, lifetime uint64, j attractor.Jitter) (*Renderer, *softBackend) {
	gen := attractor.NewGenerator(attractor.DefaultParams, j)
	gen.BatchSize = batch
	gen.LifetimeCap = lifetime
	be := &softBackend{}
	return New(be, gen, 32, 32, 8), be
}

func TestUpdateDrawsBatchThenTonemaps(t *testing.T) {
	r, be := newTestRenderer(100, 1000, attractor.ZeroJitter{})
	if err := r.Init(); err != nil {
		t.Fatal(err)
	}
	target := stubTarget{}
	if err := r.Update(0.016, target); err != nil {
		t.Fatal(err)
	}
	if be.begins != 1 || be.draws != 1 || be.ends != 1 {
		t.Errorf("begin/draw/end = %d/%d/%d, want 1/1/1", be.begins, be.draws, be.ends)
	}
	if be.drawOutsideAccum {
		t.Error("points were drawn outside the accumulation scope")
	}
	if be.tonemaps != 1 || be.lastTarget != target {
		t.Errorf("tonemaps = %d, target = %v", be.tonemaps, be.lastTarget)
	}
	if got := r.Stats().Samples; got != 100 {
		t.Errorf("Samples = %d, want 100", got)
	}
}

func TestSaturationKeepsTonemapping(t *testing.T) {
	r, be := newTestRenderer(10, 25, attractor.ZeroJitter{})
	if err := r.Init(); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 6; i++ {
		if err := r.Update(0, stubTarget{}); err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
	}
	st := r.Stats()
	if st.Samples != 25 || st.Iteration != 25 || !st.Exhausted {
		t.Errorf("Stats() = %+v, want 25 samples, exhausted", st)
	}
	if be.draws != 3 {
		t.Errorf("draw calls = %d, want 3", be.draws)
	}
	if be.tonemaps != 6 {
		t.Errorf("tonemap passes = %d, want 6", be.tonemaps)
	}
}

func TestAccumulationIsNonDecreasing(t *testing.T) {
	r, be := newTestRenderer(500, 20_000, attractor.NewRandomJitter(attractor.DefaultJitterScale))
	if err := r.Init(); err != nil {
		t.Fatal(err)
	}
	prev := make([]float32, len(be.accum))
	for frame := 0; frame < 50; frame++ {
		if err := r.Update(0, stubTarget{}); err != nil {
			t.Fatal(err)
		}
		for i, v := range be.accum {
			if v < 0 {
				t.Fatalf("frame %d: pixel %d is negative: %v", frame, i, v)
			}
			if v < prev[i] {
				t.Fatalf("frame %d: pixel %d decreased from %v to %v", frame, i, prev[i], v)
			}
		}
		copy(prev, be.accum)
	}
	var total float32
	for _, v := range be.accum {
		total += v
	}
	if total == 0 {
		t.Error("no sample landed inside the accumulation buffer")
	}
}

func TestInitFailureDestroysPartialResources(t *testing.T) {
	r, be := newTestRenderer(10, 100, nil)
	be.createErr = errors.New("no bindless handle")

	if err := r.Init(); !errors.Is(err, be.createErr) {
		t.Fatalf("Init() = %v, want wrapped create error", err)
	}
	if be.destroyed != 1 {
		t.Errorf("destroyed = %d, want 1", be.destroyed)
	}
	if err := r.Update(0, stubTarget{}); err == nil {
		t.Error("Update() after failed Init = nil, want error")
	}
	if be.draws != 0 || be.tonemaps != 0 {
		t.Errorf("draws = %d, tonemaps = %d after failed Init", be.draws, be.tonemaps)
	}
}

func TestShutdown(t *testing.T) {
	r, be := newTestRenderer(10, 100, nil)
	if err := r.Init(); err != nil {
		t.Fatal(err)
	}
	r.Shutdown()
	if be.destroyed != 1 {
		t.Errorf("destroyed = %d, want 1", be.destroyed)
	}
	if err := r.Update(0, stubTarget{}); err == nil {
		t.Error("Update() after Shutdown = nil, want error")
	}
}

func TestEndToEndLifetime(t *testing.T) {
	if testing.Short() {
		t.Skip("iterates five million steps")
	}
	gen := attractor.NewGenerator(attractor.DefaultParams, attractor.NewRandomJitter(attractor.DefaultJitterScale))
	be := &countingBackend{}
	r := New(be, gen, 2048, 2048, 8)
	if err := r.Init(); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 500; i++ {
		if err := r.Update(0, stubTarget{}); err != nil {
			t.Fatal(err)
		}
	}
	if st := r.Stats(); st.Iteration != 5_000_000 || st.Samples != 5_000_000 {
		t.Fatalf("after 500 frames Stats() = %+v, want 5,000,000 samples", st)
	}
	for i := 0; i < 10; i++ {
		if err := r.Update(0, stubTarget{}); err != nil {
			t.Fatal(err)
		}
	}
	if be.points != 5_000_000 {
		t.Errorf("points drawn = %d, want 5,000,000", be.points)
	}
	if be.tonemaps != 510 {
		t.Errorf("tonemap passes = %d, want 510", be.tonemaps)
	}
	if be.maxPoints != attractor.DefaultBatchSize {
		t.Errorf("point buffer sized for %d, want %d", be.maxPoints, attractor.DefaultBatchSize)
	}
}

// countingBackend only counts; it keeps the 2048x2048 scenario cheap.
type countingBackend struct {
	maxPoints int
	points    int
	tonemaps  int
}

func (b *countingBackend) Create(_, _, _ int, maxPoints int) error {
	b.maxPoints = maxPoints
	return nil
}
func (b *countingBackend) BeginAccumulate()             {}
func (b *countingBackend) DrawPoints(p []float32)       { b.points += len(p) / 2 }
func (b *countingBackend) EndAccumulate()               {}
func (b *countingBackend) Tonemap(graphics.FrameTarget) { b.tonemaps++ }
func (b *countingBackend) Destroy()                     {}
