package pipeline

import (
	"errors"
	"fmt"

	"github.com/richinsley/goattractor/graphics"
)

// recorder collects calls from every fake in call order.
type recorder struct {
	calls []string
}

func (r *recorder) add(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) count(call string) int {
	n := 0
	for _, c := range r.calls {
		if c == call {
			n++
		}
	}
	return n
}

type fakeSurface struct {
	rec *recorder
	// closeAfter makes PollEvents report termination once this many polls
	// have returned false. Negative never closes.
	closeAfter int
	polls      int
	now        float64
	step       float64
	title      string
	interval   int
}

func (s *fakeSurface) PollEvents() bool {
	s.rec.add("poll")
	if s.closeAfter >= 0 && s.polls >= s.closeAfter {
		return true
	}
	s.polls++
	return false
}

func (s *fakeSurface) SwapBuffers()          { s.rec.add("swap") }
func (s *fakeSurface) SetSwapInterval(i int) { s.interval = i; s.rec.add("interval %d", i) }
func (s *fakeSurface) SetTitle(title string) { s.title = title }
func (s *fakeSurface) Time() float64 {
	t := s.now
	s.now += s.step
	return t
}

type fakeTarget struct {
	fbo     uint32
	w, h    int
	samples int
}

func (t *fakeTarget) Framebuffer() uint32 { return t.fbo }
func (t *fakeTarget) Size() (int, int)    { return t.w, t.h }
func (t *fakeTarget) Samples() int        { return t.samples }

type fakeDevice struct {
	rec       *recorder
	createErr error
	// errorOnFrame raises the GPU error flag on the given 1-based CheckError call.
	errorOnFrame int
	checks       int
	bound        graphics.FrameTarget
	created      *fakeTarget
	deleted      int
}

func (d *fakeDevice) Info() graphics.Info  { return graphics.Info{} }
func (d *fakeDevice) Extensions() []string { return nil }

func (d *fakeDevice) CreateFrameTarget(w, h, samples int) (graphics.FrameTarget, error) {
	d.rec.add("create %dx%d@%d", w, h, samples)
	if d.createErr != nil {
		return nil, d.createErr
	}
	d.created = &fakeTarget{fbo: 7, w: w, h: h, samples: samples}
	return d.created, nil
}

func (d *fakeDevice) ClearFrameTarget(graphics.FrameTarget) { d.rec.add("clear") }

func (d *fakeDevice) BindFrameTarget(t graphics.FrameTarget) {
	d.bound = t
	if t == nil {
		d.rec.add("bind default")
		return
	}
	d.rec.add("bind target")
}

func (d *fakeDevice) ResolveFrameTarget(graphics.FrameTarget) { d.rec.add("resolve") }

func (d *fakeDevice) DeleteFrameTarget(graphics.FrameTarget) {
	d.deleted++
	d.rec.add("delete target")
}

func (d *fakeDevice) CheckError() error {
	d.checks++
	if d.checks == d.errorOnFrame {
		return fmt.Errorf("%w: glGetError returned 0x0502", graphics.ErrGPURuntime)
	}
	return nil
}

type fakeProvider struct {
	rec      *recorder
	released int
}

func (p *fakeProvider) Acquire(int, int, string) (*graphics.RenderContext, error) {
	return nil, errors.New("not used")
}

func (p *fakeProvider) Release(*graphics.RenderContext) {
	p.released++
	p.rec.add("release")
}

type fakeRenderable struct {
	rec *recorder
	dev *fakeDevice

	initErr     error
	failOnFrame int

	inits, updates, shutdowns int
	dts                       []float64
	boundDuringUpdate         []bool
}

func (r *fakeRenderable) Init() error {
	r.inits++
	r.rec.add("init")
	return r.initErr
}

func (r *fakeRenderable) Update(dt float64, target graphics.FrameTarget) error {
	r.updates++
	r.dts = append(r.dts, dt)
	r.boundDuringUpdate = append(r.boundDuringUpdate, r.dev.bound == target && target != nil)
	r.rec.add("update")
	if r.updates == r.failOnFrame {
		return errors.New("update exploded")
	}
	return nil
}

func (r *fakeRenderable) Shutdown() {
	r.shutdowns++
	r.rec.add("shutdown")
}

type fakeNotifier struct {
	messages []string
}

func (n *fakeNotifier) Error(title, message string) {
	n.messages = append(n.messages, title+": "+message)
}
