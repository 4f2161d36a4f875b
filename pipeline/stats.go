package pipeline

import "fmt"

// FrameStats counts frames over a rolling one second window.
type FrameStats struct {
	name       string
	prevTime   float64
	windowTime float64
	frames     int
	started    bool

	fps       float64
	frameTime float64
}

func NewFrameStats(name string) *FrameStats {
	return &FrameStats{name: name}
}

// Tick records a frame at time now (seconds) and returns the time since the
// previous tick. The first tick returns 0. It reports true when the window
// elapsed and new figures were published.
func (s *FrameStats) Tick(now float64) (float64, bool) {
	if !s.started {
		s.started = true
		s.prevTime = now
		s.windowTime = now
	}
	dt := now - s.prevTime
	s.prevTime = now

	published := false
	if elapsed := now - s.windowTime; elapsed >= 1.0 {
		s.fps = float64(s.frames) / elapsed
		s.frameTime = 0
		if s.fps > 0 {
			s.frameTime = 1000.0 / s.fps
		}
		s.windowTime = now
		s.frames = 0
		published = true
	}
	s.frames++
	return dt, published
}

// FPS returns the last published frames per second and milliseconds per frame.
func (s *FrameStats) FPS() (float64, float64) {
	return s.fps, s.frameTime
}

// Title formats the window title for the last published figures.
func (s *FrameStats) Title() string {
	return fmt.Sprintf("[%.1f fps  %.3f ms] %s", s.fps, s.frameTime, s.name)
}
