package attractor

const (
	DefaultBatchSize   = 10_000
	DefaultLifetimeCap = 5_000_000
	DefaultJitterScale = 0.001
)

// Generator owns the state of one run and hands out batches of points.
type Generator struct {
	Params      Params
	BatchSize   int
	LifetimeCap uint64

	state  State
	jitter Jitter
}

// NewGenerator starts at the origin with the default batch size and cap.
func NewGenerator(p Params, j Jitter) *Generator {
	if j == nil {
		j = ZeroJitter{}
	}
	return &Generator{
		Params:      p,
		BatchSize:   DefaultBatchSize,
		LifetimeCap: DefaultLifetimeCap,
		jitter:      j,
	}
}

func (g *Generator) State() State { return g.state }

// Exhausted reports whether the lifetime cap has been reached.
func (g *Generator) Exhausted() bool {
	return g.state.Iteration >= g.LifetimeCap
}

// AppendBatch appends up to BatchSize points to dst as x,y pairs and returns
// the extended slice. Each emitted point is the state before its step. Once
// the cap is reached nothing is appended.
func (g *Generator) AppendBatch(dst []float32) []float32 {
	for i := 0; i < g.BatchSize; i++ {
		if g.Exhausted() {
			break
		}
		dst = append(dst, float32(g.state.X), float32(g.state.Y))
		j0 := g.jitter.Next()
		j1 := g.jitter.Next()
		g.Params.Step(&g.state, j0, j1)
	}
	return dst
}
