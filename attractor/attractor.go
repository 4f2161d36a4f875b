// Package attractor iterates the driven two-dimensional map whose orbit is
// accumulated into the image.
package attractor

import "math"

// Params are the amplitudes and frequencies that shape the orbit.
type Params struct {
	A1, A2, A3 float64
	F1, F2, F3 float64
	A4, A5, A6 float64
	F4, F5, F6 float64
	Velocity   float64
}

// DefaultParams is the shape rendered by the binary.
var DefaultParams = Params{
	A1: -2.1, A2: 1.4, A3: 1.1,
	F1: 0.4, F2: 1.1, F3: 1.0,
	A4: 1.1, A5: 1.2, A6: 0.9,
	F4: 1.1, F5: 1.0, F6: 0.7,
	Velocity: 0.05,
}

// State is the current point of the system and the number of steps taken.
type State struct {
	X, Y, T   float64
	Iteration uint64
}

// Step advances s by one transition. j0 and j1 perturb the A1 and A5
// amplitudes. Time is derived from the iteration count before it is bumped.
func (p Params) Step(s *State, j0, j1 float64) {
	xn1 := (p.A1+j0)*math.Sin(p.F1*s.X) + p.A2*math.Cos(p.F2*s.Y) + p.A3*math.Sin(p.F3*s.T)
	yn1 := p.A4*math.Cos(p.F4*s.X) + (p.A5+j1)*math.Sin(p.F5*s.Y) + p.A6*math.Cos(p.F6*s.T)
	tn1 := float64(s.Iteration) * p.Velocity

	s.X, s.Y, s.T = xn1, yn1, tn1
	s.Iteration++
}

// Bounds returns the largest |x| and |y| any step can produce when jitter
// stays within [0, maxJitter].
func (p Params) Bounds(maxJitter float64) (float64, float64) {
	bx := math.Abs(p.A1) + maxJitter + math.Abs(p.A2) + math.Abs(p.A3)
	by := math.Abs(p.A4) + math.Abs(p.A5) + maxJitter + math.Abs(p.A6)
	return bx, by
}

// Tonemap is the Reinhard curve applied by the tonemap shader.
func Tonemap(c float64) float64 {
	return c / (c + 1)
}
