// Package scan solves one reaction channel across a grid of beam
// energies.
package scan

import (
	"sync"

	"github.com/det-lab/reaction-kinematics/internal/kinematics"
)

// Point is the outcome at one beam energy. Err is non-nil where the
// channel is closed, which is expected below threshold.
type Point struct {
	Ek  float64
	R   *kinematics.Reaction
	Err error
}

// Scanner sweeps a fixed channel over beam energies.
type Scanner struct {
	m1, m2, m3, m4 float64
	samples        int
}

// New creates a scanner for the four masses in MeV. samples controls
// the table resolution of each solved point.
func New(m1, m2, m3, m4 float64, samples int) *Scanner {
	return &Scanner{m1: m1, m2: m2, m3: m3, m4: m4, samples: samples}
}

// Run solves every energy concurrently and returns points in input
// order.
func (s *Scanner) Run(energies []float64) []Point {
	points := make([]Point, len(energies))

	var wg sync.WaitGroup
	for i, ek := range energies {
		wg.Add(1)
		go func(idx int, ek float64) {
			defer wg.Done()

			rxn, err := kinematics.SolveN(s.m1, s.m2, s.m3, s.m4, ek, s.samples)
			points[idx] = Point{Ek: ek, R: rxn, Err: err}
		}(i, ek)
	}

	wg.Wait()
	return points
}

// Observable extracts one value per open point, skipping closed ones.
// The returned energies align with the values.
func Observable(points []Point, extract func(*kinematics.Reaction) float64) (eks, vals []float64) {
	for _, p := range points {
		if p.Err != nil {
			continue
		}
		eks = append(eks, p.Ek)
		vals = append(vals, extract(p.R))
	}
	return eks, vals
}
