package kinematics

import (
	"fmt"
	"math"
	"sync"
)

const (
	// DefaultSamples is the table sampling parameter n; the cached
	// table holds 2n+1 rows.
	DefaultSamples = 500

	// elasticTol is the half-width of the near-singular band around a
	// turning ratio of exactly 1 that elastic reactions patch over.
	elasticTol = 1e-3
)

// Turning describes the turning point of one outgoing particle: the
// largest polar angle it can reach in the lab frame.
type Turning struct {
	ThetaMax float64 // maximum lab polar angle [rad]
	CMCos    float64 // CM cosine at which the maximum is reached
	Energy   float64 // lab kinetic energy at the maximum [MeV]
}

// Reaction holds the solved invariants of a two-body reaction
// 1 + 2 -> 3 + 4 with the target (2) at rest in the lab. Fields are
// set by Solve and must be treated as read-only.
type Reaction struct {
	M1, M2, M3, M4 float64 // rest masses [MeV]
	Ek             float64 // projectile lab kinetic energy [MeV]

	S    float64 // Mandelstam s [MeV^2]
	Pcm  float64 // entrance-channel CM momentum [MeV/c]
	Pcmp float64 // exit-channel CM momentum [MeV/c]

	Rapidity  float64 // rapidity of the CM frame in the lab
	BetaGamma float64 // sinh of Rapidity
	Gamma     float64 // cosh of Rapidity

	E03, E04 float64 // CM total energies of particles 3 and 4 [MeV]

	Emax3, Emin3 float64 // lab kinetic energy extrema of particle 3 [MeV]
	Emax4, Emin4 float64 // lab kinetic energy extrema of particle 4 [MeV]

	// Max3 and Max4 are nil when the particle reaches every lab angle
	// in [0, pi].
	Max3, Max4 *Turning

	samples   int
	tableOnce sync.Once
	table     *Table
}

// Solve computes the invariants of the reaction 1 + 2 -> 3 + 4 for a
// projectile of lab kinetic energy ek hitting a target at rest. Masses
// and ek are in MeV. The cached table uses DefaultSamples.
func Solve(m1, m2, m3, m4, ek float64) (*Reaction, error) {
	return SolveN(m1, m2, m3, m4, ek, DefaultSamples)
}

// SolveN is Solve with an explicit table sampling parameter.
func SolveN(m1, m2, m3, m4, ek float64, samples int) (*Reaction, error) {
	if samples < 1 {
		samples = DefaultSamples
	}
	r := &Reaction{M1: m1, M2: m2, M3: m3, M4: m4, Ek: ek, samples: samples}

	r.S = (m1+m2)*(m1+m2) + 2*m2*ek
	if r.S <= 0 {
		return nil, fmt.Errorf("s = %g MeV^2 for ek = %g MeV: %w", r.S, ek, ErrForbidden)
	}

	pcm2 := ((r.S-m1*m1-m2*m2)*(r.S-m1*m1-m2*m2) - 4*m1*m1*m2*m2) / (4 * r.S)
	if pcm2 < 0 {
		return nil, fmt.Errorf("entrance channel closed (pcm^2 = %g): %w", pcm2, ErrForbidden)
	}
	r.Pcm = math.Sqrt(pcm2)

	r.Rapidity = math.Log((math.Sqrt(m2*m2+pcm2) + r.Pcm) / m2)
	if math.IsNaN(r.Rapidity) || math.IsInf(r.Rapidity, 0) {
		return nil, fmt.Errorf("cm rapidity undefined for m2 = %g MeV: %w", m2, ErrDegenerate)
	}
	r.BetaGamma = math.Sinh(r.Rapidity)
	r.Gamma = math.Cosh(r.Rapidity)

	pcmp2 := ((r.S-m3*m3-m4*m4)*(r.S-m3*m3-m4*m4) - 4*m3*m3*m4*m4) / (4 * r.S)
	if pcmp2 < 0 {
		return nil, fmt.Errorf("exit channel closed below threshold %g MeV (pcmp^2 = %g): %w",
			r.Threshold(), pcmp2, ErrForbidden)
	}
	r.Pcmp = math.Sqrt(pcmp2)

	r.E03 = math.Sqrt(pcmp2 + m3*m3)
	r.E04 = math.Sqrt(pcmp2 + m4*m4)

	r.Emax3 = r.E03*r.Gamma + r.Pcmp*r.BetaGamma - m3
	r.Emin3 = r.E03*r.Gamma - r.Pcmp*r.BetaGamma - m3
	r.Emax4 = r.E04*r.Gamma + r.Pcmp*r.BetaGamma - m4
	r.Emin4 = r.E04*r.Gamma - r.Pcmp*r.BetaGamma - m4

	elastic := m1+m2 == m3+m4
	var err error
	if r.Max3, err = r.turning(m3, r.E03, +1, elastic); err != nil {
		return nil, err
	}
	if r.Max4, err = r.turning(m4, r.E04, -1, elastic); err != nil {
		return nil, err
	}
	return r, nil
}

// turning computes the maximum lab angle of one outgoing particle.
// sign is +1 for the ejectile and -1 for the recoil, matching the sign
// of the CM cosine term in that particle's lab energy. A nil result
// with nil error means the lab angle is unbounded on [0, pi].
func (r *Reaction) turning(m, e0, sign float64, elastic bool) (*Turning, error) {
	if m <= 0 {
		if elastic {
			// the elastic patch below needs a ratio; reaching it
			// without one would silently misreport the turning point
			return nil, fmt.Errorf("elastic symmetry patch with no turning ratio (m = %g): %w", m, ErrDegenerate)
		}
		return nil, nil
	}

	den := m * r.BetaGamma
	if !(den > 0) {
		return nil, fmt.Errorf("turning ratio %g / %g: %w", r.Pcmp, den, ErrDegenerate)
	}
	ratio := r.Pcmp / den

	var tp *Turning
	if ratio < 1 {
		if r.Pcmp == 0 {
			return nil, fmt.Errorf("exit channel at rest in the CM frame: %w", ErrDegenerate)
		}
		thetaMax := math.Asin(ratio)
		patmax := e0 * math.Cos(thetaMax) * r.BetaGamma / (1 + ratio*ratio*r.BetaGamma*r.BetaGamma)
		eatmax := math.Sqrt(patmax*patmax + m*m)
		tp = &Turning{
			ThetaMax: thetaMax,
			CMCos:    (eatmax - e0*r.Gamma) / (r.Pcmp * r.BetaGamma),
			Energy:   eatmax - m,
		}
	}

	// elastic reactions pass through ratio = 1 where the branch above
	// is numerically singular; pin the turning point to 90 degrees and
	// the backward/forward CM endpoint there
	if elastic && math.Abs(ratio-1) < elasticTol {
		cmcos := -sign
		tp = &Turning{
			ThetaMax: math.Pi / 2,
			CMCos:    cmcos,
			Energy:   e0*r.Gamma + sign*cmcos*r.Pcmp*r.BetaGamma - m,
		}
	}
	return tp, nil
}

// Q returns the reaction Q-value (m1 + m2) - (m3 + m4) in MeV.
func (r *Reaction) Q() float64 { return r.M1 + r.M2 - r.M3 - r.M4 }

// Threshold returns the lab kinetic energy below which the exit
// channel is closed, in MeV. Exothermic reactions yield a non-positive
// threshold.
func (r *Reaction) Threshold() float64 { return Threshold(r.M1, r.M2, r.M3, r.M4) }

// Threshold computes the channel-opening lab kinetic energy for four
// masses in MeV without solving.
func Threshold(m1, m2, m3, m4 float64) float64 {
	in, out := m1+m2, m3+m4
	return (out*out - in*in) / (2 * m2)
}

// Elastic reports whether the entrance and exit channel mass sums
// coincide exactly.
func (r *Reaction) Elastic() bool { return r.M1+r.M2 == r.M3+r.M4 }

// Row holds the lab-frame observables of both outgoing particles at
// one CM emission angle of particle 3.
type Row struct {
	CosCM   float64 // cosine of the CM emission angle
	ThetaCM float64 // CM emission angle [rad]
	Theta3  float64 // lab polar angle of particle 3 [rad]
	Theta4  float64 // lab polar angle of particle 4 [rad]
	E3      float64 // lab kinetic energy of particle 3 [MeV]
	E4      float64 // lab kinetic energy of particle 4 [MeV]
	V3      float64 // lab speed of particle 3 [c]
	V4      float64 // lab speed of particle 4 [c]
	P3      float64 // lab momentum of particle 3 [MeV/c]
	P4      float64 // lab momentum of particle 4 [MeV/c]
}

// RowAt evaluates the lab-frame transform at one CM cosine. The
// function is pure and total on [-1, 1].
func (r *Reaction) RowAt(coscm float64) Row {
	// round-off can push 1-coscm^2 a hair below zero at the endpoints
	sincm := math.Sqrt(math.Max(0, 1-coscm*coscm))

	ppar3 := r.Pcmp*r.Gamma*coscm + r.E03*r.BetaGamma
	ppar4 := -r.Pcmp*r.Gamma*coscm + r.E04*r.BetaGamma
	pperp := r.Pcmp * sincm

	p3 := math.Hypot(ppar3, pperp)
	p4 := math.Hypot(ppar4, pperp)

	row := Row{
		CosCM:   coscm,
		ThetaCM: math.Acos(coscm),
		E3:      r.E03*r.Gamma + coscm*r.Pcmp*r.BetaGamma - r.M3,
		E4:      r.E04*r.Gamma - coscm*r.Pcmp*r.BetaGamma - r.M4,
		P3:      p3,
		P4:      p4,
	}
	if p3 > 0 {
		row.Theta3 = math.Acos(ppar3 / p3)
	}
	if p4 > 0 {
		row.Theta4 = math.Acos(ppar4 / p4)
	}
	row.V3 = p3 / (row.E3 + r.M3)
	row.V4 = p4 / (row.E4 + r.M4)
	return row
}

// Rows samples the transform at the 2n+1 CM cosines i/n for i in
// [-n, n]. The result is deterministic for a given reaction and n.
func (r *Reaction) Rows(n int) []Row {
	rows := make([]Row, 0, 2*n+1)
	for i := -n; i <= n; i++ {
		rows = append(rows, r.RowAt(float64(i)/float64(n)))
	}
	return rows
}

// Samples returns the table sampling parameter fixed at solve time.
func (r *Reaction) Samples() int { return r.samples }
