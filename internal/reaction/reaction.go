// Package reaction resolves user-facing reaction specifications
// (isotope names, unit-tagged numbers, excitation energies) into
// solved kinematics.
package reaction

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/det-lab/reaction-kinematics/internal/isotope"
	"github.com/det-lab/reaction-kinematics/internal/kinematics"
	"github.com/det-lab/reaction-kinematics/internal/unit"
)

// ErrBadSpec reports a specification that cannot be resolved.
var ErrBadSpec = errors.New("reaction: invalid specification")

// Spec describes one reaction the way a user writes it. Particle
// entries are isotope names, or plain numbers when the mass unit is
// numeric; Energy and the excitations are in EnergyUnit.
type Spec struct {
	Projectile string
	Target     string
	Ejectile   string
	Recoil     string

	// projectile lab kinetic energy in EnergyUnit
	Energy float64

	EnergyUnit unit.Energy
	MassUnit   unit.Mass
	AngleUnit  unit.Angle

	// excitation energies added to the outgoing rest masses, in
	// EnergyUnit
	ExEjectile float64
	ExRecoil   float64

	// table sampling parameter; 0 selects the solver default
	Samples int
}

// Label renders the spec in target(projectile,ejectile)recoil notation.
func (s Spec) Label() string {
	return fmt.Sprintf("%s(%s,%s)%s", s.Target, s.Projectile, s.Ejectile, s.Recoil)
}

// ResolveMass resolves one particle entry to a mass in MeV. Numeric
// entries are converted with the numeric mass unit; everything else is
// an isotope lookup regardless of mode.
func ResolveMass(entry string, mu unit.Mass) (float64, error) {
	s := strings.TrimSpace(entry)
	if s == "" {
		return 0, fmt.Errorf("%w: empty particle entry", ErrBadSpec)
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		if mu.Symbolic() {
			return 0, fmt.Errorf("%w: numeric mass %q in lookup mode (set the mass unit to MeV or amu)", ErrBadSpec, entry)
		}
		if v <= 0 {
			return 0, fmt.Errorf("%w: mass %q must be positive", ErrBadSpec, entry)
		}
		return v * mu.Factor(), nil
	}
	return isotope.Mass(s)
}

// Masses resolves the four particle entries to MeV, with the
// excitation energies folded into the outgoing masses.
func (s Spec) Masses() (m1, m2, m3, m4 float64, err error) {
	if m1, err = ResolveMass(s.Projectile, s.MassUnit); err != nil {
		return 0, 0, 0, 0, fmt.Errorf("projectile: %w", err)
	}
	if m2, err = ResolveMass(s.Target, s.MassUnit); err != nil {
		return 0, 0, 0, 0, fmt.Errorf("target: %w", err)
	}
	if m3, err = ResolveMass(s.Ejectile, s.MassUnit); err != nil {
		return 0, 0, 0, 0, fmt.Errorf("ejectile: %w", err)
	}
	if m4, err = ResolveMass(s.Recoil, s.MassUnit); err != nil {
		return 0, 0, 0, 0, fmt.Errorf("recoil: %w", err)
	}

	if s.ExEjectile < 0 || s.ExRecoil < 0 {
		return 0, 0, 0, 0, fmt.Errorf("%w: excitation energies must be non-negative", ErrBadSpec)
	}
	m3 += s.EnergyUnit.ToMeV(s.ExEjectile)
	m4 += s.EnergyUnit.ToMeV(s.ExRecoil)
	return m1, m2, m3, m4, nil
}

// Resolve solves the reaction the spec describes.
func (s Spec) Resolve() (*kinematics.Reaction, error) {
	m1, m2, m3, m4, err := s.Masses()
	if err != nil {
		return nil, err
	}

	n := s.Samples
	if n <= 0 {
		n = kinematics.DefaultSamples
	}
	return kinematics.SolveN(m1, m2, m3, m4, s.EnergyUnit.ToMeV(s.Energy), n)
}
