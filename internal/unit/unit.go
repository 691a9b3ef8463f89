// Package unit defines the measurement units accepted on the input and
// output boundaries. All internal computation is carried out in MeV for
// energies and masses, MeV/c for momenta and radians for angles; this
// package only converts at the edges.
package unit

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// AMU is the atomic mass unit in MeV.
const AMU = 931.494104

// ErrUnknown reports a unit name outside the accepted set.
var ErrUnknown = errors.New("unit: unknown unit")

// Energy selects the unit of kinetic energies on the boundary.
type Energy int

const (
	MeV Energy = iota
	KeV
	GeV
	TeV
)

// ParseEnergy maps a unit name to an Energy. Names are matched
// case-insensitively.
func ParseEnergy(name string) (Energy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "kev":
		return KeV, nil
	case "mev":
		return MeV, nil
	case "gev":
		return GeV, nil
	case "tev":
		return TeV, nil
	}
	return MeV, fmt.Errorf("%w: energy %q", ErrUnknown, name)
}

func (u Energy) String() string {
	switch u {
	case KeV:
		return "keV"
	case MeV:
		return "MeV"
	case GeV:
		return "GeV"
	case TeV:
		return "TeV"
	}
	return fmt.Sprintf("Energy(%d)", int(u))
}

// Factor returns the size of u in MeV. Values outside the declared set
// yield NaN so that a miscast propagates loudly instead of silently.
func (u Energy) Factor() float64 {
	switch u {
	case KeV:
		return 1e-3
	case MeV:
		return 1
	case GeV:
		return 1e3
	case TeV:
		return 1e6
	}
	return math.NaN()
}

// ToMeV converts a value expressed in u to MeV.
func (u Energy) ToMeV(v float64) float64 { return v * u.Factor() }

// FromMeV converts a value expressed in MeV to u.
func (u Energy) FromMeV(v float64) float64 { return v / u.Factor() }

// Angle selects the unit of angles on the boundary.
type Angle int

const (
	Rad Angle = iota
	Deg
	MRad
)

// ParseAngle maps a unit name to an Angle. Names are matched
// case-insensitively.
func ParseAngle(name string) (Angle, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "rad":
		return Rad, nil
	case "deg":
		return Deg, nil
	case "mrad":
		return MRad, nil
	}
	return Rad, fmt.Errorf("%w: angle %q", ErrUnknown, name)
}

func (u Angle) String() string {
	switch u {
	case Rad:
		return "rad"
	case Deg:
		return "deg"
	case MRad:
		return "mrad"
	}
	return fmt.Sprintf("Angle(%d)", int(u))
}

// Factor returns the size of u in radians, NaN outside the declared set.
func (u Angle) Factor() float64 {
	switch u {
	case Rad:
		return 1
	case Deg:
		return math.Pi / 180
	case MRad:
		return 1e-3
	}
	return math.NaN()
}

// ToRad converts a value expressed in u to radians.
func (u Angle) ToRad(v float64) float64 { return v * u.Factor() }

// FromRad converts a value expressed in radians to u.
func (u Angle) FromRad(v float64) float64 { return v / u.Factor() }

// Mass selects how particle mass entries are interpreted. AEL (atomic
// element lookup) treats entries as isotope names; MassMeV and MassAMU
// treat them as numbers in the respective unit.
type Mass int

const (
	MassAEL Mass = iota
	MassMeV
	MassAMU
)

// ParseMass maps a unit name to a Mass. Names are matched
// case-insensitively.
func ParseMass(name string) (Mass, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ael":
		return MassAEL, nil
	case "mev":
		return MassMeV, nil
	case "amu":
		return MassAMU, nil
	}
	return MassAEL, fmt.Errorf("%w: mass %q", ErrUnknown, name)
}

func (u Mass) String() string {
	switch u {
	case MassAEL:
		return "ael"
	case MassMeV:
		return "MeV"
	case MassAMU:
		return "amu"
	}
	return fmt.Sprintf("Mass(%d)", int(u))
}

// Symbolic reports whether mass entries under u are isotope names
// rather than numbers.
func (u Mass) Symbolic() bool { return u == MassAEL }

// Factor returns the size of u in MeV for the numeric modes. The
// symbolic mode has no numeric factor and yields NaN.
func (u Mass) Factor() float64 {
	switch u {
	case MassMeV:
		return 1
	case MassAMU:
		return AMU
	}
	return math.NaN()
}
