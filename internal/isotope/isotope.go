// Package isotope resolves isotope names like "12C" or "alpha" to
// nuclear masses. The underlying data is an embedded table of atomic
// mass excesses; masses come out in MeV with the atomic electrons
// subtracted.
package isotope

import (
	_ "embed"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/facette/natsort"

	"github.com/det-lab/reaction-kinematics/internal/unit"
)

//go:embed masses.toml
var massesTOML []byte

// electron rest mass in MeV
const electronMass = 0.510998950

var (
	ErrBadName  = errors.New("isotope: malformed isotope name")
	ErrNotFound = errors.New("isotope: no mass entry")
)

// Nuclide is one row of the embedded mass table.
type Nuclide struct {
	A          int     `toml:"a"`
	Element    string  `toml:"el"`
	Z          int     `toml:"z"`
	MassExcess float64 `toml:"mexcess"` // atomic mass excess, keV
}

// Name returns the canonical isotope name, e.g. "4He".
func (n Nuclide) Name() string { return fmt.Sprintf("%d%s", n.A, n.Element) }

// Mass returns the nuclear mass in MeV.
func (n Nuclide) Mass() float64 {
	return float64(n.A)*unit.AMU + n.MassExcess*1e-3 - float64(n.Z)*electronMass
}

type key struct {
	a  int
	el string
}

var (
	loadOnce sync.Once
	loadErr  error
	table    map[key]Nuclide
	ordered  []Nuclide
)

func load() error {
	loadOnce.Do(func() {
		var data struct {
			Isotope []Nuclide `toml:"isotope"`
		}
		if err := toml.Unmarshal(massesTOML, &data); err != nil {
			loadErr = fmt.Errorf("isotope: parse mass table: %w", err)
			return
		}

		table = make(map[key]Nuclide, len(data.Isotope))
		names := make([]string, 0, len(data.Isotope))
		byName := make(map[string]Nuclide, len(data.Isotope))
		for _, n := range data.Isotope {
			table[key{n.A, strings.ToLower(n.Element)}] = n
			names = append(names, n.Name())
			byName[n.Name()] = n
		}

		natsort.Sort(names)
		ordered = make([]Nuclide, len(names))
		for i, name := range names {
			ordered[i] = byName[name]
		}
	})
	return loadErr
}

var nameRe = regexp.MustCompile(`^([0-9]+)([a-z]+)$`)

// shorthand particle names accepted wherever an isotope name is expected
var aliases = map[string]string{
	"n":     "1n",
	"p":     "1h",
	"d":     "2h",
	"t":     "3h",
	"a":     "4he",
	"alpha": "4he",
}

// Parse splits an isotope name into mass number and element symbol.
// The symbol comes back lowercased; aliases (n, p, d, t, a, alpha) are
// expanded first.
func Parse(name string) (a int, element string, err error) {
	s := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := aliases[s]; ok {
		s = alias
	}
	m := nameRe.FindStringSubmatch(s)
	if m == nil {
		return 0, "", fmt.Errorf("%w: %q", ErrBadName, name)
	}
	a, err = strconv.Atoi(m[1])
	if err != nil {
		return 0, "", fmt.Errorf("%w: %q", ErrBadName, name)
	}
	return a, m[2], nil
}

// Lookup resolves an isotope name to its table entry.
func Lookup(name string) (Nuclide, error) {
	if err := load(); err != nil {
		return Nuclide{}, err
	}
	a, el, err := Parse(name)
	if err != nil {
		return Nuclide{}, err
	}
	n, ok := table[key{a, el}]
	if !ok {
		return Nuclide{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return n, nil
}

// Mass resolves an isotope name to its nuclear mass in MeV.
func Mass(name string) (float64, error) {
	n, err := Lookup(name)
	if err != nil {
		return 0, err
	}
	return n.Mass(), nil
}

// List returns all known nuclides in natural name order (1H, 2H, ...,
// 9Be, 10B, ...).
func List() ([]Nuclide, error) {
	if err := load(); err != nil {
		return nil, err
	}
	out := make([]Nuclide, len(ordered))
	copy(out, ordered)
	return out, nil
}
