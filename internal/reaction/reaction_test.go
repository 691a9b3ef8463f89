package reaction

import (
	"errors"
	"math"
	"testing"

	"github.com/det-lab/reaction-kinematics/internal/isotope"
	"github.com/det-lab/reaction-kinematics/internal/unit"
)

func TestResolveMassNumeric(t *testing.T) {
	got, err := ResolveMass("3727.379", unit.MassMeV)
	if err != nil {
		t.Fatal(err)
	}
	if got != 3727.379 {
		t.Errorf("MeV mode = %v, want 3727.379", got)
	}

	got, err = ResolveMass("4.001506", unit.MassAMU)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-4.001506*931.494104) > 1e-9 {
		t.Errorf("amu mode = %v, want %v", got, 4.001506*931.494104)
	}
}

func TestResolveMassSymbolic(t *testing.T) {
	// isotope names resolve in every mass mode
	for _, mu := range []unit.Mass{unit.MassAEL, unit.MassMeV, unit.MassAMU} {
		got, err := ResolveMass("a", mu)
		if err != nil {
			t.Fatalf("mode %v: %v", mu, err)
		}
		if math.Abs(got-3727.379) > 0.01 {
			t.Errorf("mode %v: alpha mass = %v, want 3727.379", mu, got)
		}
	}

	if _, err := ResolveMass("99Xx", unit.MassAEL); !errors.Is(err, isotope.ErrNotFound) {
		t.Errorf("unknown isotope error = %v, want isotope.ErrNotFound", err)
	}
}

func TestResolveMassBadSpec(t *testing.T) {
	tests := []struct {
		name  string
		entry string
		mu    unit.Mass
	}{
		{"numeric in lookup mode", "3727.379", unit.MassAEL},
		{"negative mass", "-5", unit.MassMeV},
		{"zero mass", "0", unit.MassAMU},
		{"empty entry", "  ", unit.MassMeV},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ResolveMass(tt.entry, tt.mu); !errors.Is(err, ErrBadSpec) {
				t.Errorf("ResolveMass(%q, %v) error = %v, want ErrBadSpec", tt.entry, tt.mu, err)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	spec := Spec{
		Projectile: "a", Target: "12C", Ejectile: "a", Recoil: "12C",
		Energy: 4.0,
	}

	rxn, err := spec.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(rxn.M1-3727.379) > 0.01 || math.Abs(rxn.M2-11174.863) > 0.01 {
		t.Errorf("masses = (%v, %v), want alpha and 12C", rxn.M1, rxn.M2)
	}
	if rxn.Ek != 4.0 {
		t.Errorf("ek = %v, want 4.0", rxn.Ek)
	}
	if !rxn.Elastic() {
		t.Error("a-12C elastic spec resolved to a non-elastic reaction")
	}
}

func TestResolveEnergyUnit(t *testing.T) {
	spec := Spec{
		Projectile: "a", Target: "12C", Ejectile: "a", Recoil: "12C",
		Energy: 4000, EnergyUnit: unit.KeV,
	}

	rxn, err := spec.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(rxn.Ek-4.0) > 1e-12 {
		t.Errorf("ek = %v MeV, want 4.0", rxn.Ek)
	}
}

func TestResolveExcitation(t *testing.T) {
	// populate the 4.439 MeV 2+ state of 12C
	spec := Spec{
		Projectile: "a", Target: "12C", Ejectile: "a", Recoil: "12C",
		Energy: 10.0, ExRecoil: 4.439,
	}

	rxn, err := spec.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(rxn.Q()+4.439) > 1e-9 {
		t.Errorf("Q = %v, want -4.439", rxn.Q())
	}
	if rxn.Elastic() {
		t.Error("excited channel still reports elastic")
	}

	if _, err := (Spec{
		Projectile: "a", Target: "12C", Ejectile: "a", Recoil: "12C",
		Energy: 10.0, ExRecoil: -1,
	}).Resolve(); !errors.Is(err, ErrBadSpec) {
		t.Errorf("negative excitation error = %v, want ErrBadSpec", err)
	}
}

func TestResolveSamples(t *testing.T) {
	spec := *GetPreset("a-c12")
	spec.Samples = 50

	rxn, err := spec.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	if got := len(rxn.Table().Rows); got != 101 {
		t.Errorf("table rows = %d, want 101", got)
	}
}

func TestPresetsResolve(t *testing.T) {
	for name := range Presets {
		t.Run(name, func(t *testing.T) {
			p := GetPreset(name)
			if p == nil {
				t.Fatal("GetPreset returned nil for a listed preset")
			}
			if _, err := p.Resolve(); err != nil {
				t.Errorf("preset %s does not resolve: %v", name, err)
			}
		})
	}

	if GetPreset("warp-drive") != nil {
		t.Error("GetPreset(warp-drive) != nil")
	}
}

func TestGetPresetCopies(t *testing.T) {
	p := GetPreset("a-c12")
	p.Energy = 999

	if Presets["a-c12"].Energy == 999 {
		t.Error("mutating a GetPreset result changed the preset table")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Fatalf("ListPresets returned %d names, want %d", len(names), len(Presets))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("names not sorted: %q before %q", names[i-1], names[i])
		}
	}
}

func TestLabel(t *testing.T) {
	spec := Spec{Projectile: "a", Target: "12C", Ejectile: "p", Recoil: "15N"}
	if got := spec.Label(); got != "12C(a,p)15N" {
		t.Errorf("Label = %q, want 12C(a,p)15N", got)
	}
}
