package reaction

import "sort"

// Presets holds ready-made reaction setups for common beams. Zero
// unit fields mean MeV, isotope lookup and radians.
var Presets = map[string]*Spec{
	"a-c12": {
		Projectile: "a", Target: "12C", Ejectile: "a", Recoil: "12C",
		Energy: 4.0,
	},
	"rutherford": {
		Projectile: "a", Target: "197Au", Ejectile: "a", Recoil: "197Au",
		Energy: 5.5,
	},
	"dt-fusion": {
		Projectile: "d", Target: "t", Ejectile: "n", Recoil: "a",
		Energy: 0.1,
	},
	"dd-fusion": {
		Projectile: "d", Target: "d", Ejectile: "p", Recoil: "t",
		Energy: 1.0,
	},
	"p-li7": {
		Projectile: "p", Target: "7Li", Ejectile: "a", Recoil: "a",
		Energy: 2.0,
	},
	"inverse-c12": {
		Projectile: "12C", Target: "p", Ejectile: "12C", Recoil: "p",
		Energy: 50.0,
	},
}

// GetPreset returns a copy of the named preset, nil if unknown.
func GetPreset(name string) *Spec {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

// ListPresets returns all preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
