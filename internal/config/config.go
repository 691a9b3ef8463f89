// Package config reads and writes reaction setup files in YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/det-lab/reaction-kinematics/internal/kinematics"
	"github.com/det-lab/reaction-kinematics/internal/reaction"
	"github.com/det-lab/reaction-kinematics/internal/unit"
)

// Config is the on-disk reaction setup. Unit fields take the same
// names the CLI accepts: keV/MeV/GeV/TeV, ael/MeV/amu, rad/deg/mrad.
type Config struct {
	Reaction ReactionConfig `yaml:"reaction"`

	Energy     float64 `yaml:"energy"`
	EnergyUnit string  `yaml:"energy_unit"`
	MassUnit   string  `yaml:"mass_unit"`
	AngleUnit  string  `yaml:"angle_unit"`

	ExEjectile float64 `yaml:"ex_ejectile"`
	ExRecoil   float64 `yaml:"ex_recoil"`

	Samples int `yaml:"samples"`
}

type ReactionConfig struct {
	Projectile string `yaml:"projectile"`
	Target     string `yaml:"target"`
	Ejectile   string `yaml:"ejectile"`
	Recoil     string `yaml:"recoil"`
}

func DefaultConfig() *Config {
	return &Config{
		Reaction: ReactionConfig{
			Projectile: "a",
			Target:     "12C",
			Ejectile:   "a",
			Recoil:     "12C",
		},
		Energy:     4.0,
		EnergyUnit: "MeV",
		MassUnit:   "ael",
		AngleUnit:  "deg",
		Samples:    kinematics.DefaultSamples,
	}
}

// Load reads a config file, filling unset fields from the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Spec converts the config into a resolvable reaction spec, parsing
// the unit names.
func (c *Config) Spec() (*reaction.Spec, error) {
	eu, err := unit.ParseEnergy(c.EnergyUnit)
	if err != nil {
		return nil, err
	}
	mu, err := unit.ParseMass(c.MassUnit)
	if err != nil {
		return nil, err
	}
	au, err := unit.ParseAngle(c.AngleUnit)
	if err != nil {
		return nil, err
	}

	return &reaction.Spec{
		Projectile: c.Reaction.Projectile,
		Target:     c.Reaction.Target,
		Ejectile:   c.Reaction.Ejectile,
		Recoil:     c.Reaction.Recoil,
		Energy:     c.Energy,
		EnergyUnit: eu,
		MassUnit:   mu,
		AngleUnit:  au,
		ExEjectile: c.ExEjectile,
		ExRecoil:   c.ExRecoil,
		Samples:    c.Samples,
	}, nil
}

// FromSpec renders a spec back into config form, for writing starter
// files.
func FromSpec(s *reaction.Spec) *Config {
	return &Config{
		Reaction: ReactionConfig{
			Projectile: s.Projectile,
			Target:     s.Target,
			Ejectile:   s.Ejectile,
			Recoil:     s.Recoil,
		},
		Energy:     s.Energy,
		EnergyUnit: s.EnergyUnit.String(),
		MassUnit:   s.MassUnit.String(),
		AngleUnit:  s.AngleUnit.String(),
		ExEjectile: s.ExEjectile,
		ExRecoil:   s.ExRecoil,
		Samples:    s.Samples,
	}
}
