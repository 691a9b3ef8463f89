// Package export writes solved reactions to CSV, JSON and SVG.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/det-lab/reaction-kinematics/internal/kinematics"
	"github.com/det-lab/reaction-kinematics/internal/unit"
)

// Header returns the CSV column headers with unit suffixes.
func Header(angle unit.Angle, energy unit.Energy) []string {
	cols := kinematics.Columns()
	out := make([]string, len(cols))
	for i, name := range cols {
		kind, _ := kinematics.ColumnKind(name)
		switch kind {
		case kinematics.KindAngle:
			out[i] = fmt.Sprintf("%s [%s]", name, angle)
		case kinematics.KindEnergy:
			out[i] = fmt.Sprintf("%s [%s]", name, energy)
		case kinematics.KindMomentum:
			out[i] = fmt.Sprintf("%s [%s/c]", name, energy)
		default:
			out[i] = name
		}
	}
	return out
}

// convert maps a base-unit column value into the requested display
// units.
func convert(kind kinematics.Kind, v float64, angle unit.Angle, energy unit.Energy) float64 {
	switch kind {
	case kinematics.KindAngle:
		return angle.FromRad(v)
	case kinematics.KindEnergy, kinematics.KindMomentum:
		return energy.FromMeV(v)
	}
	return v
}

// CSV writes the full observable table with values converted to the
// given display units.
func CSV(w io.Writer, tab *kinematics.Table, angle unit.Angle, energy unit.Energy) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header(angle, energy)); err != nil {
		return err
	}

	cols := kinematics.Columns()
	kinds := make([]kinematics.Kind, len(cols))
	for i, name := range cols {
		kinds[i], _ = kinematics.ColumnKind(name)
	}

	record := make([]string, len(cols))
	for _, row := range tab.Rows {
		for i, name := range cols {
			v, _ := row.Value(name)
			record[i] = strconv.FormatFloat(convert(kinds[i], v, angle, energy), 'f', 6, 64)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// CSVFile writes the table to a file.
func CSVFile(path string, tab *kinematics.Table, angle unit.Angle, energy unit.Energy) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return CSV(f, tab, angle, energy)
}

// Turning mirrors kinematics.Turning for serialization.
type Turning struct {
	ThetaMax float64 `json:"theta_max_rad"`
	CMCos    float64 `json:"cm_cos"`
	Energy   float64 `json:"energy_mev"`
}

// Solution is the machine-readable form of a solved reaction: the
// invariants plus the full table in base units (MeV, rad).
type Solution struct {
	Reaction string     `json:"reaction"`
	Masses   [4]float64 `json:"masses_mev"`
	Ek       float64    `json:"ek_mev"`
	Q        float64    `json:"q_mev"`

	S        float64  `json:"s_mev2"`
	Pcm      float64  `json:"pcm_mev"`
	Pcmp     float64  `json:"pcmp_mev"`
	Rapidity float64  `json:"rapidity"`
	Emax3    float64  `json:"emax3_mev"`
	Emin3    float64  `json:"emin3_mev"`
	Emax4    float64  `json:"emax4_mev"`
	Emin4    float64  `json:"emin4_mev"`
	Turning3 *Turning `json:"turning3,omitempty"`
	Turning4 *Turning `json:"turning4,omitempty"`

	Columns []string    `json:"columns"`
	Rows    [][]float64 `json:"rows"`
}

// NewSolution collects a labeled reaction and its table into a
// Solution.
func NewSolution(label string, rxn *kinematics.Reaction) *Solution {
	tab := rxn.Table()
	cols := kinematics.Columns()

	rows := make([][]float64, len(tab.Rows))
	for i, row := range tab.Rows {
		vals := make([]float64, len(cols))
		for j, name := range cols {
			vals[j], _ = row.Value(name)
		}
		rows[i] = vals
	}

	return &Solution{
		Reaction: label,
		Masses:   [4]float64{rxn.M1, rxn.M2, rxn.M3, rxn.M4},
		Ek:       rxn.Ek,
		Q:        rxn.Q(),
		S:        rxn.S,
		Pcm:      rxn.Pcm,
		Pcmp:     rxn.Pcmp,
		Rapidity: rxn.Rapidity,
		Emax3:    rxn.Emax3,
		Emin3:    rxn.Emin3,
		Emax4:    rxn.Emax4,
		Emin4:    rxn.Emin4,
		Turning3: turningFrom(rxn.Max3),
		Turning4: turningFrom(rxn.Max4),
		Columns:  cols,
		Rows:     rows,
	}
}

func turningFrom(t *kinematics.Turning) *Turning {
	if t == nil {
		return nil
	}
	return &Turning{ThetaMax: t.ThetaMax, CMCos: t.CMCos, Energy: t.Energy}
}

// JSON writes the solution with indentation.
func JSON(w io.Writer, sol *Solution) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(sol)
}

// JSONFile writes the solution to a file.
func JSONFile(path string, sol *Solution) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return JSON(f, sol)
}
