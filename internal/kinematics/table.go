package kinematics

import (
	"fmt"
	"math"
	"sort"

	"github.com/det-lab/reaction-kinematics/internal/mathx"
)

// DefaultDuplicateTol is the merge width for near-coincident inverse
// interpolation roots.
const DefaultDuplicateTol = 1e-6

// Observable column names.
const (
	ColCosCM   = "coscm"
	ColThetaCM = "theta_cm"
	ColTheta3  = "theta3"
	ColTheta4  = "theta4"
	ColE3      = "e3"
	ColE4      = "e4"
	ColV3      = "v3"
	ColV4      = "v4"
	ColP3      = "p3"
	ColP4      = "p4"
)

// Columns returns every observable column name in canonical order.
func Columns() []string {
	return []string{
		ColCosCM, ColThetaCM, ColTheta3, ColTheta4,
		ColE3, ColE4, ColV3, ColV4, ColP3, ColP4,
	}
}

// Kind classifies a column for boundary unit conversion.
type Kind int

const (
	KindScalar   Kind = iota // dimensionless: cosines and speeds in c
	KindAngle                // radians
	KindEnergy               // MeV
	KindMomentum             // MeV/c
)

// ColumnKind maps a column name to its Kind.
func ColumnKind(name string) (Kind, error) {
	switch name {
	case ColCosCM, ColV3, ColV4:
		return KindScalar, nil
	case ColThetaCM, ColTheta3, ColTheta4:
		return KindAngle, nil
	case ColE3, ColE4:
		return KindEnergy, nil
	case ColP3, ColP4:
		return KindMomentum, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
}

// Value extracts the named column from the row.
func (row Row) Value(name string) (float64, error) {
	switch name {
	case ColCosCM:
		return row.CosCM, nil
	case ColThetaCM:
		return row.ThetaCM, nil
	case ColTheta3:
		return row.Theta3, nil
	case ColTheta4:
		return row.Theta4, nil
	case ColE3:
		return row.E3, nil
	case ColE4:
		return row.E4, nil
	case ColV3:
		return row.V3, nil
	case ColV4:
		return row.V4, nil
	case ColP3:
		return row.P3, nil
	case ColP4:
		return row.P4, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
}

// Table is a dense sampling of the lab-frame observables over the full
// CM angular range. Immutable once built.
type Table struct {
	N    int   // sampling parameter; len(Rows) == 2N+1
	Rows []Row // ordered by CosCM from -1 to +1
}

// Table returns the reaction's cached observable table, building it on
// first use. Safe for concurrent callers; every call returns the same
// instance.
func (r *Reaction) Table() *Table {
	r.tableOnce.Do(func() {
		r.table = &Table{N: r.samples, Rows: r.Rows(r.samples)}
	})
	return r.table
}

// Column returns one observable column as a slice, ordered like Rows.
func (t *Table) Column(name string) ([]float64, error) {
	if _, err := ColumnKind(name); err != nil {
		return nil, err
	}
	out := make([]float64, len(t.Rows))
	for i, row := range t.Rows {
		out[i], _ = row.Value(name)
	}
	return out, nil
}

// AtValue inverse-interpolates the table. Every consecutive row pair
// whose xName values bracket xTarget contributes one linearly
// interpolated value per requested column, so a non-monotonic column
// (a lab angle near its turning point) yields several roots. Per
// column, roots are sorted descending and then merged: a root within
// tol of an already-kept one is dropped, first kept wins. tol <= 0
// selects DefaultDuplicateTol; empty yNames requests every column,
// xName included.
//
// The error is ErrOutOfRange when no pair brackets xTarget and
// ErrUnknownColumn for a name outside the observable set.
func (t *Table) AtValue(xName string, xTarget float64, yNames []string, tol float64) (map[string][]float64, error) {
	if tol <= 0 {
		tol = DefaultDuplicateTol
	}
	xs, err := t.Column(xName)
	if err != nil {
		return nil, err
	}
	if len(xs) == 0 {
		return nil, fmt.Errorf("empty table: %w", ErrOutOfRange)
	}
	if len(yNames) == 0 {
		yNames = Columns()
	} else {
		for _, name := range yNames {
			if _, err := ColumnKind(name); err != nil {
				return nil, err
			}
		}
	}

	out := make(map[string][]float64, len(yNames))
	found := false
	for i := 0; i+1 < len(t.Rows); i++ {
		x0, x1 := xs[i], xs[i+1]
		// equal consecutive values cannot be interpolated across
		if x0 != x1 && (x0-xTarget)*(x1-xTarget) <= 0 {
			found = true
			f := (xTarget - x0) / (x1 - x0)
			for _, name := range yNames {
				y0, _ := t.Rows[i].Value(name)
				y1, _ := t.Rows[i+1].Value(name)
				out[name] = append(out[name], y0+f*(y1-y0))
			}
		}
	}
	if !found {
		lo, hi := mathx.MinMax(xs)
		return nil, fmt.Errorf("%s = %g not in sampled range [%g, %g]: %w", xName, xTarget, lo, hi, ErrOutOfRange)
	}

	for name, roots := range out {
		sort.Sort(sort.Reverse(sort.Float64Slice(roots)))
		out[name] = mergeRoots(roots, tol)
	}
	return out, nil
}

// AtValue runs the inverse interpolation against the reaction's cached
// table, building it on first use.
func (r *Reaction) AtValue(xName string, xTarget float64, yNames []string, tol float64) (map[string][]float64, error) {
	return r.Table().AtValue(xName, xTarget, yNames, tol)
}

// mergeRoots drops every value within tol of the last kept one. The
// input must already be sorted.
func mergeRoots(vals []float64, tol float64) []float64 {
	kept := vals[:0]
	for _, v := range vals {
		if len(kept) == 0 || math.Abs(kept[len(kept)-1]-v) > tol {
			kept = append(kept, v)
		}
	}
	return kept
}
