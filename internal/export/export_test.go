package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/det-lab/reaction-kinematics/internal/kinematics"
	"github.com/det-lab/reaction-kinematics/internal/unit"
)

func solve(t *testing.T) *kinematics.Reaction {
	t.Helper()
	rxn, err := kinematics.SolveN(3727.3793, 11174.8633, 3727.3793, 11174.8633, 4.0, 50)
	if err != nil {
		t.Fatalf("SolveN: %v", err)
	}
	return rxn
}

func TestCSVUnits(t *testing.T) {
	rxn := solve(t)

	var buf bytes.Buffer
	if err := CSV(&buf, rxn.Table(), unit.Deg, unit.KeV); err != nil {
		t.Fatalf("CSV: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("re-read: %v", err)
	}
	if len(records) != 1+101 {
		t.Fatalf("records = %d, want 102", len(records))
	}

	header := records[0]
	if header[0] != "coscm" {
		t.Errorf("header[0] = %q", header[0])
	}
	if header[1] != "theta_cm [deg]" {
		t.Errorf("header[1] = %q", header[1])
	}
	if !strings.Contains(strings.Join(header, ","), "e3 [keV]") {
		t.Errorf("header missing e3 [keV]: %v", header)
	}
	if !strings.Contains(strings.Join(header, ","), "p3 [keV/c]") {
		t.Errorf("header missing p3 [keV/c]: %v", header)
	}

	// First data row is coscm = -1: theta_cm = 180 deg, e3 = Emin3 in keV.
	first := records[1]
	thetaCM, _ := strconv.ParseFloat(first[1], 64)
	if math.Abs(thetaCM-180.0) > 1e-3 {
		t.Errorf("theta_cm = %v, want 180", thetaCM)
	}
	e3, _ := strconv.ParseFloat(first[4], 64)
	if math.Abs(e3-rxn.Emin3*1000) > 1e-2 {
		t.Errorf("e3 = %v keV, want %v", e3, rxn.Emin3*1000)
	}
}

func TestSolutionJSON(t *testing.T) {
	rxn := solve(t)
	sol := NewSolution("12C(a,a)12C", rxn)

	var buf bytes.Buffer
	if err := JSON(&buf, sol); err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var back Solution
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Reaction != "12C(a,a)12C" {
		t.Errorf("reaction = %q", back.Reaction)
	}
	if back.Ek != 4.0 {
		t.Errorf("ek = %v", back.Ek)
	}
	if len(back.Rows) != 101 || len(back.Rows[0]) != len(kinematics.Columns()) {
		t.Errorf("rows = %dx%d", len(back.Rows), len(back.Rows[0]))
	}
	if back.Turning3 != nil {
		t.Errorf("turning3 = %+v, want nil", back.Turning3)
	}
	if back.Turning4 == nil || math.Abs(back.Turning4.ThetaMax-math.Pi/2) > 1e-12 {
		t.Errorf("turning4 = %+v", back.Turning4)
	}
}

func TestCurveSVG(t *testing.T) {
	rxn := solve(t)
	tab := rxn.Table()
	xs, _ := tab.Column(kinematics.ColThetaCM)
	ys, _ := tab.Column(kinematics.ColE3)

	svg := CurveSVG(xs, ys, 640, 480, "theta_cm [rad]", "e3 [MeV]")
	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Fatalf("bad svg prefix: %.40q", svg)
	}
	if !strings.Contains(svg, "<path") || !strings.Contains(svg, "theta_cm [rad]") {
		t.Errorf("svg missing path or label")
	}

	if got := CurveSVG(xs[:1], ys[:1], 640, 480, "x", "y"); got != "" {
		t.Errorf("short input: got %d bytes, want empty", len(got))
	}
}
