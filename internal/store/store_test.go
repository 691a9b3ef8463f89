package store

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/det-lab/reaction-kinematics/internal/kinematics"
)

const (
	massProton = 938.2721
	massAlpha  = 3727.3793
	massC12    = 11174.8633
)

func TestSaveLoad(t *testing.T) {
	st := New(t.TempDir())

	rxn, err := kinematics.SolveN(massAlpha, massC12, massAlpha, massC12, 4.0, 50)
	if err != nil {
		t.Fatalf("SolveN: %v", err)
	}

	id, err := st.Save("12C(a,a)12C", rxn)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if id == "" {
		t.Fatal("empty id")
	}

	meta, err := st.Load(id)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if meta.ID != id {
		t.Errorf("id = %q, want %q", meta.ID, id)
	}
	if meta.Reaction != "12C(a,a)12C" {
		t.Errorf("reaction = %q", meta.Reaction)
	}
	if meta.Ek != 4.0 || meta.Samples != 50 {
		t.Errorf("ek = %v samples = %d", meta.Ek, meta.Samples)
	}
	if meta.Pcm != rxn.Pcm || meta.Rapidity != rxn.Rapidity {
		t.Errorf("invariants do not round trip")
	}
	if meta.Theta3Max != nil {
		t.Errorf("theta3_max = %v, want nil", *meta.Theta3Max)
	}
	if meta.Theta4Max == nil || math.Abs(*meta.Theta4Max-math.Pi/2) > 1e-12 {
		t.Errorf("theta4_max = %v, want pi/2", meta.Theta4Max)
	}
}

func TestLoadTable(t *testing.T) {
	st := New(t.TempDir())

	rxn, err := kinematics.SolveN(massAlpha, massC12, massAlpha, massC12, 4.0, 50)
	if err != nil {
		t.Fatalf("SolveN: %v", err)
	}
	id, err := st.Save("12C(a,a)12C", rxn)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	header, rows, err := st.LoadTable(id)
	if err != nil {
		t.Fatalf("LoadTable: %v", err)
	}
	if len(header) != len(kinematics.Columns()) {
		t.Fatalf("header has %d columns, want %d", len(header), len(kinematics.Columns()))
	}
	if len(rows) != 101 {
		t.Fatalf("rows = %d, want 101", len(rows))
	}
	if math.Abs(rows[0][0]+1) > 1e-9 {
		t.Errorf("first coscm = %v, want -1", rows[0][0])
	}
	if math.Abs(rows[100][0]-1) > 1e-9 {
		t.Errorf("last coscm = %v, want 1", rows[100][0])
	}
	// Saved tables are in base units: e3 at coscm = 1 is Emax3.
	if math.Abs(rows[100][4]-rxn.Emax3) > 1e-5 {
		t.Errorf("e3 = %v, want %v", rows[100][4], rxn.Emax3)
	}
}

func TestList(t *testing.T) {
	st := New(t.TempDir())

	list, err := st.List()
	if err != nil {
		t.Fatalf("List on empty store: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("len = %d, want 0", len(list))
	}

	elastic, err := kinematics.SolveN(massAlpha, massC12, massAlpha, massC12, 4.0, 50)
	if err != nil {
		t.Fatalf("SolveN: %v", err)
	}
	inverse, err := kinematics.SolveN(massC12, massProton, massC12, massProton, 50.0, 50)
	if err != nil {
		t.Fatalf("SolveN: %v", err)
	}
	if _, err := st.Save("12C(a,a)12C", elastic); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := st.Save("p(12C,12C)p", inverse); err != nil {
		t.Fatalf("Save: %v", err)
	}

	list, err = st.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len = %d, want 2", len(list))
	}
}

func TestListSkipsBadEntries(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)

	rxn, err := kinematics.SolveN(massAlpha, massC12, massAlpha, massC12, 4.0, 20)
	if err != nil {
		t.Fatalf("SolveN: %v", err)
	}
	if _, err := st.Save("12C(a,a)12C", rxn); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// A directory without metadata must not break listing.
	if err := os.MkdirAll(filepath.Join(dir, "stray"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	list, err := st.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("len = %d, want 1", len(list))
	}
}

func TestLoadMissing(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("nope"); err == nil {
		t.Fatal("expected error for missing id")
	}
	if _, _, err := st.LoadTable("nope"); err == nil {
		t.Fatal("expected error for missing table")
	}
}
