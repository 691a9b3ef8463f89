package isotope

import (
	"errors"
	"math"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantA   int
		wantEl  string
		wantErr bool
	}{
		{"plain", "12C", 12, "c", false},
		{"lowercase", "4he", 4, "he", false},
		{"padded", " 16O ", 16, "o", false},
		{"alias alpha", "alpha", 4, "he", false},
		{"alias a", "a", 4, "he", false},
		{"alias p", "p", 1, "h", false},
		{"alias d", "d", 2, "h", false},
		{"alias t", "t", 3, "h", false},
		{"alias n", "n", 1, "n", false},
		{"symbol first", "C12", 0, "", true},
		{"empty", "", 0, "", true},
		{"number only", "12", 0, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, el, err := Parse(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrBadName) {
					t.Fatalf("Parse(%q) error = %v, want ErrBadName", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.in, err)
			}
			if a != tt.wantA || el != tt.wantEl {
				t.Errorf("Parse(%q) = (%d, %q), want (%d, %q)", tt.in, a, el, tt.wantA, tt.wantEl)
			}
		})
	}
}

func TestMass(t *testing.T) {
	tests := []struct {
		name string
		want float64
		tol  float64
	}{
		{"1H", 938.2721, 1e-3},
		{"4He", 3727.3794, 1e-3},
		{"12C", 11174.8633, 1e-3},
		{"n", 939.5654, 1e-3},
		{"197Au", 183432.8, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Mass(tt.name)
			if err != nil {
				t.Fatalf("Mass(%q) error: %v", tt.name, err)
			}
			if math.Abs(got-tt.want) > tt.tol {
				t.Errorf("Mass(%q) = %v, want %v within %v", tt.name, got, tt.want, tt.tol)
			}
		})
	}
}

func TestMassAliases(t *testing.T) {
	ma, err := Mass("a")
	if err != nil {
		t.Fatal(err)
	}
	malpha, err := Mass("alpha")
	if err != nil {
		t.Fatal(err)
	}
	mhe4, err := Mass("4He")
	if err != nil {
		t.Fatal(err)
	}
	if ma != malpha || ma != mhe4 {
		t.Errorf("alias masses differ: a=%v alpha=%v 4He=%v", ma, malpha, mhe4)
	}
}

func TestLookup(t *testing.T) {
	n, err := Lookup("12C")
	if err != nil {
		t.Fatal(err)
	}
	if n.A != 12 || n.Z != 6 || n.Element != "C" {
		t.Errorf("Lookup(12C) = %+v", n)
	}
	if n.MassExcess != 0 {
		t.Errorf("12C mass excess = %v, want 0 by definition", n.MassExcess)
	}
	if n.Name() != "12C" {
		t.Errorf("Name() = %q, want 12C", n.Name())
	}

	if _, err := Lookup("99Xx"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Lookup(99Xx) error = %v, want ErrNotFound", err)
	}
	if _, err := Lookup("carbon"); !errors.Is(err, ErrBadName) {
		t.Errorf("Lookup(carbon) error = %v, want ErrBadName", err)
	}
}

func TestListNaturalOrder(t *testing.T) {
	list, err := List()
	if err != nil {
		t.Fatal(err)
	}
	if len(list) < 40 {
		t.Fatalf("List() returned %d nuclides, expected the full table", len(list))
	}

	index := make(map[string]int, len(list))
	for i, n := range list {
		index[n.Name()] = i
	}

	// natural order sorts 9Be before 10B, which plain string order
	// would invert
	pairs := [][2]string{
		{"1H", "2H"},
		{"2H", "3He"},
		{"9Be", "10B"},
		{"12C", "16O"},
		{"56Fe", "197Au"},
	}
	for _, p := range pairs {
		i, ok := index[p[0]]
		j, ok2 := index[p[1]]
		if !ok || !ok2 {
			t.Fatalf("List() missing %q or %q", p[0], p[1])
		}
		if i >= j {
			t.Errorf("List() order: %s (%d) should precede %s (%d)", p[0], i, p[1], j)
		}
	}
}
