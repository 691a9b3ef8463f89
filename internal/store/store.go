// Package store persists solved reactions to disk.
//
// Each solution lives in its own directory under the base path,
// holding a metadata.json with the reaction invariants and a table.csv
// with the full observable table in base units (MeV, rad).
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/det-lab/reaction-kinematics/internal/export"
	"github.com/det-lab/reaction-kinematics/internal/kinematics"
	"github.com/det-lab/reaction-kinematics/internal/unit"
)

// Metadata describes one saved solution.
type Metadata struct {
	ID        string    `json:"id"`
	Reaction  string    `json:"reaction"`
	CreatedAt time.Time `json:"created_at"`

	Masses  [4]float64 `json:"masses_mev"`
	Ek      float64    `json:"ek_mev"`
	Q       float64    `json:"q_mev"`
	Samples int        `json:"samples"`

	S        float64 `json:"s_mev2"`
	Pcm      float64 `json:"pcm_mev"`
	Pcmp     float64 `json:"pcmp_mev"`
	Rapidity float64 `json:"rapidity"`

	Emax3 float64 `json:"emax3_mev"`
	Emin3 float64 `json:"emin3_mev"`
	Emax4 float64 `json:"emax4_mev"`
	Emin4 float64 `json:"emin4_mev"`

	// Largest lab angle per outgoing particle, absent when the
	// particle reaches all angles.
	Theta3Max *float64 `json:"theta3_max_rad,omitempty"`
	Theta4Max *float64 `json:"theta4_max_rad,omitempty"`
}

// Store manages saved solutions under a base directory.
type Store struct {
	baseDir string
}

// New creates a store rooted at baseDir.
func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// Init creates the base directory if needed.
func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// Dir returns the base directory.
func (s *Store) Dir() string {
	return s.baseDir
}

var idReplacer = strings.NewReplacer("(", "_", ")", "_", ",", "-", " ", "")

// Save writes a solved reaction under a timestamped ID and returns it.
func (s *Store) Save(label string, rxn *kinematics.Reaction) (string, error) {
	if err := s.Init(); err != nil {
		return "", err
	}

	id := fmt.Sprintf("%s_%d", idReplacer.Replace(label), time.Now().Unix())
	dir := filepath.Join(s.baseDir, id)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	meta := Metadata{
		ID:        id,
		Reaction:  label,
		CreatedAt: time.Now(),
		Masses:    [4]float64{rxn.M1, rxn.M2, rxn.M3, rxn.M4},
		Ek:        rxn.Ek,
		Q:         rxn.Q(),
		Samples:   rxn.Samples(),
		S:         rxn.S,
		Pcm:       rxn.Pcm,
		Pcmp:      rxn.Pcmp,
		Rapidity:  rxn.Rapidity,
		Emax3:     rxn.Emax3,
		Emin3:     rxn.Emin3,
		Emax4:     rxn.Emax4,
		Emin4:     rxn.Emin4,
	}
	if rxn.Max3 != nil {
		meta.Theta3Max = &rxn.Max3.ThetaMax
	}
	if rxn.Max4 != nil {
		meta.Theta4Max = &rxn.Max4.ThetaMax
	}

	metaFile, err := os.Create(filepath.Join(dir, "metadata.json"))
	if err != nil {
		return "", err
	}
	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		metaFile.Close()
		return "", err
	}
	if err := metaFile.Close(); err != nil {
		return "", err
	}

	if err := export.CSVFile(filepath.Join(dir, "table.csv"), rxn.Table(), unit.Rad, unit.MeV); err != nil {
		return "", err
	}

	return id, nil
}

// List returns metadata for all saved solutions. Entries with
// unreadable metadata are skipped.
func (s *Store) List() ([]Metadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Metadata{}, nil
		}
		return nil, err
	}

	var out []Metadata
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		out = append(out, *meta)
	}
	return out, nil
}

// Load reads the metadata for one saved solution.
func (s *Store) Load(id string) (*Metadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("store: bad metadata for %s: %w", id, err)
	}
	return &meta, nil
}

// LoadTable reads back the saved observable table. Rows that fail to
// parse are skipped.
func (s *Store) LoadTable(id string) ([]string, [][]float64, error) {
	f, err := os.Open(filepath.Join(s.baseDir, id, "table.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("store: empty table for %s", id)
	}

	header := records[0]
	rows := make([][]float64, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) != len(header) {
			continue
		}
		vals := make([]float64, len(record))
		ok := true
		for i, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				ok = false
				break
			}
			vals[i] = v
		}
		if ok {
			rows = append(rows, vals)
		}
	}
	return header, rows, nil
}
