// Package storage records headless runs on disk: one directory per run
// with JSON metadata and sampled particle states as CSV.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/ballpit/internal/config"
	"github.com/san-kum/ballpit/internal/sim"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID         string             `json:"id"`
	Timestamp  time.Time          `json:"timestamp"`
	Count      int                `json:"count"`
	Gravity    float64            `json:"gravity"`
	Friction   float64            `json:"friction"`
	WallBounce float64            `json:"wall_bounce"`
	Seed       int64              `json:"seed"`
	Frames     uint64             `json:"frames"`
	Duration   float64            `json:"duration"`
	Metrics    map[string]float64 `json:"metrics"`
}

// Save persists one run and returns its ID.
func (s *Store) Save(cfg *config.Config, result *sim.Result) (string, error) {
	runID := fmt.Sprintf("run_%d", time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Timestamp:  time.Now(),
		Count:      cfg.Count,
		Gravity:    cfg.Gravity,
		Friction:   cfg.Friction,
		WallBounce: cfg.WallBounce,
		Seed:       cfg.Seed,
		Frames:     result.Frames,
		Duration:   result.Duration,
		Metrics:    result.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()
	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "states.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()
	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"t", "index", "x", "y", "z", "vx", "vy", "vz", "radius"}); err != nil {
		return "", err
	}
	for si, snap := range result.Snapshots {
		t := result.Times[si]
		for i, p := range snap {
			row := []string{
				strconv.FormatFloat(t, 'f', 4, 64),
				strconv.Itoa(i),
				strconv.FormatFloat(p.Pos.X, 'f', 5, 64),
				strconv.FormatFloat(p.Pos.Y, 'f', 5, 64),
				strconv.FormatFloat(p.Pos.Z, 'f', 5, 64),
				strconv.FormatFloat(p.Vel.X, 'f', 5, 64),
				strconv.FormatFloat(p.Vel.Y, 'f', 5, 64),
				strconv.FormatFloat(p.Vel.Z, 'f', 5, 64),
				strconv.FormatFloat(p.Radius, 'f', 5, 64),
			}
			if err := w.Write(row); err != nil {
				return "", err
			}
		}
	}
	return runID, nil
}

// List returns the metadata of all stored runs, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var runs []RunMetadata
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, e.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}
