package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/astroloom/alpmix/internal/mixing"
)

// Store persists mixing runs on the filesystem, one directory per run with
// metadata.json and spectrum.csv.
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
	ID           string             `json:"id"`
	Environment  string             `json:"environment"`
	Timestamp    time.Time          `json:"timestamp"`
	MassNeV      float64            `json:"mass_nev"`
	G11          float64            `json:"g11"`
	Seed         int64              `json:"seed"`
	EminGeV      float64            `json:"emin_gev"`
	EmaxGeV      float64            `json:"emax_gev"`
	NEnergies    int                `json:"n_energies"`
	Polarization string             `json:"polarization"`
	Metrics      map[string]float64 `json:"metrics"`
}

func (s *Store) Save(meta RunMetadata, result *mixing.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", meta.Environment, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()
	if len(result.EnergiesGeV) > 0 {
		meta.EminGeV = result.EnergiesGeV[0]
		meta.EmaxGeV = result.EnergiesGeV[len(result.EnergiesGeV)-1]
		meta.NEnergies = len(result.EnergiesGeV)
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

	csvFile, err := os.Create(filepath.Join(runDir, "spectrum.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"energy_gev", "pgx", "pgy", "paa"}); err != nil {
		return "", err
	}

	for i := range result.EnergiesGeV {
		row := []string{
			strconv.FormatFloat(result.EnergiesGeV[i], 'e', 9, 64),
			strconv.FormatFloat(result.Pgx[i], 'e', 9, 64),
			strconv.FormatFloat(result.Pgy[i], 'e', 9, 64),
			strconv.FormatFloat(result.Paa[i], 'e', 9, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadSpectrum(runID string) (*mixing.Result, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "spectrum.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	result := &mixing.Result{}
	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 4 {
			continue
		}

		vals := make([]float64, 4)
		ok := true
		for j := 0; j < 4; j++ {
			v, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				ok = false
				break
			}
			vals[j] = v
		}
		if !ok {
			continue
		}

		result.EnergiesGeV = append(result.EnergiesGeV, vals[0])
		result.Pgx = append(result.Pgx, vals[1])
		result.Pgy = append(result.Pgy, vals[2])
		result.Paa = append(result.Paa, vals[3])
	}

	return result, nil
}
