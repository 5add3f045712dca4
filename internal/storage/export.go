package storage

import (
	"encoding/json"
	"io"

	"github.com/astroloom/alpmix/internal/mixing"
)

type exportPayload struct {
	Meta     RunMetadata `json:"meta"`
	Energies []float64   `json:"energies_gev"`
	Pgx      []float64   `json:"pgx"`
	Pgy      []float64   `json:"pgy"`
	Paa      []float64   `json:"paa"`
	Pgg      []float64   `json:"pgg"`
}

// ExportJSON writes a run and its spectrum as one indented JSON document.
func ExportJSON(w io.Writer, meta RunMetadata, result *mixing.Result) error {
	payload := exportPayload{
		Meta:     meta,
		Energies: result.EnergiesGeV,
		Pgx:      result.Pgx,
		Pgy:      result.Pgy,
		Paa:      result.Paa,
		Pgg:      result.Pgg(),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
