package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/boardlab/internal/telemetry"
)

type ExportData struct {
	RunMetadata
	DurationsMs []float64 `json:"durations_ms"`
}

// ExportJSON writes a run's metadata and durations as one JSON document.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	durations, err := s.LoadDurations(runID)
	if err != nil {
		return err
	}

	data := ExportData{
		RunMetadata: *meta,
		DurationsMs: make([]float64, len(durations)),
	}
	for i, d := range durations {
		data.DurationsMs[i] = telemetry.Milliseconds(d)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
