package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/san-kum/boardlab/internal/bench"
	"github.com/san-kum/boardlab/internal/telemetry"
)

var ErrRunNotFound = errors.New("run not found")

const (
	metadataFile  = "metadata.json"
	durationsFile = "durations.csv"
)

// Store keeps benchmark runs on disk, one directory per run.
type Store struct {
	baseDir string
}

// New returns a store rooted at baseDir. A leading ~ is expanded.
func New(baseDir string) (*Store, error) {
	dir, err := homedir.Expand(baseDir)
	if err != nil {
		return nil, err
	}
	return &Store{baseDir: dir}, nil
}

func (s *Store) Dir() string { return s.baseDir }

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID         string    `json:"id"`
	Renderer   string    `json:"renderer"`
	Timestamp  time.Time `json:"timestamp"`
	Seed       int64     `json:"seed"`
	Iterations int       `json:"iterations"`
	Points     bool      `json:"points"`
	Segments   bool      `json:"segments"`
	Width      float64   `json:"width"`
	Height     float64   `json:"height"`
	Summary    Summary   `json:"summary"`
}

// Summary is bench.Summary in milliseconds.
type Summary struct {
	AverageMs   float64 `json:"average_ms"`
	MinMs       float64 `json:"min_ms"`
	MaxMs       float64 `json:"max_ms"`
	SampleCount int     `json:"sample_count"`
}

func summaryOf(s bench.Summary) Summary {
	return Summary{
		AverageMs:   telemetry.Milliseconds(s.Average),
		MinMs:       telemetry.Milliseconds(s.Min),
		MaxMs:       telemetry.Milliseconds(s.Max),
		SampleCount: s.SampleCount,
	}
}

// Save writes a run and returns its id.
func (s *Store) Save(renderer string, opts bench.Options, result bench.Result) (string, error) {
	now := time.Now()
	runID, runDir, err := s.allocate(renderer, now)
	if err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Renderer:   renderer,
		Timestamp:  now,
		Seed:       opts.Seed,
		Iterations: opts.Iterations,
		Points:     opts.IncludePoints,
		Segments:   opts.IncludeSegments,
		Width:      opts.Size.Width,
		Height:     opts.Size.Height,
		Summary:    summaryOf(result.Summary),
	}
	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}
	if err := writeDurations(filepath.Join(runDir, durationsFile), result.Durations); err != nil {
		return "", err
	}
	return runID, nil
}

// allocate creates a fresh run directory, suffixing the id on collision.
func (s *Store) allocate(renderer string, now time.Time) (string, string, error) {
	if err := s.Init(); err != nil {
		return "", "", err
	}
	base := fmt.Sprintf("%s_%d", renderer, now.Unix())
	for i := 0; ; i++ {
		id := base
		if i > 0 {
			id = fmt.Sprintf("%s-%d", base, i)
		}
		dir := filepath.Join(s.baseDir, id)
		err := os.Mkdir(dir, 0755)
		if err == nil {
			return id, dir, nil
		}
		if !os.IsExist(err) {
			return "", "", err
		}
	}
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeDurations(path string, durations []time.Duration) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"sample", "duration_ms"}); err != nil {
		return err
	}
	for i, d := range durations {
		row := []string{strconv.Itoa(i), strconv.FormatFloat(telemetry.Milliseconds(d), 'f', 6, 64)}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns every readable run, oldest first.
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
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("decode %s: %w", runID, err)
	}
	return &meta, nil
}

// Latest returns the most recent run.
func (s *Store) Latest() (*RunMetadata, error) {
	runs, err := s.List()
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, ErrRunNotFound
	}
	return &runs[len(runs)-1], nil
}

func (s *Store) LoadDurations(runID string) ([]time.Duration, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, durationsFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	durations := make([]time.Duration, 0, max(len(records)-1, 0))
	for i := 1; i < len(records); i++ {
		if len(records[i]) < 2 {
			continue
		}
		v, err := strconv.ParseFloat(records[i][1], 64)
		if err != nil {
			continue
		}
		durations = append(durations, time.Duration(v*float64(time.Millisecond)))
	}
	return durations, nil
}
