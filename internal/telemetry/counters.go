// Package telemetry tracks per-run usage counters.
//
// Counters are owned by the application context built in the root command,
// never by package-level state: each command mutates the recorder it was
// handed and flushes one JSONL record when it finishes. The stats command
// aggregates the record history back into totals.
package telemetry

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/graexlabs/sentinel-cli/internal/shared/constants"
)

// HistoryFilename is the JSONL file holding one Record per completed run.
const HistoryFilename = "telemetry.jsonl"

// Counters are the usage totals tracked across commands.
type Counters struct {
	PasswordsAnalyzed int `json:"passwords_analyzed"`
	NetworksScanned   int `json:"networks_scanned"`
	BreachesFound     int `json:"breaches_found"`
	ReportsGenerated  int `json:"reports_generated"`
}

// Add accumulates another set of counters into this one.
func (c *Counters) Add(other Counters) {
	c.PasswordsAnalyzed += other.PasswordsAnalyzed
	c.NetworksScanned += other.NetworksScanned
	c.BreachesFound += other.BreachesFound
	c.ReportsGenerated += other.ReportsGenerated
}

// Record is one persisted telemetry entry, written after a command run.
type Record struct {
	Timestamp       time.Time `json:"timestamp"`
	Command         string    `json:"command"`
	DurationSeconds float64   `json:"duration_seconds"`
	Counters
}

// Recorder accumulates counters for a single process and appends them to
// the history file on Flush. It is safe for concurrent use; batch commands
// increment it from worker goroutines.
type Recorder struct {
	mu       sync.Mutex
	path     string
	counters Counters
	start    time.Time
}

// NewRecorder creates a Recorder persisting under resultsDir.
func NewRecorder(resultsDir string) *Recorder {
	return &Recorder{
		path:  filepath.Join(resultsDir, HistoryFilename),
		start: time.Now(),
	}
}

// Add accumulates counter deltas.
func (r *Recorder) Add(delta Counters) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counters.Add(delta)
}

// Snapshot returns the counters accumulated so far.
func (r *Recorder) Snapshot() Counters {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counters
}

// Flush appends one record for the named command and resets the
// accumulated counters. Commands that tracked nothing write nothing.
func (r *Recorder) Flush(command string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.counters == (Counters{}) {
		return nil
	}

	record := Record{
		Timestamp:       time.Now().UTC(),
		Command:         command,
		DurationSeconds: time.Since(r.start).Seconds(),
		Counters:        r.counters,
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal telemetry: %w", err)
	}

	f, err := os.OpenFile(r.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, constants.DefaultFilePerm)
	if err != nil {
		return fmt.Errorf("open telemetry file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write telemetry: %w", err)
	}

	r.counters = Counters{}
	return nil
}

// LoadHistory reads up to limit most recent records from the history file.
// A missing file yields an empty history, not an error. Limit <= 0 means
// no limit.
func LoadHistory(resultsDir string, limit int) ([]Record, error) {
	path := filepath.Join(resultsDir, HistoryFilename)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open telemetry history: %w", err)
	}
	defer f.Close()

	var records []Record
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec Record
		if err := json.Unmarshal(line, &rec); err != nil {
			// Skip corrupt lines rather than losing the whole history.
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read telemetry history: %w", err)
	}

	if limit > 0 && len(records) > limit {
		records = records[len(records)-limit:]
	}
	return records, nil
}

// Aggregate folds a record history into counter totals.
func Aggregate(records []Record) Counters {
	var total Counters
	for _, rec := range records {
		total.Add(rec.Counters)
	}
	return total
}
