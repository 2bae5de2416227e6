package report

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// DirSink writes one text file per attachment into a per-run directory
// and, on Close, a results.json with every recorded result.
type DirSink struct {
	dir string

	mu      sync.Mutex
	seq     map[string]int
	results []Result
}

// NewDirSink creates root/runID and returns a sink writing into it.
func NewDirSink(root, runID string) (*DirSink, error) {
	dir := filepath.Join(root, runID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating report directory: %w", err)
	}
	return &DirSink{dir: dir, seq: make(map[string]int)}, nil
}

// Dir returns the run directory.
func (s *DirSink) Dir() string {
	return s.dir
}

func (s *DirSink) Attach(ctx context.Context, caseID string, a Attachment) error {
	s.mu.Lock()
	s.seq[caseID]++
	n := s.seq[caseID]
	s.mu.Unlock()

	name := fmt.Sprintf("%s-%02d-%s.txt", fileStem(caseID), n, fileSafe(strings.ToLower(a.Label)))
	if err := os.WriteFile(filepath.Join(s.dir, name), []byte(a.Body+"\n"), 0644); err != nil {
		return fmt.Errorf("writing attachment: %w", err)
	}
	return nil
}

func (s *DirSink) Record(ctx context.Context, r Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(s.results, r)
	return nil
}

// Close writes results.json.
func (s *DirSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(s.results, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, "results.json"), data, 0644)
}

// fileStem is the file name prefix for a case. Ids that fileSafe has to
// rewrite get a hash of the raw id so that Neg/01 and Neg-01 stay apart.
func fileStem(caseID string) string {
	safe := fileSafe(caseID)
	if safe == caseID {
		return safe
	}
	h := fnv.New32a()
	h.Write([]byte(caseID))
	return fmt.Sprintf("%s-%08x", safe, h.Sum32())
}

// fileSafe maps anything outside [A-Za-z0-9_.-] to '-'.
func fileSafe(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '_', r == '.', r == '-':
			return r
		}
		return '-'
	}, s)
}
