package scenario

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Info is a lightweight listing entry for one scenario file.
type Info struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	File        string `json:"file"`
	Teams       int    `json:"teams"`
}

// Store serves scenario files from a directory, caching parsed scenarios by
// file modification time so repeated API listings stay cheap.
type Store struct {
	dir string

	mu    sync.RWMutex
	cache map[string]cachedScenario
}

type cachedScenario struct {
	sc      *Scenario
	modTime time.Time
}

func NewStore(dir string) *Store {
	return &Store{
		dir:   dir,
		cache: make(map[string]cachedScenario),
	}
}

// Dir returns the directory this store reads from.
func (s *Store) Dir() string { return s.dir }

// List returns all *.json scenarios in the store directory.
func (s *Store) List() ([]Info, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario dir: %w", err)
	}
	out := make([]Info, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		id := strings.TrimSuffix(e.Name(), ".json")
		sc, err := s.Get(id)
		if err != nil {
			// Skip unparseable files rather than failing the whole listing.
			continue
		}
		out = append(out, Info{
			ID:          id,
			Name:        sc.Name,
			Description: sc.Description,
			File:        e.Name(),
			Teams:       len(sc.Teams),
		})
	}
	return out, nil
}

// Get loads one scenario by id (file name without the .json suffix).
func (s *Store) Get(id string) (*Scenario, error) {
	if strings.ContainsAny(id, `/\`) {
		return nil, fmt.Errorf("invalid scenario id %q", id)
	}
	path := filepath.Join(s.dir, id+".json")
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", id, err)
	}

	s.mu.RLock()
	entry, ok := s.cache[id]
	s.mu.RUnlock()
	if ok && entry.modTime.Equal(fi.ModTime()) {
		return entry.sc, nil
	}

	sc, err := Load(path)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.cache[id] = cachedScenario{sc: sc, modTime: fi.ModTime()}
	s.mu.Unlock()
	return sc, nil
}
