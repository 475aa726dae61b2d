// Package freq counts how often each remote branch was picked.
//
// Counts only bias the order in which branches are offered; they never gate
// any repository operation.
package freq

import (
	"errors"
	"os"
	"path/filepath"
	"sort"

	"github.com/raphi011/gp/internal/storage"
)

// FileName is the store's file name inside the repository's git directory.
const FileName = "branch-picker-freq.json"

// Store is a persisted branch -> pick count map.
type Store struct {
	Counts map[string]int `json:"counts"`

	path    string
	pending map[string]int
}

// DefaultPath returns the store location for a repository whose common git
// directory is gitDir.
func DefaultPath(gitDir string) string {
	return filepath.Join(gitDir, FileName)
}

// Load reads the store at path. A missing file yields an empty store.
func Load(path string) (*Store, error) {
	s := &Store{Counts: map[string]int{}, path: path}
	if err := storage.LoadJSON(path, s); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return &Store{Counts: map[string]int{}, path: path}, err
	}
	if s.Counts == nil {
		s.Counts = map[string]int{}
	}
	return s, nil
}

// Count returns how often branch was picked.
func (s *Store) Count(branch string) int {
	return s.Counts[branch]
}

// Increment records one pick of branch.
func (s *Store) Increment(branch string) {
	s.Counts[branch]++
	if s.pending == nil {
		s.pending = map[string]int{}
	}
	s.pending[branch]++
}

// Persist adds the picks recorded since Load to the counts on disk, read and
// written under the store's lock file.
func (s *Store) Persist() error {
	var onDisk Store
	err := storage.UpdateJSON(s.path, &onDisk, func(d *Store) {
		if d.Counts == nil {
			d.Counts = map[string]int{}
		}
		for branch, n := range s.pending {
			d.Counts[branch] += n
		}
	})
	if err != nil {
		return err
	}
	s.Counts = onDisk.Counts
	s.pending = nil
	return nil
}

// Path returns the backing file.
func (s *Store) Path() string {
	return s.path
}

// Rank orders branches by count descending, then name ascending.
func Rank(branches []string, count func(string) int) {
	sort.SliceStable(branches, func(i, j int) bool {
		ci, cj := count(branches[i]), count(branches[j])
		if ci != cj {
			return ci > cj
		}
		return branches[i] < branches[j]
	})
}
