package state

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// PageState represents the last build of a single page
type PageState struct {
	MTime  int64  `json:"mtime"`
	Hash   string `json:"hash"`
	Output string `json:"output"`
}

// State is the build manifest
type State struct {
	BuildID      string                `json:"build_id"`
	LastBuild    time.Time             `json:"last_build"`
	TemplateHash string                `json:"template_hash"`
	Pages        map[string]*PageState `json:"pages"` // source path -> page state
}

// NewState creates a new empty state
func NewState() *State {
	return &State{
		Pages: make(map[string]*PageState),
	}
}

// Load reads state from the state file
func Load(path string) (*State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewState(), nil
		}
		return nil, err
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse state file: %w", err)
	}

	if state.Pages == nil {
		state.Pages = make(map[string]*PageState)
	}

	return &state, nil
}

// Save writes state to the state file
func (s *State) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}

	return nil
}

// ComputeHash computes SHA256 hash of a file
func ComputeHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("sha256:%x", h.Sum(nil)), nil
}

// HasChanged checks if a page source has changed since the last build
// Uses hybrid mtime + hash approach
func (s *State) HasChanged(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}

	page, exists := s.Pages[path]
	if !exists {
		// New page
		return true, nil
	}

	// Fast path: check mtime first
	if info.ModTime().Unix() == page.MTime {
		return false, nil
	}

	// mtime changed, compute hash to check for actual content changes
	hash, err := ComputeHash(path)
	if err != nil {
		return false, err
	}

	return hash != page.Hash, nil
}

// Update records the current mtime and hash of a page source
func (s *State) Update(path, output string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	hash, err := ComputeHash(path)
	if err != nil {
		return err
	}

	s.Pages[path] = &PageState{
		MTime:  info.ModTime().Unix(),
		Hash:   hash,
		Output: output,
	}

	return nil
}

// Forget drops pages whose sources no longer exist in sources
func (s *State) Forget(sources []string) []string {
	keep := make(map[string]bool, len(sources))
	for _, src := range sources {
		keep[src] = true
	}

	var removed []string
	for path := range s.Pages {
		if !keep[path] {
			delete(s.Pages, path)
			removed = append(removed, path)
		}
	}
	return removed
}

// TemplateChanged reports whether the template hash differs from the last build
func (s *State) TemplateChanged(path string) (bool, string, error) {
	hash, err := ComputeHash(path)
	if err != nil {
		return false, "", err
	}
	return hash != s.TemplateHash, hash, nil
}
