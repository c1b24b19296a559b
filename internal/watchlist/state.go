package watchlist

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Entry tracks per-symbol bookkeeping for a watched symbol.
type Entry struct {
	AddedAt        time.Time `json:"added_at"`
	LastAnalyzedAt time.Time `json:"last_analyzed_at"`
	LastScore      float64   `json:"last_score"`
	LastRating     string    `json:"last_rating"`
}

// State is the persisted watchlist contents.
type State struct {
	Symbols   map[string]Entry `json:"symbols"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// LoadState reads the watchlist from a JSON file. Returns an empty state if
// the file doesn't exist.
func LoadState(filePath string) (*State, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return &State{Symbols: map[string]Entry{}}, nil
		}
		return nil, err
	}
	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	if state.Symbols == nil {
		state.Symbols = map[string]Entry{}
	}
	return &state, nil
}

// SaveState writes the watchlist to a JSON file, creating the parent
// directory if needed.
func SaveState(filePath string, state *State) error {
	state.UpdatedAt = time.Now()
	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, data, 0644)
}
