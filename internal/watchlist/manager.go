package watchlist

import (
	"log"
	"sort"
	"strings"
	"sync"
	"time"
)

// Manager handles the watched-symbol set with concurrency safety.
type Manager struct {
	mu       sync.Mutex
	state    *State
	filePath string
}

// NewManager creates a Manager, loading or initializing state from disk.
// Any defaultSymbols not already present are added.
func NewManager(filePath string, defaultSymbols []string) (*Manager, error) {
	state, err := LoadState(filePath)
	if err != nil {
		return nil, err
	}

	m := &Manager{state: state, filePath: filePath}
	for _, sym := range defaultSymbols {
		sym = normalize(sym)
		if sym == "" {
			continue
		}
		if _, ok := state.Symbols[sym]; !ok {
			state.Symbols[sym] = Entry{AddedAt: time.Now()}
		}
	}
	if err := m.save(); err != nil {
		return nil, err
	}
	return m, nil
}

func normalize(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// Add puts a symbol on the watchlist. Returns false if it was already there.
func (m *Manager) Add(symbol string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	symbol = normalize(symbol)
	if _, ok := m.state.Symbols[symbol]; ok {
		return false
	}
	m.state.Symbols[symbol] = Entry{AddedAt: time.Now()}
	if err := m.save(); err != nil {
		log.Printf("[ERROR] failed to save watchlist: %v", err)
	}
	return true
}

// Remove drops a symbol from the watchlist. Returns false if it wasn't there.
func (m *Manager) Remove(symbol string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	symbol = normalize(symbol)
	if _, ok := m.state.Symbols[symbol]; !ok {
		return false
	}
	delete(m.state.Symbols, symbol)
	if err := m.save(); err != nil {
		log.Printf("[ERROR] failed to save watchlist: %v", err)
	}
	return true
}

// Symbols returns the watched symbols in sorted order.
func (m *Manager) Symbols() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	symbols := make([]string, 0, len(m.state.Symbols))
	for sym := range m.state.Symbols {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)
	return symbols
}

// Get returns the entry for a symbol.
func (m *Manager) Get(symbol string) (Entry, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.state.Symbols[normalize(symbol)]
	return e, ok
}

// MarkAnalyzed records the outcome of an analysis pass for a symbol.
func (m *Manager) MarkAnalyzed(symbol string, score float64, rating string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	symbol = normalize(symbol)
	e, ok := m.state.Symbols[symbol]
	if !ok {
		return
	}
	e.LastAnalyzedAt = time.Now()
	e.LastScore = score
	e.LastRating = rating
	m.state.Symbols[symbol] = e

	if err := m.save(); err != nil {
		log.Printf("[ERROR] failed to save watchlist: %v", err)
	}
}

func (m *Manager) save() error {
	return SaveState(m.filePath, m.state)
}
