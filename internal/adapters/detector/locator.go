// Package detector determines which engine generation is active in the current process.
package detector

import (
	"slices"
	"sync"
)

// Locator looks for a marker symbol in one part of the environment.
type Locator interface {
	// Lookup reports whether symbol is present and, if so, where it was found.
	Lookup(symbol string) (source string, ok bool)
}

// SymbolTable is the set of engine symbols loaded into this process.
// Engine integrations register their public marker names on start-up.
type SymbolTable struct {
	mu      sync.RWMutex
	symbols map[string]struct{}
}

// NewSymbolTable returns a table holding symbols.
func NewSymbolTable(symbols ...string) *SymbolTable {
	t := &SymbolTable{symbols: make(map[string]struct{}, len(symbols))}
	t.Register(symbols...)
	return t
}

// Register adds symbols to the table.
func (t *SymbolTable) Register(symbols ...string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, s := range symbols {
		if s != "" {
			t.symbols[s] = struct{}{}
		}
	}
}

// Symbols returns the registered symbols in sorted order.
func (t *SymbolTable) Symbols() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]string, 0, len(t.symbols))
	for s := range t.symbols {
		out = append(out, s)
	}
	slices.Sort(out)
	return out
}

// Lookup implements Locator.
func (t *SymbolTable) Lookup(symbol string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if _, ok := t.symbols[symbol]; ok {
		return "symbol table", true
	}
	return "", false
}

// AnyLocator reports the first child locator that finds the symbol.
type AnyLocator []Locator

// Lookup implements Locator.
func (p AnyLocator) Lookup(symbol string) (string, bool) {
	for _, locator := range p {
		if locator == nil {
			continue
		}
		if source, ok := locator.Lookup(symbol); ok {
			return source, true
		}
	}
	return "", false
}
