package core

import "sync"

// SymbolTable interns labels to dense Symbol ids. Id 0 is always Epsilon.
// Safe for concurrent use.
type SymbolTable struct {
	mu    sync.RWMutex
	ids   map[string]Symbol
	names []string
}

// NewSymbolTable returns a table containing only EpsilonName.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		ids:   map[string]Symbol{EpsilonName: Epsilon},
		names: []string{EpsilonName},
	}
}

// Intern returns the id of name, assigning the next free id on first use.
func (t *SymbolTable) Intern(name string) Symbol {
	t.mu.RLock()
	id, ok := t.ids[name]
	t.mu.RUnlock()
	if ok {
		return id
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	// Another writer may have interned it between the two locks.
	if id, ok = t.ids[name]; ok {
		return id
	}
	id = Symbol(len(t.names))
	t.ids[name] = id
	t.names = append(t.names, name)

	return id
}

// Lookup returns the id of name without interning it.
func (t *SymbolTable) Lookup(name string) (Symbol, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	id, ok := t.ids[name]

	return id, ok
}

// Name returns the label interned as sym.
func (t *SymbolTable) Name(sym Symbol) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if sym < 0 || int(sym) >= len(t.names) {
		return "", false
	}

	return t.names[sym], true
}

// Len returns the number of interned symbols, Epsilon included.
func (t *SymbolTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.names)
}
