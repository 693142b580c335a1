// SPDX-License-Identifier: MIT
// Package: lvsynth/motif
//
// library.go — a name-indexed catalog of motifs.
//
// Contract:
//   • Registered names shadow built-in spec names ("cycle_4" may be overridden).
//   • Resolve falls back to ParseSpec + Build for unregistered references.
//   • Safe for concurrent readers once registration is finished; Register
//     itself is guarded.

package motif

import (
	"fmt"
	"sort"
	"sync"
)

const methodRegister = "Register"

// Library maps names to motifs.
type Library struct {
	mu    sync.RWMutex
	items map[string]*Motif
}

// NewLibrary returns an empty library, optionally pre-filled with ms.
func NewLibrary(ms ...*Motif) (*Library, error) {
	l := &Library{items: make(map[string]*Motif, len(ms))}
	for _, m := range ms {
		if err := l.Register(m); err != nil {
			return nil, err
		}
	}

	return l, nil
}

// Register adds m under m.Name().
//
// Errors:
//   - ErrBadTemplate: nil motif.
//   - ErrDuplicateName: name already registered.
func (l *Library) Register(m *Motif) error {
	if m == nil {
		return fmt.Errorf("%s: nil motif: %w", methodRegister, ErrBadTemplate)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.items[m.Name()]; ok {
		return fmt.Errorf("%s(%s): %w", methodRegister, m.Name(), ErrDuplicateName)
	}
	l.items[m.Name()] = m

	return nil
}

// Lookup returns the motif registered under name.
func (l *Library) Lookup(name string) (*Motif, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	m, ok := l.items[name]

	return m, ok
}

// Names returns every registered name, sorted.
func (l *Library) Names() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]string, 0, len(l.items))
	for n := range l.items {
		out = append(out, n)
	}
	sort.Strings(out)

	return out
}

// Resolve returns the registered motif named ref, or builds the built-in
// kind ref describes ("house", "cycle_4", "triangle").
func (l *Library) Resolve(ref string) (*Motif, error) {
	if m, ok := l.Lookup(ref); ok {
		return m, nil
	}
	spec, err := ParseSpec(ref)
	if err != nil {
		return nil, err
	}

	return Build(spec)
}
