// Package provider holds plumbing shared by every external dictionary source:
// the parser strategy registry and the HTTP fetch helpers.
package provider

import (
	"fmt"
	"sort"
	"sync"

	"github.com/heartmarshall/zhdict/internal/domain"
)

// SchemaVersion identifies one revision of a source's response shape.
type SchemaVersion int

// ParserKey selects a parser strategy for one word type and schema revision.
type ParserKey struct {
	Type    domain.WordType
	Version SchemaVersion
}

func (k ParserKey) String() string {
	return fmt.Sprintf("%s/v%d", k.Type, k.Version)
}

// ParseFunc turns a raw payload into a normalized entry. It must be pure.
type ParseFunc func(payload []byte) (domain.Entry, error)

// Registry maps parser keys to strategies. Safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	parsers map[ParserKey]ParseFunc
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[ParserKey]ParseFunc)}
}

// Register adds a strategy. Registering the same key twice panics.
func (r *Registry) Register(key ParserKey, fn ParseFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.parsers[key]; dup {
		panic("provider: parser registered twice: " + key.String())
	}
	r.parsers[key] = fn
}

// Lookup returns the strategy for key.
func (r *Registry) Lookup(key ParserKey) (ParseFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.parsers[key]
	return fn, ok
}

// Versions lists the registered versions for a word type in ascending order.
func (r *Registry) Versions(t domain.WordType) []SchemaVersion {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []SchemaVersion
	for k := range r.parsers {
		if k.Type == t {
			out = append(out, k.Version)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
