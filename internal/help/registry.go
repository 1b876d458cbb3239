package help

import (
	"errors"
	"fmt"

	"github.com/sahilm/fuzzy"
)

// ErrNotFound is reported when a help subject matches no registered topic.
var ErrNotFound = errors.New("no such help topic")

// Topic names one article the registry can build on demand.
type Topic struct {
	Name  string
	Short string
	// Hidden topics are listed only when the caller asks for everything.
	Hidden bool
	Build  func() Article
}

// Registry holds help topics in registration order.
type Registry struct {
	topics []Topic
	index  map[string]int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Add registers t. Re-registering a name replaces the earlier topic in
// place so listing order stays stable.
func (r *Registry) Add(t Topic) {
	if i, ok := r.index[t.Name]; ok {
		r.topics[i] = t
		return
	}
	r.index[t.Name] = len(r.topics)
	r.topics = append(r.topics, t)
}

// Topics returns registered topics in order, skipping hidden ones unless
// all is set.
func (r *Registry) Topics(all bool) []Topic {
	out := make([]Topic, 0, len(r.topics))
	for _, t := range r.topics {
		if t.Hidden && !all {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Resolve returns the topic named name, or an error wrapping ErrNotFound.
func (r *Registry) Resolve(name string) (Topic, error) {
	if i, ok := r.index[name]; ok {
		return r.topics[i], nil
	}
	return Topic{}, fmt.Errorf("%q: %w", name, ErrNotFound)
}

// Suggest returns up to n topic names fuzzy-matching name, best first.
func (r *Registry) Suggest(name string, n int) []string {
	names := make([]string, len(r.topics))
	for i, t := range r.topics {
		names[i] = t.Name
	}
	var out []string
	for _, m := range fuzzy.Find(name, names) {
		out = append(out, m.Str)
		if len(out) == n {
			break
		}
	}
	return out
}
