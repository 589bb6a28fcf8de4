package animations

import (
	"fmt"
	"sort"
)

// Registry maps "<type>/<action>" keys to template animations. It is filled
// once at startup and only read afterwards.
type Registry struct {
	templates map[string]*Animation
}

func NewRegistry() *Registry {
	return &Registry{templates: make(map[string]*Animation)}
}

// Register stores a template under key, replacing any previous one.
func (r *Registry) Register(key string, a *Animation) {
	r.templates[key] = a
}

// Has reports whether a template exists for key.
func (r *Registry) Has(key string) bool {
	_, ok := r.templates[key]
	return ok
}

// New returns a fresh playhead copied from the template for key. A missing
// key is a content error and panics.
func (r *Registry) New(key string) *Animation {
	a, ok := r.templates[key]
	if !ok {
		panic(fmt.Sprintf("animations: no animation registered for %q", key))
	}
	return a.Copy()
}

// Keys returns the registered keys in sorted order.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.templates))
	for k := range r.templates {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Key joins an entity type and action into a registry key.
func Key(entityType, action string) string {
	return entityType + "/" + action
}
