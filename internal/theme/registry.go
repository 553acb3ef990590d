package theme

import (
	"slices"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"scopestyle/internal/debug"
)

// DefaultRegistryCapacity bounds the process-wide registry.
const DefaultRegistryCapacity = 64

// Registry caches Themes by document uuid. The first document seen for a
// uuid wins: later documents with the same uuid get the cached Theme even if
// their content differs. The registry is bounded; the least recently used
// theme is evicted once capacity is exceeded, and a later lookup parses the
// document again into a new Theme.
type Registry struct {
	themes   *lru.Cache[string, *Theme]
	inflight singleflight.Group
	fontName string
	fontSize float64
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithFont sets the font given to themes the registry creates.
func WithFont(name string, size float64) RegistryOption {
	return func(r *Registry) {
		r.fontName = name
		r.fontSize = size
	}
}

// NewRegistry creates a registry holding at most capacity themes. A
// non-positive capacity selects DefaultRegistryCapacity.
func NewRegistry(capacity int, opts ...RegistryOption) *Registry {
	if capacity <= 0 {
		capacity = DefaultRegistryCapacity
	}
	r := &Registry{}
	for _, opt := range opts {
		opt(r)
	}
	themes, err := lru.NewWithEvict(capacity, func(uuid string, t *Theme) {
		debug.Logf("theme registry: evicted %s (%q)", uuid, t.Name())
	})
	if err != nil {
		// Only reachable with a non-positive size, which is normalised above.
		panic(err)
	}
	r.themes = themes
	return r
}

// GetOrCreate returns the theme registered under doc's uuid, parsing and
// registering doc on first sight. Concurrent first lookups for one uuid
// construct a single Theme. Invalid documents are never registered.
func (r *Registry) GetOrCreate(doc Document) (*Theme, error) {
	uuid := strings.TrimSpace(doc.UUID)
	if uuid == "" {
		return nil, invalidThemeError("missing uuid")
	}
	if t, ok := r.themes.Get(uuid); ok {
		return t, nil
	}

	v, err, _ := r.inflight.Do(uuid, func() (any, error) {
		if t, ok := r.themes.Get(uuid); ok {
			return t, nil
		}
		t, err := New(doc, r.fontName, r.fontSize)
		if err != nil {
			return nil, err
		}
		r.themes.Add(uuid, t)
		debug.Logf("theme registry: registered %s (%q), %d cached", uuid, t.Name(), r.themes.Len())
		return t, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Theme), nil
}

// Get returns a registered theme without parsing anything.
func (r *Registry) Get(uuid string) (*Theme, bool) {
	return r.themes.Get(strings.TrimSpace(uuid))
}

// Len returns the number of registered themes.
func (r *Registry) Len() int {
	return r.themes.Len()
}

// UUIDs returns the registered uuids in sorted order.
func (r *Registry) UUIDs() []string {
	keys := r.themes.Keys()
	slices.Sort(keys)
	return keys
}

// Purge drops every registered theme.
func (r *Registry) Purge() {
	r.themes.Purge()
}

var defaultRegistry = NewRegistry(DefaultRegistryCapacity)

// DefaultRegistry returns the process-wide registry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// GetOrCreate looks doc up in the process-wide registry.
func GetOrCreate(doc Document) (*Theme, error) {
	return defaultRegistry.GetOrCreate(doc)
}
