// Package registry replaces load-order registration with an explicit
// registry that hands back stable handles.
package registry

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"master-quest/internal/config"
)

// Kind separates the registries the host keeps.
type Kind string

const (
	KindItem       Kind = "item"
	KindEntityType Kind = "entity_type"
	KindRenderer   Kind = "entity_renderer"
	KindTexture    Kind = "texture"
)

// DefaultNamespace is used for locations written without one.
const DefaultNamespace = "minecraft"

// Location is a namespaced identifier such as "l1nks-master-quest:master_sword".
type Location struct {
	Namespace string
	Path      string
}

func (l Location) String() string {
	return l.Namespace + ":" + l.Path
}

// ID builds a location in the mod's namespace.
func ID(path string) Location {
	return Location{Namespace: config.ModID, Path: path}
}

// ParseLocation parses "namespace:path", defaulting the namespace.
func ParseLocation(s string) (Location, error) {
	ns, path, found := strings.Cut(s, ":")
	if !found {
		ns, path = DefaultNamespace, s
	}
	if ns == "" || path == "" {
		return Location{}, errors.Errorf("invalid resource location %q", s)
	}
	return Location{Namespace: ns, Path: path}, nil
}

// Handle identifies a registered entry. UUIDs are derived from the kind and
// location so they are the same on every run.
type Handle struct {
	Kind     Kind
	Location Location
	UUID     uuid.UUID
}

func (h Handle) String() string {
	return string(h.Kind) + "/" + h.Location.String()
}

type entry struct {
	handle Handle
	value  interface{}
}

// Registry stores registered values per kind plus creative tab ordering.
type Registry struct {
	entries map[Kind]map[Location]entry
	tabs    map[Location][]Location
	logger  *slog.Logger
}

// New returns an empty registry.
func New(logger *slog.Logger) *Registry {
	return &Registry{
		entries: make(map[Kind]map[Location]entry),
		tabs:    make(map[Location][]Location),
		logger:  logger,
	}
}

// Register adds value under loc. Registering the same location twice for a
// kind is an error.
func (r *Registry) Register(kind Kind, loc Location, value interface{}) (Handle, error) {
	byLoc, ok := r.entries[kind]
	if !ok {
		byLoc = make(map[Location]entry)
		r.entries[kind] = byLoc
	}
	if _, dup := byLoc[loc]; dup {
		return Handle{}, errors.Errorf("%s %s is already registered", kind, loc)
	}

	h := Handle{
		Kind:     kind,
		Location: loc,
		UUID:     uuid.NewSHA1(uuid.NameSpaceURL, []byte(string(kind)+"/"+loc.String())),
	}
	byLoc[loc] = entry{handle: h, value: value}
	r.logger.Info("registered", "kind", kind, "id", loc.String())
	return h, nil
}

// Lookup returns the value registered under loc.
func (r *Registry) Lookup(kind Kind, loc Location) (interface{}, bool) {
	e, ok := r.entries[kind][loc]
	return e.value, ok
}

// MustLookup is Lookup for entries that are known to exist. It panics
// otherwise.
func (r *Registry) MustLookup(kind Kind, loc Location) interface{} {
	v, ok := r.Lookup(kind, loc)
	if !ok {
		panic(errors.Errorf("%s %s is not registered", kind, loc))
	}
	return v
}

// Handle returns the handle registered under loc.
func (r *Registry) Handle(kind Kind, loc Location) (Handle, bool) {
	e, ok := r.entries[kind][loc]
	return e.handle, ok
}

// Handles lists every handle of a kind, sorted by location.
func (r *Registry) Handles(kind Kind) []Handle {
	out := make([]Handle, 0, len(r.entries[kind]))
	for _, e := range r.entries[kind] {
		out = append(out, e.handle)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Location.String() < out[j].Location.String()
	})
	return out
}

// AddToTab places item right after the anchor in a creative tab, or at the
// end when the anchor is not in the tab.
func (r *Registry) AddToTab(tab, after, item Location) {
	entries := r.tabs[tab]
	for i, loc := range entries {
		if loc == after {
			entries = append(entries[:i+1], append([]Location{item}, entries[i+1:]...)...)
			r.tabs[tab] = entries
			return
		}
	}
	r.tabs[tab] = append(entries, item)
}

// Tab returns the ordered contents of a creative tab.
func (r *Registry) Tab(tab Location) []Location {
	return append([]Location(nil), r.tabs[tab]...)
}
