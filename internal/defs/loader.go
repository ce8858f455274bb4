// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

const (
	ItemsFile       = "items.json"
	EntityTypesFile = "entities.json"
	TiersFile       = "tiers.json"
)

// Library holds every definition the mod registers, keyed by ID.
type Library struct {
	Items       map[string]ItemDefinition
	EntityTypes map[string]EntityTypeDefinition
	Tiers       map[string]Tier
}

// NewLibrary returns a library populated with the built-in definitions.
func NewLibrary() *Library {
	lib := &Library{
		Items:       make(map[string]ItemDefinition),
		EntityTypes: make(map[string]EntityTypeDefinition),
		Tiers:       make(map[string]Tier),
	}
	for _, t := range DefaultTiers() {
		lib.Tiers[t.ID] = t
	}
	for _, def := range DefaultItems() {
		lib.Items[def.ID] = def
	}
	for _, def := range DefaultEntityTypes() {
		lib.EntityTypes[def.ID] = def
	}
	return lib
}

// LoadDir overrides built-in definitions with the JSON files found in dir.
// Missing files are skipped; malformed ones fail the whole load.
func (l *Library) LoadDir(dir string) error {
	var tiers []Tier
	if err := readJSON(filepath.Join(dir, TiersFile), &tiers); err != nil {
		return err
	}
	for _, t := range tiers {
		l.Tiers[t.ID] = t
	}

	var items []ItemDefinition
	if err := readJSON(filepath.Join(dir, ItemsFile), &items); err != nil {
		return err
	}
	for _, def := range items {
		l.Items[def.ID] = def
	}

	var entityTypes []EntityTypeDefinition
	if err := readJSON(filepath.Join(dir, EntityTypesFile), &entityTypes); err != nil {
		return err
	}
	for _, def := range entityTypes {
		l.EntityTypes[def.ID] = def
	}

	return l.Validate()
}

// Validate checks cross references between definitions.
func (l *Library) Validate() error {
	for id, item := range l.Items {
		if _, ok := l.Tiers[item.Tier]; !ok {
			return errors.Errorf("item %q references unknown tier %q", id, item.Tier)
		}
		if item.Activation == nil {
			continue
		}
		if _, ok := l.EntityTypes[item.Activation.Entity]; !ok {
			return errors.Errorf("item %q fires unknown entity type %q", id, item.Activation.Entity)
		}
	}
	for id, et := range l.EntityTypes {
		if et.Width <= 0 || et.Height <= 0 {
			return errors.Errorf("entity type %q has an empty hitbox", id)
		}
	}
	return nil
}

// Item returns the item definition with the given ID.
func (l *Library) Item(id string) (ItemDefinition, bool) {
	def, ok := l.Items[id]
	return def, ok
}

// EntityType returns the entity type definition with the given ID.
func (l *Library) EntityType(id string) (EntityTypeDefinition, bool) {
	def, ok := l.EntityTypes[id]
	return def, ok
}

// Tier returns the tier with the given ID.
func (l *Library) Tier(id string) (Tier, bool) {
	t, ok := l.Tiers[id]
	return t, ok
}

func readJSON(path string, v interface{}) error {
	file, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "failed to read definitions file %s", path)
	}
	if err := json.Unmarshal(file, v); err != nil {
		return errors.Wrapf(err, "failed to unmarshal definitions file %s", path)
	}
	return nil
}
