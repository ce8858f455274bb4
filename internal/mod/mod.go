// Package mod registers the Master Sword content with the host.
package mod

import (
	"image"
	"log/slog"

	"github.com/pkg/errors"

	"master-quest/internal/assets"
	"master-quest/internal/config"
	"master-quest/internal/defs"
	"master-quest/internal/item"
	"master-quest/internal/projectile"
	"master-quest/internal/registry"
	"master-quest/internal/render"
)

// Content is what common initialisation registered.
type Content struct {
	Sword       *item.MasterSword
	SwordHandle registry.Handle
	BeamType    defs.EntityTypeDefinition
	BeamHandle  registry.Handle
}

// Initialize registers the beam entity type and the sword, then places the
// sword in its creative tab. It runs once on both sides.
func Initialize(reg *registry.Registry, lib *defs.Library, rng projectile.Gaussian, logger *slog.Logger) (*Content, error) {
	if err := lib.Validate(); err != nil {
		return nil, errors.Wrap(err, "validate definitions")
	}

	beamType, ok := lib.EntityType(config.BeamEntityID)
	if !ok {
		return nil, errors.Errorf("entity type %q is not defined", config.BeamEntityID)
	}
	swordDef, ok := lib.Item(config.SwordID)
	if !ok {
		return nil, errors.Errorf("item %q is not defined", config.SwordID)
	}
	tier, _ := lib.Tier(swordDef.Tier)

	c := &Content{
		Sword:    item.NewMasterSword(swordDef, tier, rng, logger),
		BeamType: beamType,
	}

	var err error
	if c.BeamHandle, err = reg.Register(registry.KindEntityType, registry.ID(beamType.ID), beamType); err != nil {
		return nil, err
	}
	if c.SwordHandle, err = reg.Register(registry.KindItem, registry.ID(swordDef.ID), c.Sword); err != nil {
		return nil, err
	}

	if swordDef.CreativeTab != "" {
		tab, err := registry.ParseLocation(swordDef.CreativeTab)
		if err != nil {
			return nil, errors.Wrap(err, "creative tab")
		}
		after, err := registry.ParseLocation(swordDef.TabAfter)
		if err != nil {
			return nil, errors.Wrap(err, "creative tab anchor")
		}
		reg.AddToTab(tab, after, c.SwordHandle.Location)
	}

	logger.Info("mod initialised", "mod", config.ModID)
	return c, nil
}

// TextureSource paints a texture when no file on disk overrides it.
type TextureSource func() image.Image

// InitializeClient binds the beam renderer to the beam entity type and
// registers the generated beam texture under the renderer's texture path.
// It must run after Initialize.
func InitializeClient(reg *registry.Registry, renderer *render.BeamRenderer) (registry.Handle, error) {
	loc := registry.ID(config.BeamEntityID)
	if _, ok := reg.Handle(registry.KindEntityType, loc); !ok {
		return registry.Handle{}, errors.Errorf("renderer for unregistered entity type %s", loc)
	}
	h, err := reg.Register(registry.KindRenderer, loc, renderer)
	if err != nil {
		return registry.Handle{}, err
	}
	beamTexture := TextureSource(func() image.Image {
		return assets.GenerateBeamTexture(assets.BeamTextureWidth, assets.BeamTextureHeight)
	})
	if _, err := reg.Register(registry.KindTexture, registry.ID(renderer.Texture), beamTexture); err != nil {
		return registry.Handle{}, errors.Wrap(err, "beam texture")
	}
	return h, nil
}

// Renderer looks up the renderer bound to an entity type.
func Renderer(reg *registry.Registry, entityType registry.Location) (*render.BeamRenderer, bool) {
	v, ok := reg.Lookup(registry.KindRenderer, entityType)
	if !ok {
		return nil, false
	}
	r, ok := v.(*render.BeamRenderer)
	return r, ok
}

// Texture looks up the generator registered for a texture path.
func Texture(reg *registry.Registry, path string) (TextureSource, bool) {
	v, ok := reg.Lookup(registry.KindTexture, registry.ID(path))
	if !ok {
		return nil, false
	}
	src, ok := v.(TextureSource)
	return src, ok
}
