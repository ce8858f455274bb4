package mod

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"master-quest/internal/config"
	"master-quest/internal/defs"
	"master-quest/internal/registry"
	"master-quest/internal/render"
)

func quiet() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func vanillaCombat(reg *registry.Registry) registry.Location {
	tab, _ := registry.ParseLocation(config.CombatTab)
	for _, p := range []string{"diamond_sword", "netherite_sword", "wooden_axe"} {
		reg.AddToTab(tab, registry.Location{}, registry.Location{Namespace: "minecraft", Path: p})
	}
	return tab
}

func TestInitializeRegistersContent(t *testing.T) {
	reg := registry.New(quiet())
	tab := vanillaCombat(reg)

	c, err := Initialize(reg, defs.NewLibrary(), nil, quiet())
	require.NoError(t, err)

	assert.Equal(t, "l1nks-master-quest:master_sword", c.SwordHandle.Location.String())
	assert.Equal(t, "l1nks-master-quest:master_sword_beam", c.BeamHandle.Location.String())
	assert.Equal(t, defs.CategoryMisc, c.BeamType.Category)
	assert.False(t, c.BeamType.Persistent)

	v, ok := reg.Lookup(registry.KindItem, c.SwordHandle.Location)
	require.True(t, ok)
	assert.Same(t, c.Sword, v)

	entries := reg.Tab(tab)
	require.Len(t, entries, 4)
	assert.Equal(t, "minecraft:netherite_sword", entries[1].String())
	assert.Equal(t, c.SwordHandle.Location, entries[2])
}

func TestInitializeTwiceFails(t *testing.T) {
	reg := registry.New(quiet())
	_, err := Initialize(reg, defs.NewLibrary(), nil, quiet())
	require.NoError(t, err)
	_, err = Initialize(reg, defs.NewLibrary(), nil, quiet())
	assert.Error(t, err)
}

func TestInitializeClient(t *testing.T) {
	reg := registry.New(quiet())
	r := render.NewBeamRenderer(config.BeamTexture)

	_, err := InitializeClient(reg, r)
	assert.Error(t, err, "common init must run first")

	_, err = Initialize(reg, defs.NewLibrary(), nil, quiet())
	require.NoError(t, err)
	h, err := InitializeClient(reg, r)
	require.NoError(t, err)
	assert.Equal(t, registry.KindRenderer, h.Kind)

	got, ok := Renderer(reg, registry.ID(config.BeamEntityID))
	require.True(t, ok)
	assert.Same(t, r, got)

	tex, ok := Texture(reg, config.BeamTexture)
	require.True(t, ok)
	img := tex()
	assert.Equal(t, 16, img.Bounds().Dx())
	assert.Equal(t, 64, img.Bounds().Dy())

	_, ok = Texture(reg, "textures/entity/missing.png")
	assert.False(t, ok)
}

func TestInitializeRejectsBrokenDefinitions(t *testing.T) {
	lib := defs.NewLibrary()
	sword := lib.Items[config.SwordID]
	sword.Tier = "MITHRIL"
	lib.Items[config.SwordID] = sword

	_, err := Initialize(registry.New(quiet()), lib, nil, quiet())
	assert.Error(t, err)
}
