package registry

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistry() *Registry {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestParseLocation(t *testing.T) {
	loc, err := ParseLocation("minecraft:combat")
	require.NoError(t, err)
	assert.Equal(t, Location{Namespace: "minecraft", Path: "combat"}, loc)

	loc, err = ParseLocation("glow")
	require.NoError(t, err)
	assert.Equal(t, "minecraft:glow", loc.String())

	for _, bad := range []string{"", ":x", "ns:"} {
		_, err := ParseLocation(bad)
		assert.Error(t, err, bad)
	}
}

func TestRegisterAndLookup(t *testing.T) {
	r := newRegistry()
	h, err := r.Register(KindItem, ID("master_sword"), "sword")
	require.NoError(t, err)
	assert.Equal(t, "item/l1nks-master-quest:master_sword", h.String())

	v, ok := r.Lookup(KindItem, ID("master_sword"))
	require.True(t, ok)
	assert.Equal(t, "sword", v)

	_, ok = r.Lookup(KindEntityType, ID("master_sword"))
	assert.False(t, ok, "kinds are separate")

	_, err = r.Register(KindItem, ID("master_sword"), "again")
	assert.Error(t, err)

	assert.Equal(t, "sword", r.MustLookup(KindItem, ID("master_sword")))
	assert.Panics(t, func() { r.MustLookup(KindItem, ID("missing")) })
}

func TestHandlesAreStable(t *testing.T) {
	a, err := newRegistry().Register(KindEntityType, ID("beam"), nil)
	require.NoError(t, err)
	b, err := newRegistry().Register(KindEntityType, ID("beam"), nil)
	require.NoError(t, err)
	c, err := newRegistry().Register(KindItem, ID("beam"), nil)
	require.NoError(t, err)

	assert.Equal(t, a.UUID, b.UUID)
	assert.NotEqual(t, a.UUID, c.UUID)
}

func TestHandlesSorted(t *testing.T) {
	r := newRegistry()
	for _, p := range []string{"c", "a", "b"} {
		_, err := r.Register(KindItem, ID(p), p)
		require.NoError(t, err)
	}
	hs := r.Handles(KindItem)
	require.Len(t, hs, 3)
	assert.Equal(t, "a", hs[0].Location.Path)
	assert.Equal(t, "c", hs[2].Location.Path)
}

func TestAddToTab(t *testing.T) {
	r := newRegistry()
	tab := Location{"minecraft", "combat"}
	anchor := Location{"minecraft", "netherite_sword"}

	r.AddToTab(tab, anchor, ID("orphan"))
	r.AddToTab(tab, Location{}, anchor)
	r.AddToTab(tab, Location{}, Location{"minecraft", "bow"})
	r.AddToTab(tab, anchor, ID("master_sword"))

	got := r.Tab(tab)
	require.Len(t, got, 4)
	assert.Equal(t, ID("orphan"), got[0])
	assert.Equal(t, anchor, got[1])
	assert.Equal(t, ID("master_sword"), got[2])
	assert.Equal(t, "minecraft:bow", got[3].String())
}
