package item_test

import (
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"master-quest/internal/config"
	"master-quest/internal/defs"
	"master-quest/internal/interfaces/mocks"
	"master-quest/internal/item"
	"master-quest/internal/projectile"
	"master-quest/internal/types"
)

const player types.EntityID = 7

func newSword(t *testing.T) *item.MasterSword {
	t.Helper()
	lib := defs.NewLibrary()
	def, ok := lib.Item(config.SwordID)
	require.True(t, ok)
	tier, ok := lib.Tier(def.Tier)
	require.True(t, ok)
	return item.NewMasterSword(def, tier, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func assertVecNear(t *testing.T, want, got mgl64.Vec3, msgAndArgs ...interface{}) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-9, msgAndArgs...)
	}
}

func newWielder(ctrl *gomock.Controller, health float64) *mocks.MockWielder {
	w := mocks.NewMockWielder(ctrl)
	w.EXPECT().ID().Return(player).AnyTimes()
	w.EXPECT().Health().Return(health).AnyTimes()
	w.EXPECT().MaxHealth().Return(20.0).AnyTimes()
	w.EXPECT().Position().Return(mgl64.Vec3{1, 64, 2}).AnyTimes()
	w.EXPECT().EyeY().Return(65.62).AnyTimes()
	w.EXPECT().Pitch().Return(0.0).AnyTimes()
	w.EXPECT().Yaw().Return(0.0).AnyTimes()
	w.EXPECT().Combatant().Return(true).AnyTimes()
	return w
}

func TestUseFiresAtFullHealthBoundary(t *testing.T) {
	for _, health := range []float64{20.0, 19.0} {
		t.Run(fmt.Sprintf("health %v", health), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			world := mocks.NewMockWorld(ctrl)

			var spawned *projectile.Beam
			gomock.InOrder(
				world.EXPECT().Spawn(gomock.Any()).DoAndReturn(func(b *projectile.Beam) types.EntityID {
					spawned = b
					return 42
				}),
				world.EXPECT().PlaySound(mgl64.Vec3{1, 64, 2}, config.SoundBeamShoot, 0.8, 1.6),
				world.EXPECT().StartCooldown(player, config.SwordID, 20),
			)

			res := newSword(t).Use(newWielder(ctrl, health), world)

			assert.Equal(t, item.Success, res.Outcome)
			assert.True(t, res.Fired, "health %v", health)
			assert.Equal(t, types.EntityID(42), res.Beam)

			require.NotNil(t, spawned)
			assert.Equal(t, projectile.Owner{ID: player, Combatant: true}, spawned.Owner())
			assert.True(t, spawned.NoGravity)
			assert.Equal(t, 0, spawned.Age())
			assertVecNear(t, mgl64.Vec3{1, 65.52, 2}, spawned.Position)
			assert.InDelta(t, 0.75, spawned.Velocity.Len(), 1e-9)
			assert.InDelta(t, 0.75, spawned.Velocity.Z(), 1e-9)
		})
	}
}

func TestUseBelowFullHealthDoesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	world := mocks.NewMockWorld(ctrl)
	// No expectations on world: any call fails the test.

	res := newSword(t).Use(newWielder(ctrl, 20.0-1.01), world)

	assert.Equal(t, item.Success, res.Outcome)
	assert.False(t, res.Fired)
	assert.Equal(t, types.NoEntity, res.Beam)
}

func TestDurabilityOverrides(t *testing.T) {
	s := newSword(t)
	assert.False(t, s.CanBeDepleted())
	assert.False(t, s.HurtEnemy(1, 2))
	assert.False(t, s.MineBlock(mgl64.Vec3{}, 2))
}

func TestAttackAttributes(t *testing.T) {
	s := newSword(t)
	// 1 base + 4 netherite + 5 sword
	assert.Equal(t, 10.0, s.AttackDamage())
	assert.Equal(t, 2.0, s.AttackSpeed())
}

func TestUseWithoutActivationPasses(t *testing.T) {
	ctrl := gomock.NewController(t)
	world := mocks.NewMockWorld(ctrl)
	def := defs.ItemDefinition{ID: "plain_sword", Tier: "IRON"}
	s := item.NewMasterSword(def, defs.Tier{ID: "IRON"}, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	res := s.Use(mocks.NewMockWielder(ctrl), world)
	assert.Equal(t, item.Pass, res.Outcome)
	assert.False(t, res.Fired)
}
