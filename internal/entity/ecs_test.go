package entity

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"

	"master-quest/internal/component"
)

func TestNewEntityIDsAreUniqueAndNonZero(t *testing.T) {
	ecs := NewECS()
	a := ecs.NewEntity()
	b := ecs.NewEntity()
	assert.NotZero(t, a)
	assert.NotEqual(t, a, b)
}

func TestRemoveDropsAllComponents(t *testing.T) {
	ecs := NewECS()
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{Current: mgl64.Vec3{1, 2, 3}}
	ecs.Healths[id] = &component.Health{Value: 5, Max: 5}
	ecs.Cooldowns[id] = &component.Cooldowns{Remaining: map[string]int{"x": 3}}

	assert.True(t, ecs.Exists(id))
	ecs.Remove(id)
	assert.False(t, ecs.Exists(id))
	assert.NotContains(t, ecs.Healths, id)
	assert.NotContains(t, ecs.Cooldowns, id)
}
