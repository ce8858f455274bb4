// internal/app/world.go
package app

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"

	"master-quest/internal/component"
	"master-quest/internal/config"
	"master-quest/internal/defs"
	"master-quest/internal/entity"
	"master-quest/internal/event"
	"master-quest/internal/interfaces"
	"master-quest/internal/projectile"
	"master-quest/internal/system"
	"master-quest/internal/types"
)

const damageFlashTicks = 4

// SoundPlayer - вывод звука. Настоящий - audio.SoundManager.
type SoundPlayer interface {
	Play(id string, volume, pitch float64) bool
}

type silence struct{}

func (silence) Play(string, float64, float64) bool { return false }

// World выполняет запросы мода над ECS.
type World struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	sounds          SoundPlayer
	effects         *system.VisualEffectSystem
	beamType        defs.EntityTypeDefinition
	logger          *slog.Logger
}

var _ interfaces.World = (*World)(nil)

func NewWorld(ecs *entity.ECS, d *event.Dispatcher, sounds SoundPlayer, effects *system.VisualEffectSystem, beamType defs.EntityTypeDefinition, logger *slog.Logger) *World {
	if sounds == nil {
		sounds = silence{}
	}
	return &World{
		ecs:             ecs,
		eventDispatcher: d,
		sounds:          sounds,
		effects:         effects,
		beamType:        beamType,
		logger:          logger,
	}
}

// Spawn добавляет сущность луча с размерами зарегистрированного типа.
func (w *World) Spawn(beam *projectile.Beam) types.EntityID {
	id := w.ecs.NewEntity()
	w.ecs.Positions[id] = &component.Position{Current: beam.Position, Prev: beam.PrevPosition}
	w.ecs.Rotations[id] = &component.Rotation{Yaw: beam.Yaw, Pitch: beam.Pitch}
	w.ecs.Colliders[id] = &component.Collider{Width: w.beamType.Width, Height: w.beamType.Height}
	w.ecs.Projectiles[id] = &component.Projectile{Beam: beam}

	w.eventDispatcher.Dispatch(event.Event{Type: event.BeamFired, Data: event.BeamData{
		Beam:  id,
		Owner: beam.Owner().ID,
		At:    beam.Position,
	}})
	return id
}

func (w *World) Remove(id types.EntityID) {
	w.ecs.Remove(id)
}

// ApplyDamage ранит живую сущность. Мертвые и отсутствующие цели игнорируются.
func (w *World) ApplyDamage(target types.EntityID, amount float64, source interfaces.DamageSource) {
	h, ok := w.ecs.Healths[target]
	if !ok || h.Dead() {
		return
	}
	h.Value = max(0, h.Value-amount)
	w.ecs.DamageFlashes[target] = &component.DamageFlash{Ticks: damageFlashTicks}

	w.eventDispatcher.Dispatch(event.Event{Type: event.DamageApplied, Data: event.DamageData{
		Target:   target,
		Attacker: source.Attacker,
		Amount:   amount,
		Kind:     source.Kind,
		Health:   h.Value,
	}})
	if h.Dead() {
		w.eventDispatcher.Dispatch(event.Event{Type: event.EntityKilled, Data: event.KilledData{
			Entity: target,
			Killer: source.Attacker,
		}})
	}
	if _, isPlayer := w.ecs.Players[target]; isPlayer {
		if pos, ok := w.ecs.Positions[target]; ok {
			w.PlaySound(pos.Current, config.SoundPlayerHurt, 1, 1)
		}
	}
}

func (w *World) PlaySound(at mgl64.Vec3, sound string, volume, pitch float64) {
	w.sounds.Play(sound, volume, pitch)
	w.eventDispatcher.Dispatch(event.Event{Type: event.SoundPlayed, Data: event.SoundData{
		At:     at,
		ID:     sound,
		Volume: volume,
		Pitch:  pitch,
	}})
}

func (w *World) EmitParticles(burst projectile.ParticleBurst) {
	w.effects.Emit(burst)
	w.eventDispatcher.Dispatch(event.Event{Type: event.ParticlesEmitted, Data: event.ParticlesData{
		At:    burst.At,
		Kind:  burst.Kind,
		Count: burst.Count,
	}})
}

func (w *World) StartCooldown(actor types.EntityID, item string, ticks int) {
	cd, ok := w.ecs.Cooldowns[actor]
	if !ok {
		cd = &component.Cooldowns{Remaining: make(map[string]int)}
		w.ecs.Cooldowns[actor] = cd
	}
	cd.Remaining[item] = ticks
	w.eventDispatcher.Dispatch(event.Event{Type: event.CooldownStarted, Data: event.CooldownData{
		Actor: actor,
		Item:  item,
		Ticks: ticks,
	}})
}

// wielder показывает сущность игрока предметам.
type wielder struct {
	ecs *entity.ECS
	id  types.EntityID
}

var _ interfaces.Wielder = wielder{}

func (w wielder) ID() types.EntityID { return w.id }

func (w wielder) Position() mgl64.Vec3 {
	if pos, ok := w.ecs.Positions[w.id]; ok {
		return pos.Current
	}
	return mgl64.Vec3{}
}

func (w wielder) EyeY() float64 {
	eye := 0.0
	if p, ok := w.ecs.Players[w.id]; ok {
		eye = p.EyeHeight
	}
	return w.Position().Y() + eye
}

func (w wielder) Pitch() float64 {
	if r, ok := w.ecs.Rotations[w.id]; ok {
		return r.Pitch
	}
	return 0
}

func (w wielder) Yaw() float64 {
	if r, ok := w.ecs.Rotations[w.id]; ok {
		return r.Yaw
	}
	return 0
}

func (w wielder) Health() float64 {
	if h, ok := w.ecs.Healths[w.id]; ok {
		return h.Value
	}
	return 0
}

func (w wielder) MaxHealth() float64 {
	if h, ok := w.ecs.Healths[w.id]; ok {
		return h.Max
	}
	return 0
}

func (w wielder) Combatant() bool {
	p, ok := w.ecs.Players[w.id]
	return ok && p.Combatant
}
