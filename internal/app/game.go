// internal/app/game.go
package app

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"

	"master-quest/internal/component"
	"master-quest/internal/config"
	"master-quest/internal/defs"
	"master-quest/internal/entity"
	"master-quest/internal/event"
	"master-quest/internal/interfaces"
	"master-quest/internal/item"
	"master-quest/internal/mod"
	"master-quest/internal/registry"
	"master-quest/internal/render"
	"master-quest/internal/system"
	"master-quest/internal/types"
	"master-quest/internal/utils"
)

// Options - настройки новой игры.
type Options struct {
	Seed    int64
	DefsDir string // необязательные JSON-переопределения
	Sounds  SoundPlayer
	Logger  *slog.Logger
}

// Game - эталонный хост: владеет ECS и крутит симуляцию с фиксированным
// шагом. Окна у него нет; фронтенды вызывают Update и рисуют из ECS
// с помощью PartialTick.
type Game struct {
	ECS                *entity.ECS
	EventDispatcher    *event.Dispatcher
	Rng                *utils.PRNGService
	Registry           *registry.Registry
	Content            *mod.Content
	World              *World
	CollisionSystem    *system.CollisionSystem
	ProjectileSystem   *system.ProjectileSystem
	MovementSystem     *system.MovementSystem
	VisualEffectSystem *system.VisualEffectSystem
	StatusEffectSystem *system.StatusEffectSystem
	PlayerSystem       *system.PlayerSystem
	PlayerID           types.EntityID

	accumulator float64
	isPaused    bool
	logger      *slog.Logger
}

// NewGame загружает определения, инициализирует мод и строит сцену.
func NewGame(opts Options) (*Game, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	lib := defs.NewLibrary()
	if opts.DefsDir != "" {
		if err := lib.LoadDir(opts.DefsDir); err != nil {
			return nil, errors.Wrap(err, "load definitions")
		}
	}

	rng := utils.NewPRNGService(opts.Seed)
	reg := registry.New(logger)
	seedVanillaTabs(reg)

	content, err := mod.Initialize(reg, lib, rng, logger)
	if err != nil {
		return nil, err
	}
	if _, err := mod.InitializeClient(reg, render.NewBeamRenderer(content.BeamType.Texture)); err != nil {
		return nil, err
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		Registry:        reg,
		Content:         content,
		CollisionSystem: system.NewCollisionSystem(ecs),
		MovementSystem:  system.NewMovementSystem(ecs),
		logger:          logger,
	}
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs, rng)
	g.StatusEffectSystem = system.NewStatusEffectSystem(ecs, eventDispatcher)
	g.PlayerSystem = system.NewPlayerSystem(ecs, eventDispatcher)
	g.World = NewWorld(ecs, eventDispatcher, opts.Sounds, g.VisualEffectSystem, content.BeamType, logger)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, g.World, g.CollisionSystem, eventDispatcher, logger)

	eventDispatcher.SubscribeAll(&GameEventListener{logger: logger},
		event.BeamFired, event.BeamImpacted, event.BeamExpired, event.EntityKilled)

	g.createScene()
	return g, nil
}

// seedVanillaTabs заполняет вкладку творческого режима ванильными
// предметами, чтобы мечу было за кем встать.
func seedVanillaTabs(reg *registry.Registry) {
	combat, _ := registry.ParseLocation(config.CombatTab)
	for _, id := range []string{"minecraft:iron_sword", "minecraft:diamond_sword", config.TabAnchorID, "minecraft:wooden_axe", "minecraft:bow"} {
		loc, _ := registry.ParseLocation(id)
		reg.AddToTab(combat, registry.Location{}, loc)
	}
}

// Update продвигает симуляцию на deltaTime секунд целыми тиками.
func (g *Game) Update(deltaTime float64) {
	if g.isPaused {
		return
	}
	g.accumulator += min(deltaTime, config.MaxDeltaTime)
	for g.accumulator >= config.TickDuration {
		g.Tick()
		g.accumulator -= config.TickDuration
	}
}

// Tick выполняет один шаг симуляции.
func (g *Game) Tick() {
	g.CollisionSystem.Update(config.TickDuration)
	g.ProjectileSystem.Update(config.TickDuration)
	g.MovementSystem.Update(config.TickDuration)
	g.VisualEffectSystem.Update(config.TickDuration)
	g.StatusEffectSystem.Update(config.TickDuration)
	g.ECS.GameState.Tick++
	g.ECS.GameTime += config.TickDuration
}

// PartialTick - доля времени между прошлым и следующим тиком, в [0, 1).
func (g *Game) PartialTick() float64 {
	return g.accumulator / config.TickDuration
}

// UseSword - действие использования предмета. Пока меч на перезарядке,
// хост вообще не вызывает предмет.
func (g *Game) UseSword() item.Result {
	if cd, ok := g.ECS.Cooldowns[g.PlayerID]; ok && cd.Active(g.Content.Sword.ID()) {
		return item.Result{Outcome: item.Pass}
	}
	if _, alive := g.ECS.Players[g.PlayerID]; !alive {
		return item.Result{Outcome: item.Pass}
	}
	return g.Content.Sword.Use(g.Player(), g.World)
}

// Player возвращает игрока как владельца оружия.
func (g *Game) Player() interfaces.Wielder {
	return wielder{ecs: g.ECS, id: g.PlayerID}
}

// CooldownFraction - оставшаяся доля перезарядки меча для HUD.
func (g *Game) CooldownFraction() float64 {
	cd, ok := g.ECS.Cooldowns[g.PlayerID]
	if !ok {
		return 0
	}
	ticks := 0
	if act := g.Content.Sword.Definition().Activation; act != nil {
		ticks = act.CooldownTicks
	}
	return cd.Fraction(g.Content.Sword.ID(), ticks)
}

// Aim поворачивает голову игрока. Наклон ограничен вертикалью.
func (g *Game) Aim(yawDelta, pitchDelta float64) {
	rot, ok := g.ECS.Rotations[g.PlayerID]
	if !ok {
		return
	}
	rot.Yaw = utils.WrapDegrees(rot.Yaw + yawDelta)
	rot.Pitch = utils.Clamp(rot.Pitch+pitchDelta, -90, 90)
}

// MovePlayer двигает игрока относительно направления взгляда.
func (g *Game) MovePlayer(forward, strafe float64) {
	pos, ok := g.ECS.Positions[g.PlayerID]
	rot, hasRot := g.ECS.Rotations[g.PlayerID]
	if !ok || !hasRot {
		return
	}
	fwd := render.Forward(rot.Yaw)
	right := mgl64.Vec3{-fwd.Z(), 0, fwd.X()}
	pos.Current = pos.Current.Add(fwd.Mul(forward)).Add(right.Mul(strafe))
}

// HurtPlayer наносит игроку обычный урон, чтобы проверить порог здоровья.
func (g *Game) HurtPlayer(amount float64) {
	g.World.ApplyDamage(g.PlayerID, amount, interfaces.DamageSource{Kind: "generic"})
}

// Reset очищает мир и заново строит стартовую сцену.
func (g *Game) Reset() {
	var ids []types.EntityID
	for id := range g.ECS.Positions {
		ids = append(ids, id)
	}
	for id := range g.ECS.Terrain {
		ids = append(ids, id)
	}
	for _, id := range ids {
		g.ECS.Remove(id)
	}
	g.ECS.GameState = &component.GameState{}
	g.accumulator = 0
	g.createScene()
	g.logger.Info("scene reset")
}

func (g *Game) TogglePause() { g.isPaused = !g.isPaused }

func (g *Game) IsPaused() bool { return g.isPaused }

func (g *Game) createScene() {
	g.PlayerID = g.createPlayerEntity()

	for _, at := range []mgl64.Vec3{{-3, 0, 8}, {0, 0, 10}, {3, 0, 12}} {
		g.createDummy(at)
	}

	g.createTerrain(mgl64.Vec3{-6, 0, 16}, mgl64.Vec3{6, 3, 17})
	g.createTerrain(mgl64.Vec3{-config.GridHalfExtent, -1, -config.GridHalfExtent}, mgl64.Vec3{config.GridHalfExtent, 0, config.GridHalfExtent})
	g.CollisionSystem.Update(0)
}

func (g *Game) createPlayerEntity() types.EntityID {
	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{}
	g.ECS.Rotations[id] = &component.Rotation{}
	g.ECS.Healths[id] = &component.Health{Value: config.PlayerMaxHealth, Max: config.PlayerMaxHealth}
	g.ECS.Colliders[id] = &component.Collider{Width: config.PlayerWidth, Height: config.PlayerHeight}
	g.ECS.Players[id] = &component.Player{
		EyeHeight:  config.PlayerEyeHeight,
		RegenTimer: config.PlayerRegenTicks,
		Combatant:  true,
	}
	g.ECS.Cooldowns[id] = &component.Cooldowns{Remaining: make(map[string]int)}
	g.ECS.Renderables[id] = &component.Renderable{Color: config.PlayerColor, HasStroke: true}
	return id
}

func (g *Game) createDummy(at mgl64.Vec3) types.EntityID {
	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{Current: at, Prev: at}
	g.ECS.Healths[id] = &component.Health{Value: config.DummyHealth, Max: config.DummyHealth}
	g.ECS.Colliders[id] = &component.Collider{Width: config.DummyWidth, Height: config.DummyHeight}
	g.ECS.Renderables[id] = &component.Renderable{Color: config.DummyColor}
	return id
}

func (g *Game) createTerrain(lo, hi mgl64.Vec3) types.EntityID {
	id := g.ECS.NewEntity()
	g.ECS.Terrain[id] = &component.Terrain{Min: lo, Max: hi}
	return id
}

// GameEventListener пишет в лог жизненный цикл луча.
type GameEventListener struct {
	logger *slog.Logger
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.BeamData:
		l.logger.Debug(string(e.Type), "beam", data.Beam, "owner", data.Owner, "age", data.Age)
	case event.KilledData:
		l.logger.Info("entity killed", "entity", data.Entity, "killer", data.Killer)
	}
}
