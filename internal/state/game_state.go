// internal/state/game_state.go
package state

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"

	"master-quest/internal/app"
	"master-quest/internal/config"
	"master-quest/internal/mod"
	"master-quest/internal/render"
	"master-quest/internal/ui"
)

const (
	moveSpeed  = 0.15 // блоков за кадр
	pitchSpeed = 2.0  // градусов за кадр
	yawSpeed   = 3.0
)

// Muter - часть звукового менеджера, которую переключает фронтенд.
type Muter interface {
	SetMuted(muted bool)
	Muted() bool
}

// GameState - интерактивная сцена.
type GameState struct {
	sm       *StateMachine
	game     *app.Game
	camera   *render.Camera
	renderer *ui.SceneRenderer
	hud      *ui.HUD
	textures *ui.TextureManager
	sounds   Muter
	cursorX  int
	logger   *slog.Logger
}

// NewGameState оборачивает игру. assetRoot может быть пустым, тогда
// используется сгенерированная текстура луча.
func NewGameState(sm *StateMachine, g *app.Game, sounds Muter, assetRoot string, logger *slog.Logger) (*GameState, error) {
	beams, ok := mod.Renderer(g.Registry, g.Content.BeamHandle.Location)
	if !ok {
		return nil, errors.Errorf("no renderer registered for %s", g.Content.BeamHandle.Location)
	}

	textures := ui.NewTextureManager(assetRoot, logger)
	if gen, ok := mod.Texture(g.Registry, beams.Texture); ok {
		textures.SetFallback(beams.Texture, gen)
	}
	beamTexture, err := textures.Get(beams.Texture)
	if err != nil {
		return nil, err
	}

	camera := render.NewCamera(config.ScreenWidth, config.ScreenHeight)
	return &GameState{
		sm:       sm,
		game:     g,
		camera:   camera,
		renderer: ui.NewSceneRenderer(g.ECS, camera, beams, beamTexture),
		hud:      ui.NewHUD(config.HealthIndicatorX, config.HealthIndicatorY),
		textures: textures,
		sounds:   sounds,
		logger:   logger,
	}, nil
}

func (g *GameState) Enter() {
	g.cursorX, _ = ebiten.CursorPosition()
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	g.handleAim()
	g.handleMovement()

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		res := g.game.UseSword()
		g.logger.Debug("use", "fired", res.Fired, "outcome", res.Outcome)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.game.HurtPlayer(config.PlayerHurtAmount)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.game.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && g.sounds != nil {
		g.sounds.SetMuted(!g.sounds.Muted())
		g.logger.Info("audio", "muted", g.sounds.Muted())
	}

	g.game.Update(deltaTime)
	g.followPlayer()
}

func (g *GameState) handleAim() {
	x, _ := ebiten.CursorPosition()
	yaw := float64(g.cursorX-x) * config.MouseYawScale
	g.cursorX = x

	pitch := 0.0
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		pitch -= pitchSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		pitch += pitchSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		yaw += yawSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		yaw -= yawSpeed
	}
	if yaw != 0 || pitch != 0 {
		g.game.Aim(yaw, pitch)
	}
}

func (g *GameState) handleMovement() {
	forward, strafe := 0.0, 0.0
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		forward += moveSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		forward -= moveSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		strafe += moveSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		strafe -= moveSpeed
	}
	if forward != 0 || strafe != 0 {
		g.game.MovePlayer(forward, strafe)
	}
}

func (g *GameState) followPlayer() {
	p := g.game.Player()
	g.camera.Follow(p.Position(), p.Yaw())
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.renderer.Draw(screen, g.game.PartialTick())

	p := g.game.Player()
	tolerance := 0.0
	if act := g.game.Content.Sword.Definition().Activation; act != nil {
		tolerance = act.HealthTolerance
	}
	g.hud.Draw(screen, ui.HUDState{
		Health:    p.Health(),
		MaxHealth: p.MaxHealth(),
		Tolerance: tolerance,
		Cooldown:  g.game.CooldownFraction(),
		Stats:     *g.game.ECS.GameState,
		Beams:     len(g.game.ECS.Projectiles),
		Paused:    g.game.IsPaused(),
	})
}

func (g *GameState) Exit() {}

// Cleanup освобождает текстуры на GPU.
func (g *GameState) Cleanup() {
	g.textures.Cleanup()
}
