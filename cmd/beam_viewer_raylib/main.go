// cmd/beam_viewer_raylib/main.go
//
// beam_viewer_raylib запускает ту же симуляцию, что и cmd/game, и рисует
// квады луча в настоящем 3D.
package main

import (
	"flag"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"

	"master-quest/internal/app"
	"master-quest/internal/audio"
	"master-quest/internal/config"
	"master-quest/internal/mod"
	"master-quest/internal/render"
	"master-quest/internal/ui"
)

func vec(v mgl64.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v.X()), float32(v.Y()), float32(v.Z()))
}

func rlColor(r, g, b, a uint8) rl.Color {
	return rl.NewColor(r, g, b, a)
}

type viewer struct {
	game     *app.Game
	beams    *render.BeamRenderer
	sounds   *audio.SoundManager
	follow   *render.Camera
	camera   rl.Camera3D
	pause    *ui.PauseButtonRL
	cooldown *ui.CooldownIndicatorRL
	hearts   *ui.PlayerHealthIndicatorRL
}

func newViewer(g *app.Game, beams *render.BeamRenderer) *viewer {
	return &viewer{
		game:   g,
		beams:  beams,
		follow: render.NewCamera(config.ScreenWidth, config.ScreenHeight),
		camera: rl.Camera3D{
			Up:         rl.NewVector3(0, 1, 0),
			Fovy:       config.CameraFovY,
			Projection: rl.CameraPerspective,
		},
		pause:    ui.NewPauseButtonRL(config.ScreenWidth-40, 40, 15, config.CooldownColor, config.PlayerColor),
		cooldown: ui.NewCooldownIndicatorRL(config.HealthIndicatorX+10, config.CooldownBarY+10, 10, config.CooldownColor),
		hearts:   ui.NewPlayerHealthIndicatorRL(config.HealthIndicatorX, config.HealthIndicatorY),
	}
}

func (v *viewer) handleInput() {
	if rl.IsKeyPressed(rl.KeyP) || (rl.IsMouseButtonPressed(rl.MouseButtonLeft) && v.pause.IsClicked(rl.GetMousePosition())) {
		v.game.TogglePause()
	}
	v.pause.SetPaused(v.game.IsPaused())
	if v.game.IsPaused() {
		return
	}

	yaw, pitch := 0.0, 0.0
	if rl.IsKeyDown(rl.KeyLeft) {
		yaw += 3
	}
	if rl.IsKeyDown(rl.KeyRight) {
		yaw -= 3
	}
	if rl.IsKeyDown(rl.KeyUp) {
		pitch -= 2
	}
	if rl.IsKeyDown(rl.KeyDown) {
		pitch += 2
	}
	if yaw != 0 || pitch != 0 {
		v.game.Aim(yaw, pitch)
	}

	forward, strafe := 0.0, 0.0
	if rl.IsKeyDown(rl.KeyW) {
		forward += 0.15
	}
	if rl.IsKeyDown(rl.KeyS) {
		forward -= 0.15
	}
	if rl.IsKeyDown(rl.KeyD) {
		strafe += 0.15
	}
	if rl.IsKeyDown(rl.KeyA) {
		strafe -= 0.15
	}
	if forward != 0 || strafe != 0 {
		v.game.MovePlayer(forward, strafe)
	}

	if rl.IsKeyPressed(rl.KeySpace) || rl.IsMouseButtonPressed(rl.MouseButtonRight) {
		v.game.UseSword()
	}
	if rl.IsKeyPressed(rl.KeyH) {
		v.game.HurtPlayer(config.PlayerHurtAmount)
	}
	if rl.IsKeyPressed(rl.KeyR) {
		v.game.Reset()
	}
	if rl.IsKeyPressed(rl.KeyM) {
		v.sounds.SetMuted(!v.sounds.Muted())
	}
}

func (v *viewer) drawWorld(partial float64) {
	ecs := v.game.ECS

	for _, t := range ecs.Terrain {
		size := t.Max.Sub(t.Min)
		centre := t.Min.Add(size.Mul(0.5))
		rl.DrawCube(vec(centre), float32(size.X()), float32(size.Y()), float32(size.Z()), rlColor(config.GroundColor.R, config.GroundColor.G, config.GroundColor.B, 255))
		rl.DrawCubeWires(vec(centre), float32(size.X()), float32(size.Y()), float32(size.Z()), rlColor(config.WallColor.R, config.WallColor.G, config.WallColor.B, 255))
	}

	for id, col := range ecs.Colliders {
		if _, isBeam := ecs.Projectiles[id]; isBeam {
			continue
		}
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		c := rl.Orange
		if r, ok := ecs.Renderables[id]; ok {
			c = rlColor(r.Color.R, r.Color.G, r.Color.B, r.Color.A)
		}
		if _, flashing := ecs.DamageFlashes[id]; flashing {
			c = rl.Red
		}
		feet := render.Interpolate(pos.Prev, pos.Current, partial)
		centre := feet.Add(mgl64.Vec3{0, col.Height / 2, 0})
		rl.DrawCube(vec(centre), float32(col.Width), float32(col.Height), float32(col.Width), c)
		rl.DrawCubeWires(vec(centre), float32(col.Width), float32(col.Height), float32(col.Width), rl.Black)
	}

	pc := config.ParticleColor
	for id, p := range ecs.Particles {
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		fade := float32(p.Life) / float32(max(p.MaxLife, 1))
		rl.DrawSphere(vec(render.Interpolate(pos.Prev, pos.Current, partial)), 0.05, rl.Fade(rlColor(pc.R, pc.G, pc.B, 255), fade))
	}

	tint := config.BeamTint
	for _, proj := range ecs.Projectiles {
		b := proj.Beam
		frame := v.beams.Render(b.Snapshot(), b.Previous(), partial, b.Age())
		c := rlColor(tint.R, tint.G, tint.B, uint8(frame.Alpha*255))
		for _, q := range frame.Quads {
			// Оба обхода, чтобы плоскость была видна с обеих сторон.
			for i := 0; i < len(render.Indices); i += 3 {
				v0 := vec(q[render.Indices[i]].Pos)
				v1 := vec(q[render.Indices[i+1]].Pos)
				v2 := vec(q[render.Indices[i+2]].Pos)
				rl.DrawTriangle3D(v0, v1, v2, c)
				rl.DrawTriangle3D(v2, v1, v0, c)
			}
		}
	}
}

func (v *viewer) draw() {
	p := v.game.Player()
	v.follow.Follow(p.Position(), p.Yaw())
	// Плавно догоняем позицию слежения, чтобы камера не дергалась при повороте.
	v.camera.Position = rl.Vector3Lerp(v.camera.Position, vec(v.follow.Eye), 0.25)
	v.camera.Target = rl.Vector3Lerp(v.camera.Target, vec(v.follow.Target), 0.25)

	bg := config.BackgroundColor
	rl.BeginDrawing()
	rl.ClearBackground(rlColor(bg.R, bg.G, bg.B, 255))

	rl.BeginMode3D(v.camera)
	rl.DrawGrid(config.GridHalfExtent, 2)
	v.drawWorld(v.game.PartialTick())
	rl.EndMode3D()

	tolerance := 0.0
	if act := v.game.Content.Sword.Definition().Activation; act != nil {
		tolerance = act.HealthTolerance
	}
	v.hearts.Draw(p.Health(), p.MaxHealth(), tolerance)
	v.cooldown.Draw(v.game.CooldownFraction())
	v.pause.Draw()
	rl.DrawFPS(config.ScreenWidth-100, config.ScreenHeight-24)
	rl.EndDrawing()
}

func main() {
	seed := flag.Int64("seed", 1, "particle RNG seed")
	defsDir := flag.String("defs", "", "directory with JSON definition overrides")
	mute := flag.Bool("mute", false, "start muted; M toggles sound")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	sounds := audio.NewSoundManager(logger)
	if err := sounds.Initialize(); err != nil {
		logger.Warn("audio disabled", "error", err)
	}
	defer sounds.Cleanup()
	sounds.SetMuted(*mute)

	g, err := app.NewGame(app.Options{Seed: *seed, DefsDir: *defsDir, Sounds: sounds, Logger: logger})
	if err != nil {
		logger.Error("starting", "error", err)
		os.Exit(1)
	}

	beams, ok := mod.Renderer(g.Registry, g.Content.BeamHandle.Location)
	if !ok {
		logger.Error("no beam renderer registered", "entity", g.Content.BeamHandle.Location.String())
		os.Exit(1)
	}

	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, "Master Quest viewer")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	v := newViewer(g, beams)
	v.sounds = sounds
	v.follow.Follow(g.Player().Position(), g.Player().Yaw())
	v.camera.Position = vec(v.follow.Eye)
	v.camera.Target = vec(v.follow.Target)
	for !rl.WindowShouldClose() {
		v.handleInput()
		g.Update(float64(rl.GetFrameTime()))
		v.draw()
	}
}
