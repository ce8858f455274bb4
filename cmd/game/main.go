// cmd/game/main.go
package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"master-quest/internal/app"
	"master-quest/internal/audio"
	"master-quest/internal/config"
	"master-quest/internal/state"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func makeapp() *cli.App {
	a := cli.NewApp()
	a.Name = "master-quest"
	a.Usage = "Master Sword beam sandbox"
	a.Version = config.ModVersion
	a.Flags = []cli.Flag{
		cli.BoolFlag{Name: "headless", Usage: "Run the simulation without a window and report what happened"},
		cli.IntFlag{Name: "ticks", Value: 200, Usage: "Ticks to run in headless mode"},
		cli.IntFlag{Name: "fire-every", Value: 25, Usage: "Ticks between sword uses in headless mode; 0 never fires"},
		cli.Int64Flag{Name: "seed", Value: 1, Usage: "Seed for the particle RNG"},
		cli.StringFlag{Name: "defs", Usage: "Directory with JSON definition overrides"},
		cli.StringFlag{Name: "assets", Usage: "Directory holding textures/"},
		cli.BoolFlag{Name: "mute", Usage: "Start muted; M toggles sound in the window"},
		cli.BoolFlag{Name: "verbose", Usage: "Enable debug logging"},
	}
	a.Action = func(c *cli.Context) error {
		if c.Bool("headless") {
			return simulate(c)
		}
		return play(c)
	}
	return a
}

func newLogger(c *cli.Context) *slog.Logger {
	level := slog.LevelInfo
	if c.Bool("verbose") {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func newGame(c *cli.Context, logger *slog.Logger, sounds app.SoundPlayer) (*app.Game, error) {
	return app.NewGame(app.Options{
		Seed:    c.Int64("seed"),
		DefsDir: c.String("defs"),
		Sounds:  sounds,
		Logger:  logger,
	})
}

func play(c *cli.Context) error {
	logger := newLogger(c)

	sounds := audio.NewSoundManager(logger)
	if err := sounds.Initialize(); err != nil {
		logger.Warn("audio disabled", "error", err)
	}
	defer sounds.Cleanup()
	sounds.SetMuted(c.Bool("mute"))

	g, err := newGame(c, logger, sounds)
	if err != nil {
		return err
	}

	sm := state.NewStateMachine()
	gs, err := state.NewGameState(sm, g, sounds, c.String("assets"), logger)
	if err != nil {
		return errors.Wrap(err, "creating game state")
	}
	defer gs.Cleanup()
	sm.SetState(gs)

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Master Quest")
	return ebiten.RunGame(&AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	})
}

func simulate(c *cli.Context) error {
	logger := newLogger(c)
	g, err := newGame(c, logger, nil)
	if err != nil {
		return err
	}

	fireEvery := c.Int("fire-every")
	for tick := 0; tick < c.Int("ticks"); tick++ {
		if fireEvery > 0 && tick%fireEvery == 0 {
			g.UseSword()
		}
		g.Tick()
	}

	stats := g.ECS.GameState
	logger.Info("simulation finished",
		"ticks", stats.Tick,
		"beams_fired", stats.BeamsFired,
		"hits", stats.Hits,
		"kills", stats.Kills,
		"beams_alive", len(g.ECS.Projectiles),
	)
	return nil
}

func main() {
	if err := makeapp().Run(os.Args); err != nil {
		slog.Error("exiting", "error", err)
		os.Exit(1)
	}
}
