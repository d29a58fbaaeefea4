// cmd/game/main.go
package main

import (
	"context"
	"os"

	"go-space-shooter/internal/app"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/input"
	"go-space-shooter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

// AppGame адаптирует Runtime к ebiten.Game. Ebiten вызывает Update 60 раз
// в секунду, это и есть шаг симуляции.
type AppGame struct {
	runtime *app.Runtime
	input   *input.EbitenReader
	painter *render.EbitenPainter
}

func (a *AppGame) Update() error {
	a.runtime.Step(a.input.Read())
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.painter.Paint(screen, a.runtime.Game.DrawCommands())
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	fs := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	config.RegisterFlags(fs)
	_ = fs.Parse(os.Args[1:])
	dir, _ := fs.GetString("config-dir")

	settings, err := config.Load(dir, fs)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load settings")
	}

	rt, err := app.NewRuntime(settings, os.Stderr, false)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start")
	}
	defer func() { _ = rt.Close(context.Background()) }()

	a := &AppGame{
		runtime: rt,
		input:   input.NewEbitenReader(),
		painter: render.NewEbitenPainter(),
	}
	ebiten.SetTPS(config.TPS)
	ebiten.SetWindowSize(
		int(config.ScreenWidth*settings.WindowScale),
		int(config.ScreenHeight*settings.WindowScale),
	)
	ebiten.SetWindowTitle("Space Shooter")
	if err := ebiten.RunGame(a); err != nil {
		rt.Logger.Error().Err(err).Msg("game loop failed")
	}
}
