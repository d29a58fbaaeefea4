// cmd/termgame/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go-space-shooter/internal/app"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/input"
	"go-space-shooter/pkg/render"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	fs := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	config.RegisterFlags(fs)
	_ = fs.Parse(os.Args[1:])
	dir, _ := fs.GetString("config-dir")

	settings, err := config.Load(dir, fs)
	if err != nil {
		return err
	}

	// терминал занят экраном, лог пишем в файл
	logFile, err := os.OpenFile(settings.TermLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()

	rt, err := app.NewRuntime(settings, logFile, true)
	if err != nil {
		return err
	}
	defer func() { _ = rt.Close(context.Background()) }()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	reader := input.NewTerminalReader()
	painter := render.NewTerminalPainter(screen, config.ScreenWidth, config.ScreenHeight)

	quit := make(chan struct{})
	go func() {
		defer close(quit)
		for {
			switch ev := screen.PollEvent().(type) {
			case nil:
				return
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					return
				}
				reader.HandleKey(ev)
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	}()

	ticker := time.NewTicker(config.FrameDuration)
	defer ticker.Stop()
	for {
		select {
		case <-quit:
			rt.Logger.Info().Uint64("frame", rt.Game.World.Frame).Msg("quit")
			return nil
		case <-ticker.C:
			rt.Step(reader.Read())
			painter.Paint(rt.Game.DrawCommands())
		}
	}
}
