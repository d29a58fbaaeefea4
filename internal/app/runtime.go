// internal/app/runtime.go
package app

import (
	"context"
	"fmt"
	"io"

	"go-space-shooter/internal/config"
	"go-space-shooter/internal/debugserver"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/input"
	"go-space-shooter/internal/logging"
	"go-space-shooter/internal/telemetry"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// publishEvery — как часто (в кадрах) отладочный сервер получает снимок.
const publishEvery = config.TPS / 2

// Runtime связывает Game с сервисами процесса, общими для обоих фронтендов.
type Runtime struct {
	Game     *Game
	Session  string
	Logger   zerolog.Logger
	Recorder *telemetry.Recorder
	Debug    *debugserver.Server

	events *logging.EventLogger
	frames uint64
}

// debugDocument — документ, который отдаёт /debug/state.
type debugDocument struct {
	Session string           `json:"session"`
	Run     Snapshot         `json:"run"`
	Totals  map[string]int64 `json:"totals"`
}

// NewRuntime настраивает логгер, загружает каталог, создаёт игру и, если
// включено, запускает отладочный сервер.
func NewRuntime(s config.Settings, logOut io.Writer, noColor bool) (*Runtime, error) {
	session := uuid.NewString()
	logger := logging.Setup(logOut, logging.Options{Level: s.LogLevel, Session: session, NoColor: noColor})

	catalog := defs.DefaultCatalog()
	if s.CatalogFile != "" {
		c, err := defs.LoadCatalog(s.CatalogFile)
		if err != nil {
			return nil, err
		}
		catalog = c
		logger.Info().Str("file", s.CatalogFile).Msg("catalog loaded")
	}

	recorder, err := telemetry.NewRecorder(telemetry.Meter(s.TelemetryEnabled))
	if err != nil {
		return nil, fmt.Errorf("failed to set up telemetry: %w", err)
	}

	game := NewGame(Options{Seed: s.Seed, Catalog: catalog, StartInMenu: s.StartInMenu})
	events := logging.NewEventLogger(logger)
	events.Subscribe(game.EventDispatcher)
	recorder.Subscribe(game.EventDispatcher)

	rt := &Runtime{
		Game:     game,
		Session:  session,
		Logger:   logger,
		Recorder: recorder,
		events:   events,
	}

	if s.Debug.Enabled {
		rt.Debug = debugserver.New(session, logger)
		if _, err := rt.Debug.Start(s.Debug.Addr); err != nil {
			return nil, err
		}
		rt.publish()
	}

	logger.Info().
		Int64("seed", game.Rng.Seed()).
		Str("phase", game.Phase().String()).
		Msg("game created")
	return rt, nil
}

// Step продвигает игру на кадр хоста и время от времени публикует снимок
// на отладочный сервер.
func (rt *Runtime) Step(in input.Snapshot) {
	rt.Game.Step(in)
	rt.frames++
	if rt.Debug != nil && rt.frames%publishEvery == 0 {
		rt.publish()
	}
}

func (rt *Runtime) publish() {
	doc := debugDocument{Session: rt.Session, Run: rt.Game.Snapshot(), Totals: rt.Recorder.Totals()}
	if err := rt.Debug.Publish(doc); err != nil {
		rt.Logger.Warn().Err(err).Msg("failed to publish snapshot")
	}
}

// Close отключает логгер и счётчики от игры и останавливает отладочный сервер.
func (rt *Runtime) Close(ctx context.Context) error {
	rt.events.Unsubscribe(rt.Game.EventDispatcher)
	rt.Recorder.Unsubscribe(rt.Game.EventDispatcher)
	if rt.Debug == nil {
		return nil
	}
	return rt.Debug.Shutdown(ctx)
}
