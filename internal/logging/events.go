// internal/logging/events.go
package logging

import (
	"go-space-shooter/internal/event"

	"github.com/rs/zerolog"
)

// EventLogger пишет в лог вехи игры.
type EventLogger struct {
	logger  zerolog.Logger
	sampled zerolog.Logger
}

func NewEventLogger(logger zerolog.Logger) *EventLogger {
	return &EventLogger{logger: logger, sampled: Sampled(logger)}
}

// loggedEvents — события, которые пишутся в лог.
var loggedEvents = []event.EventType{
	event.RunStarted,
	event.PhaseChanged,
	event.BossSpawned,
	event.BossDefeated,
	event.WeaponUnlocked,
	event.PowerUpCollected,
	event.PlayerHit,
	event.PlayerDied,
	event.AreaBlast,
	event.EnemyDestroyed,
	event.ShotFired,
}

// Subscribe подписывает логгер на все известные ему события.
func (l *EventLogger) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(l, loggedEvents...)
}

// Unsubscribe отключает логгер от диспетчера.
func (l *EventLogger) Unsubscribe(d *event.Dispatcher) {
	d.UnsubscribeAll(l, loggedEvents...)
}

func (l *EventLogger) OnEvent(e event.Event) {
	switch d := e.Data.(type) {
	case event.RunData:
		l.logger.Info().Int("level", d.Level).Bool("fresh", d.Fresh).Msg("run started")
	case event.PhaseData:
		l.logger.Debug().Str("from", d.From).Str("to", d.To).Str("trigger", d.Trigger).Msg("phase changed")
	case event.BossData:
		msg := "boss spawned"
		if e.Type == event.BossDefeated {
			msg = "boss defeated"
		}
		l.logger.Info().Int("level", d.Level).Int("maxHp", d.MaxHP).Msg(msg)
	case event.WeaponData:
		l.logger.Info().Str("from", d.From).Str("to", d.To).Int("kills", d.Kills).Msg("weapon changed")
	case event.PowerUpData:
		l.logger.Debug().Str("kind", string(d.Kind)).Msg("power-up collected")
	case event.PlayerHitData:
		if e.Type == event.PlayerDied {
			l.logger.Info().Msg("player died")
			return
		}
		l.logger.Debug().Int("health", d.Health).Msg("player hit")
	case event.AreaBlastData:
		l.logger.Debug().Int("destroyed", d.Destroyed).Int("bossDamage", d.BossDamage).Msg("area blast")
	case event.EnemyDestroyedData:
		l.sampled.Trace().Uint64("id", uint64(d.ID)).Str("kind", string(d.Kind)).Msg("enemy destroyed")
	case event.ShotData:
		l.sampled.Trace().Str("weapon", d.Weapon).Int("shots", d.Shots).Msg("shot fired")
	}
}
