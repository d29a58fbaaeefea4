// internal/telemetry/telemetry.go
package telemetry

import (
	"context"
	"fmt"
	"sync"

	"go-space-shooter/internal/event"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const meterName = "go-space-shooter"

// Meter возвращает глобальный meter, если телеметрия включена, иначе no-op.
// Без установленного SDK глобальный провайдер тоже no-op.
func Meter(enabled bool) metric.Meter {
	if !enabled {
		return noop.Meter{}
	}
	return otel.GetMeterProvider().Meter(meterName)
}

// Recorder считает игровые события метриками OpenTelemetry. Дополнительно
// хранит свои итоги, чтобы отладочный сервер показывал их без экспортёра.
type Recorder struct {
	enemies  metric.Int64Counter
	bosses   metric.Int64Counter
	shots    metric.Int64Counter
	hits     metric.Int64Counter
	powerUps metric.Int64Counter
	runs     metric.Int64Counter

	mu     sync.Mutex
	totals map[string]int64
}

func NewRecorder(meter metric.Meter) (*Recorder, error) {
	r := &Recorder{totals: make(map[string]int64)}
	var err error
	counter := func(name, desc string) metric.Int64Counter {
		if err != nil {
			return nil
		}
		var c metric.Int64Counter
		c, err = meter.Int64Counter(name, metric.WithDescription(desc))
		if err != nil {
			err = fmt.Errorf("failed to create counter %s: %w", name, err)
		}
		return c
	}

	r.enemies = counter("shooter.enemies.destroyed", "Enemies destroyed")
	r.bosses = counter("shooter.bosses.defeated", "Bosses defeated")
	r.shots = counter("shooter.shots.fired", "Projectiles fired by the player")
	r.hits = counter("shooter.player.hits", "Health points lost by the player")
	r.powerUps = counter("shooter.powerups.collected", "Power-ups picked up")
	r.runs = counter("shooter.runs.started", "Runs and levels started")
	if err != nil {
		return nil, err
	}
	return r, nil
}

// countedEvents — события, которые превращаются в счётчики.
var countedEvents = []event.EventType{
	event.EnemyDestroyed,
	event.BossDefeated,
	event.ShotFired,
	event.PlayerHit,
	event.PowerUpCollected,
	event.RunStarted,
}

// Subscribe подписывает r на d.
func (r *Recorder) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(r, countedEvents...)
}

// Unsubscribe отключает r от d.
func (r *Recorder) Unsubscribe(d *event.Dispatcher) {
	d.UnsubscribeAll(r, countedEvents...)
}

func (r *Recorder) OnEvent(e event.Event) {
	ctx := context.Background()
	switch d := e.Data.(type) {
	case event.EnemyDestroyedData:
		r.add(ctx, r.enemies, "enemies", 1, attribute.String("kind", string(d.Kind)))
	case event.BossData:
		if e.Type == event.BossDefeated {
			r.add(ctx, r.bosses, "bosses", 1, attribute.Int("level", d.Level))
		}
	case event.ShotData:
		r.add(ctx, r.shots, "shots", int64(d.Shots), attribute.String("weapon", d.Weapon))
	case event.PlayerHitData:
		r.add(ctx, r.hits, "hits", 1)
	case event.PowerUpData:
		r.add(ctx, r.powerUps, "powerUps", 1, attribute.String("kind", string(d.Kind)))
	case event.RunData:
		r.add(ctx, r.runs, "runs", 1, attribute.Bool("fresh", d.Fresh))
	}
}

func (r *Recorder) add(ctx context.Context, c metric.Int64Counter, key string, n int64, attrs ...attribute.KeyValue) {
	c.Add(ctx, n, metric.WithAttributes(attrs...))
	r.mu.Lock()
	r.totals[key] += n
	r.mu.Unlock()
}

// Totals возвращает копию текущих счётчиков.
func (r *Recorder) Totals() map[string]int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]int64, len(r.totals))
	for k, v := range r.totals {
		out[k] = v
	}
	return out
}
