// internal/app/game.go
package app

import (
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/input"
	"go-space-shooter/internal/state"
	"go-space-shooter/internal/system"
	"go-space-shooter/internal/ui"
	"go-space-shooter/internal/utils"
	"go-space-shooter/pkg/render"
)

// Options — параметры новой игры.
type Options struct {
	Seed        int64         // 0 — сид от часов
	Catalog     *defs.Catalog // nil — встроенный каталог
	StartInMenu bool
}

// Game holds the main game state and logic. Один экземпляр на процесс;
// хост вызывает Step раз в кадр и рисует DrawCommands.
type Game struct {
	World           *entity.World
	Catalog         *defs.Catalog
	EventDispatcher *event.Dispatcher
	Machine         *state.Machine
	Rng             *utils.PRNGService

	PlayerSystem       *system.PlayerSystem
	WeaponSystem       *system.WeaponSystem
	SpawnSystem        *system.SpawnSystem
	BossSystem         *system.BossSystem
	MovementSystem     *system.MovementSystem
	CombatSystem       *system.CombatSystem
	PowerUpSystem      *system.PowerUpSystem
	VisualEffectSystem *system.VisualEffectSystem
	RenderSystem       *system.RenderSystem
	HUD                *ui.HUD
}

// NewGame собирает игру: мир, системы, подписки и автомат фаз.
func NewGame(opts Options) *Game {
	catalog := opts.Catalog
	if catalog == nil {
		catalog = defs.DefaultCatalog()
	}

	world := entity.NewWorld()
	dispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(opts.Seed)

	start := state.Playing
	if opts.StartInMenu {
		start = state.Menu
	}

	g := &Game{
		World:           world,
		Catalog:         catalog,
		EventDispatcher: dispatcher,
		Machine:         state.NewMachine(start),
		Rng:             rng,
		HUD:             ui.NewHUD(catalog.Weapons),
	}
	g.VisualEffectSystem = system.NewVisualEffectSystem(world, rng)
	g.PlayerSystem = system.NewPlayerSystem(world, catalog.Weapons, dispatcher)
	g.PowerUpSystem = system.NewPowerUpSystem(world, rng, g.PlayerSystem, dispatcher, catalog.Drops)
	g.BossSystem = system.NewBossSystem(world, g.VisualEffectSystem, g.PowerUpSystem, dispatcher)
	g.CombatSystem = system.NewCombatSystem(world, g.VisualEffectSystem, g.BossSystem, dispatcher)
	g.WeaponSystem = system.NewWeaponSystem(world, catalog.Weapons, g.CombatSystem, dispatcher)
	g.SpawnSystem = system.NewSpawnSystem(world, rng, catalog.Enemies)
	g.MovementSystem = system.NewMovementSystem(world, g.VisualEffectSystem)
	g.RenderSystem = system.NewRenderSystem(world)

	// Порядок подписки важен: очки и оружие до броска бонуса.
	dispatcher.SubscribeAll(g.PlayerSystem, event.EnemyDestroyed, event.BossDefeated)
	dispatcher.Subscribe(event.EnemyDestroyed, g.PowerUpSystem)

	listener := &GameEventListener{game: g}
	dispatcher.SubscribeAll(listener, event.PlayerDied, event.BossDefeated)

	g.Machine.OnTransition(g.onTransition)
	return g
}

// Phase возвращает текущий экран.
func (g *Game) Phase() state.Phase {
	return g.Machine.Current()
}

// Fire подаёт триггер автомату фаз.
func (g *Game) Fire(t state.Trigger) bool {
	return g.Machine.Fire(t)
}

func (g *Game) onTransition(from state.Phase, t state.Trigger, to state.Phase) {
	switch {
	case to == state.Playing && state.FreshRun(t):
		g.Restart()
	case to == state.Playing && t == state.Continue:
		g.NextLevel()
	}
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.PhaseChanged,
		Data: event.PhaseData{From: from.String(), To: to.String(), Trigger: t.String()},
	})
}

// triggerFor переводит нажатия кадра в триггер автомата для текущей фазы.
func triggerFor(phase state.Phase, in input.Snapshot) (state.Trigger, bool) {
	switch phase {
	case state.Menu:
		if in.Pressed(input.Confirm) {
			return state.Start, true
		}
		if in.Pressed(input.Instructions) {
			return state.ShowInstructions, true
		}
	case state.Instructions:
		if in.Pressed(input.Confirm) {
			return state.Start, true
		}
		if in.Pressed(input.Menu) {
			return state.Back, true
		}
	case state.Playing:
		if in.Pressed(input.PauseToggle) {
			return state.PauseToggle, true
		}
	case state.Paused:
		if in.Pressed(input.PauseToggle) {
			return state.PauseToggle, true
		}
		if in.Pressed(input.Restart) {
			return state.Restart, true
		}
		if in.Pressed(input.Menu) {
			return state.ReturnToMenu, true
		}
	case state.GameOver:
		if in.Pressed(input.Restart) || in.Pressed(input.Confirm) {
			return state.Restart, true
		}
		if in.Pressed(input.Menu) {
			return state.ReturnToMenu, true
		}
	case state.Win:
		if in.Pressed(input.Confirm) {
			return state.Continue, true
		}
		if in.Pressed(input.Restart) {
			return state.Restart, true
		}
		if in.Pressed(input.Menu) {
			return state.ReturnToMenu, true
		}
	}
	return 0, false
}

// Step — один кадр хоста: сначала триггеры кадра, затем шаг симуляции,
// если идёт игра. Кадр, сменивший фазу, симуляцию не двигает.
func (g *Game) Step(in input.Snapshot) {
	if t, ok := triggerFor(g.Phase(), in); ok && g.Fire(t) {
		return
	}

	switch g.Phase() {
	case state.Playing:
		g.Tick(in)
	case state.GameOver, state.Win:
		// взрывы догорают под оверлеем
		g.VisualEffectSystem.Update()
	}
}

// Tick продвигает симуляцию ровно на один кадр.
func (g *Game) Tick(in input.Snapshot) {
	w := g.World
	w.Clock += config.FrameDuration
	w.Frame++

	g.PlayerSystem.Move(in.Held(input.MoveLeft), in.Held(input.MoveRight))
	g.WeaponSystem.Update(in.Held(input.Fire))

	// смерть игрока или победа над боссом останавливают остаток кадра;
	// ядерный залп может добить босса ещё до движения
	if g.Phase() == state.Playing {
		g.SpawnSystem.Update()
		g.BossSystem.TrySpawn()
		g.BossSystem.Update()

		g.MovementSystem.Update()
		g.CombatSystem.Update()
	}
	if g.Phase() == state.Playing {
		g.PowerUpSystem.Update()
		g.PlayerSystem.TickTimers()
	}
	g.VisualEffectSystem.Update()
}

// Restart заново инициализирует мир для нового забега.
func (g *Game) Restart() {
	g.World.Reset()
	g.EventDispatcher.Dispatch(event.Event{Type: event.RunStarted, Data: event.RunData{Level: 1, Fresh: true}})
}

// NextLevel убирает врагов и снаряды; очки, убийства, оружие и бонусы сохраняются.
func (g *Game) NextLevel() {
	g.World.ClearHostiles()
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.RunStarted,
		Data: event.RunData{Level: g.World.Progress.Level, Fresh: false},
	})
}

// DrawCommands возвращает список отрисовки кадра. Отрисовка не зависит от
// того, был ли шаг симуляции.
func (g *Game) DrawCommands() []render.Command {
	cmds := g.RenderSystem.Commands()
	phase := g.Phase()
	if phase != state.Menu && phase != state.Instructions {
		cmds = append(cmds, g.HUD.Commands(g.World)...)
	}
	return append(cmds, ui.Overlay(phase, g.World)...)
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.PlayerDied:
		l.game.Fire(state.PlayerDied)
	case event.BossDefeated:
		l.game.Fire(state.BossDefeated)
	}
}
