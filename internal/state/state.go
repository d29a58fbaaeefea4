// internal/state/state.go
package state

// Phase — экран, на котором находится игра.
type Phase int

const (
	Menu Phase = iota
	Instructions
	Playing
	Paused
	GameOver
	Win
)

func (p Phase) String() string {
	switch p {
	case Menu:
		return "menu"
	case Instructions:
		return "instructions"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case GameOver:
		return "gameover"
	case Win:
		return "win"
	default:
		return "unknown"
	}
}

// Trigger — дискретное событие, которое может сменить фазу.
type Trigger int

const (
	Start Trigger = iota
	ShowInstructions
	Back
	PauseToggle
	Restart
	Continue
	ReturnToMenu
	PlayerDied
	BossDefeated
)

func (t Trigger) String() string {
	switch t {
	case Start:
		return "start"
	case ShowInstructions:
		return "instructions"
	case Back:
		return "back"
	case PauseToggle:
		return "pause"
	case Restart:
		return "restart"
	case Continue:
		return "continue"
	case ReturnToMenu:
		return "menu"
	case PlayerDied:
		return "player_died"
	case BossDefeated:
		return "boss_defeated"
	default:
		return "unknown"
	}
}

type transition struct {
	from    Phase
	trigger Trigger
}

// transitions — полная таблица переходов. Всё, чего здесь нет, игнорируется.
var transitions = map[transition]Phase{
	{Menu, Start}:            Playing,
	{Menu, ShowInstructions}: Instructions,

	{Instructions, Back}:  Menu,
	{Instructions, Start}: Playing,

	{Playing, PauseToggle}:  Paused,
	{Playing, PlayerDied}:   GameOver,
	{Playing, BossDefeated}: Win,

	{Paused, PauseToggle}:  Playing,
	{Paused, Restart}:      Playing,
	{Paused, ReturnToMenu}: Menu,

	{GameOver, Restart}:      Playing,
	{GameOver, ReturnToMenu}: Menu,

	{Win, Continue}:     Playing,
	{Win, Restart}:      Playing,
	{Win, ReturnToMenu}: Menu,
}

// Machine — конечный автомат фаз игры.
type Machine struct {
	current Phase
	onEnter func(from Phase, t Trigger, to Phase)
}

// NewMachine создаёт автомат в фазе start.
func NewMachine(start Phase) *Machine {
	return &Machine{current: start}
}

// OnTransition регистрирует обработчик успешных переходов.
func (m *Machine) OnTransition(fn func(from Phase, t Trigger, to Phase)) {
	m.onEnter = fn
}

func (m *Machine) Current() Phase {
	return m.current
}

// Next возвращает фазу, в которую ведёт trigger из from.
func Next(from Phase, t Trigger) (Phase, bool) {
	to, ok := transitions[transition{from, t}]
	return to, ok
}

// Fire применяет trigger. Переход вне таблицы ничего не меняет и возвращает false.
func (m *Machine) Fire(t Trigger) bool {
	to, ok := Next(m.current, t)
	if !ok {
		return false
	}
	from := m.current
	m.current = to
	if m.onEnter != nil {
		m.onEnter(from, t, to)
	}
	return true
}

// FreshRun — начинает ли переход в Playing по t новый забег.
func FreshRun(t Trigger) bool {
	return t == Start || t == Restart
}
