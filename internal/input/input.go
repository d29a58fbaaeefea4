// internal/input/input.go
package input

// Action — логическое действие игрока, не зависящее от клавиатуры.
type Action uint8

const (
	MoveLeft Action = iota
	MoveRight
	Fire
	PauseToggle
	Confirm
	Restart
	Menu
	Instructions
	actionCount
)

func (a Action) String() string {
	switch a {
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	case Fire:
		return "fire"
	case PauseToggle:
		return "pause"
	case Confirm:
		return "confirm"
	case Restart:
		return "restart"
	case Menu:
		return "menu"
	case Instructions:
		return "instructions"
	default:
		return "unknown"
	}
}

// Snapshot — состояние действий на один кадр. Held — действие зажато сейчас,
// Pressed — нажато именно в этом кадре.
type Snapshot struct {
	held    [actionCount]bool
	pressed [actionCount]bool
}

func (s Snapshot) Held(a Action) bool {
	return a < actionCount && s.held[a]
}

func (s Snapshot) Pressed(a Action) bool {
	return a < actionCount && s.pressed[a]
}

// Hold отмечает действие зажатым.
func (s *Snapshot) Hold(a Action) {
	if a < actionCount {
		s.held[a] = true
	}
}

// Press отмечает действие нажатым в этом кадре; нажатое действие считается
// и зажатым.
func (s *Snapshot) Press(a Action) {
	if a < actionCount {
		s.pressed[a] = true
		s.held[a] = true
	}
}

// Reader отдаёт снимок ввода на текущий кадр.
type Reader interface {
	Read() Snapshot
}

// Held собирает снимок с зажатыми действиями.
func Held(actions ...Action) Snapshot {
	var s Snapshot
	for _, a := range actions {
		s.Hold(a)
	}
	return s
}

// Pressed собирает снимок с действиями, нажатыми в этом кадре.
func Pressed(actions ...Action) Snapshot {
	var s Snapshot
	for _, a := range actions {
		s.Press(a)
	}
	return s
}
