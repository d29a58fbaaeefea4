// internal/input/terminal.go
package input

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// KeyTimeout — сколько клавиша считается зажатой после последнего нажатия.
// Терминал не сообщает об отпускании клавиш, поэтому удержание эмулируется
// автоповтором.
const KeyTimeout = 150 * time.Millisecond

// TerminalReader собирает события клавиатуры tcell в снимки ввода.
// HandleKey вызывается из горутины PollEvent, Read — из игрового цикла.
type TerminalReader struct {
	mu      sync.Mutex
	now     func() time.Time
	last    map[Action]time.Time
	pending Snapshot
}

func NewTerminalReader() *TerminalReader {
	return &TerminalReader{now: time.Now, last: make(map[Action]time.Time)}
}

// MapKey переводит событие tcell в действие.
func MapKey(ev *tcell.EventKey) (Action, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return MoveLeft, true
	case tcell.KeyRight:
		return MoveRight, true
	case tcell.KeyEnter:
		return Confirm, true
	case tcell.KeyEscape:
		return Menu, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			return MoveLeft, true
		case 'd', 'D':
			return MoveRight, true
		case ' ':
			return Fire, true
		case 'p', 'P':
			return PauseToggle, true
		case 'r', 'R':
			return Restart, true
		case 'm', 'M':
			return Menu, true
		case 'i', 'I':
			return Instructions, true
		}
	}
	return 0, false
}

// HandleKey запоминает нажатие. Возвращает false для неизвестных клавиш.
func (r *TerminalReader) HandleKey(ev *tcell.EventKey) bool {
	a, ok := MapKey(ev)
	if !ok {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.last[a] = r.now()
	r.pending.Press(a)
	return true
}

// Read возвращает действия, нажатые с прошлого вызова, плюс все действия,
// чьё последнее нажатие моложе KeyTimeout.
func (r *TerminalReader) Read() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.pending
	r.pending = Snapshot{}
	now := r.now()
	for a, at := range r.last {
		if now.Sub(at) < KeyTimeout {
			s.Hold(a)
		}
	}
	return s
}
