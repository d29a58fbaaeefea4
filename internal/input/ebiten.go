// internal/input/ebiten.go
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EbitenKeys — раскладка по умолчанию для оконной версии.
var EbitenKeys = map[Action][]ebiten.Key{
	MoveLeft:     {ebiten.KeyArrowLeft, ebiten.KeyA},
	MoveRight:    {ebiten.KeyArrowRight, ebiten.KeyD},
	Fire:         {ebiten.KeySpace},
	PauseToggle:  {ebiten.KeyP},
	Confirm:      {ebiten.KeyEnter},
	Restart:      {ebiten.KeyR},
	Menu:         {ebiten.KeyEscape, ebiten.KeyM},
	Instructions: {ebiten.KeyI},
}

// EbitenReader опрашивает клавиатуру Ebiten. Вызывать из Update.
type EbitenReader struct {
	keys map[Action][]ebiten.Key
}

func NewEbitenReader() *EbitenReader {
	return &EbitenReader{keys: EbitenKeys}
}

func (r *EbitenReader) Read() Snapshot {
	var s Snapshot
	for action, keys := range r.keys {
		for _, k := range keys {
			if inpututil.IsKeyJustPressed(k) {
				s.Press(action)
			} else if ebiten.IsKeyPressed(k) {
				s.Hold(action)
			}
		}
	}
	return s
}
