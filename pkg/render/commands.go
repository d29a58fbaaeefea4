// pkg/render/commands.go
package render

import "image/color"

// Kind selects how a Command is painted.
type Kind uint8

const (
	KindRect Kind = iota
	KindSprite
	KindText
)

// SpriteID names a procedural sprite. Painters decide how each one looks.
type SpriteID string

const (
	SpritePlayer SpriteID = "player"
	SpriteBoss   SpriteID = "boss"
	SpriteEnemy  SpriteID = "enemy"
)

// Command is one entry of the per-frame draw list. Coordinates are
// playfield pixels; painters scale them to their surface.
type Command struct {
	Kind   Kind
	X, Y   float64
	W, H   float64
	Color  color.RGBA
	Sprite SpriteID
	Text   string
}

// Rect builds a filled-rectangle command.
func Rect(x, y, w, h float64, c color.RGBA) Command {
	return Command{Kind: KindRect, X: x, Y: y, W: w, H: h, Color: c}
}

// Sprite builds a sprite command. c tints the sprite.
func Sprite(id SpriteID, x, y, w, h float64, c color.RGBA) Command {
	return Command{Kind: KindSprite, X: x, Y: y, W: w, H: h, Color: c, Sprite: id}
}

// Text builds a text command with its top-left corner at (x, y).
func Text(x, y float64, s string, c color.RGBA) Command {
	return Command{Kind: KindText, X: x, Y: y, Color: c, Text: s}
}
