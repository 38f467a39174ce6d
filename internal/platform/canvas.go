package platform

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/pong/pong"
	"golang.org/x/image/font/basicfont"
)

var statusColor = color.NRGBA{180, 220, 180, 255}

// drawScene strokes every line of the scene in white on black and prints the
// status hint near the bottom of the field.
func drawScene(screen *ebiten.Image, scene *pong.Scene) {
	screen.Fill(color.Black)
	for _, l := range scene.Lines {
		vector.StrokeLine(screen,
			float32(l.X1), float32(l.Y1), float32(l.X2), float32(l.Y2),
			float32(l.Width), color.White, false)
	}

	if scene.Status != "" {
		x, y := statusOrigin(scene.Status)
		text.Draw(screen, scene.Status, basicfont.Face7x13, x, y, statusColor)
	}
}

// statusOrigin centres text horizontally in the fixed-width basic font.
func statusOrigin(status string) (int, int) {
	width := len(status) * basicfont.Face7x13.Advance
	return max((pong.ScreenWidth-width)/2, 0), pong.ScreenHeight - 24
}
