package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebitext "github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var (
	textScratch  *ebiten.Image
	textScratchW int
	textScratchH int
)

// rgb converts a configured [3]int colour
func rgb(c [3]int) color.RGBA {
	return color.RGBA{uint8(c[0]), uint8(c[1]), uint8(c[2]), 255}
}

// textSize returns the unscaled pixel size of s in the basic face
func textSize(s string) (w, h int) {
	face := basicfont.Face7x13
	return font.MeasureString(face, s).Ceil(), face.Height
}

func ensureTextScratch(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if textScratch == nil || textScratchW < width || textScratchH < height {
		if textScratchW < width {
			textScratchW = width
		}
		if textScratchH < height {
			textScratchH = height
		}
		textScratch = ebiten.NewImage(textScratchW, textScratchH)
	}
}

// drawScaledText draws s with its top-left corner at (x, y), magnified by scale
func drawScaledText(screen *ebiten.Image, s string, x, y int, scale float64, col color.Color) {
	if s == "" {
		return
	}
	w, h := textSize(s)
	ensureTextScratch(w, h)
	textScratch.Clear()

	face := basicfont.Face7x13
	ebitext.Draw(textScratch, s, face, 0, face.Ascent, col)

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(scale, scale)
	opts.GeoM.Translate(float64(x), float64(y))
	opts.Filter = ebiten.FilterNearest
	screen.DrawImage(textScratch.SubImage(image.Rect(0, 0, w, h)).(*ebiten.Image), opts)
}

// drawCenteredText centres s inside the rectangle (x, y, w, h)
func drawCenteredText(screen *ebiten.Image, s string, x, y, w, h int, scale float64, col color.Color) {
	textW, textH := textSize(s)
	drawX := x + (w-int(float64(textW)*scale))/2
	drawY := y + (h-int(float64(textH)*scale))/2
	drawScaledText(screen, s, drawX, drawY, scale, col)
}

// labelScale keeps single characters large and the longer action labels readable
func labelScale(label string) float64 {
	if len([]rune(label)) == 1 {
		return 2
	}
	return 1.5
}
