package game

import (
	"fmt"

	"airkeys/internal/collision"
	"airkeys/internal/keyboard"
	"airkeys/internal/mathutil"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Renderer draws the keyboard, the typed text and the fingertip marker
type Renderer struct {
	game *KeyboardGame
}

// NewRenderer creates a new renderer
func NewRenderer(game *KeyboardGame) *Renderer {
	return &Renderer{game: game}
}

// Draw renders the last frame
func (r *Renderer) Draw(screen *ebiten.Image) {
	r.drawKeyboard(screen)
	r.drawChatBar(screen)
	r.drawPointer(screen)
	r.drawHints(screen)

	if r.game.showDebug {
		r.drawDebugInfo(screen)
	}
}

func (r *Renderer) drawKeyboard(screen *ebiten.Image) {
	frame := r.game.frame
	colors := r.game.config.Graphics.Colors
	border := float32(r.game.config.Graphics.BorderWidth)

	for _, pk := range frame.Keys {
		hovered := frame.HasHovered && pk.Key == frame.Hovered
		fill := rgb(colors.Key)
		if hovered {
			fill = rgb(colors.Hover)
		}

		b := pk.Box
		vector.DrawFilledRect(screen, float32(b.X1), float32(b.Y1), float32(b.Width()), float32(b.Height()), fill, false)
		if border > 0 {
			vector.StrokeRect(screen, float32(b.X1), float32(b.Y1), float32(b.Width()), float32(b.Height()), border, rgb(colors.Border), false)
		}
		drawCenteredText(screen, pk.Key.Label, b.X1, b.Y1, b.Width(), b.Height(), labelScale(pk.Key.Label), rgb(colors.Text))

		if hovered {
			r.drawProgress(screen, pk, frame.Progress)
		}
	}
}

// drawProgress fills a bar along the bottom of the hovered key as the dwell accumulates
func (r *Renderer) drawProgress(screen *ebiten.Image, pk keyboard.PlacedKey, progress float64) {
	barH := r.game.config.Graphics.ProgressBar
	if barH <= 0 {
		return
	}
	inner := pk.Box.Inset(r.game.config.Graphics.BorderWidth)
	w := int(float64(inner.Width()) * mathutil.Clamp01(progress))
	if w <= 0 {
		return
	}
	vector.DrawFilledRect(screen, float32(inner.X1), float32(inner.Y2-barH), float32(w), float32(barH),
		rgb(r.game.config.Graphics.Colors.Progress), false)
}

func (r *Renderer) drawChatBar(screen *ebiten.Image) {
	gfx := r.game.config.Graphics
	x1, y1 := gfx.ChatBarX, gfx.ChatBarY
	x2 := mathutil.IntMax(x1, r.game.frameW-gfx.ChatBarMargin)
	vector.DrawFilledRect(screen, float32(x1), float32(y1), float32(x2-x1), float32(gfx.ChatBarHeight), rgb(gfx.Colors.ChatBar), false)

	text := r.game.frame.Text
	const scale = 3.0
	_, textH := textSize(text)
	textY := y1 + (gfx.ChatBarHeight-int(float64(textH)*scale))/2
	drawScaledText(screen, text, x1+20, textY, scale, rgb(gfx.Colors.Text))
}

func (r *Renderer) drawPointer(screen *ebiten.Image) {
	s := r.game.sample
	radius := r.game.config.Pointer.MarkerRadius
	if !s.Present || radius <= 0 {
		return
	}
	vector.DrawFilledCircle(screen, float32(s.X), float32(s.Y), float32(radius), rgb(r.game.config.Graphics.Colors.Pointer), true)
}

func (r *Renderer) drawHints(screen *ebiten.Image) {
	bottom := r.keyboardBottom()
	y := mathutil.IntClamp(bottom+16, 0, mathutil.IntMax(0, r.game.frameH-16))
	ebitenutil.DebugPrintAt(screen, "Hold a key to type   ESC quit   F3 debug   F5 reset   F11 fullscreen", r.game.config.Keyboard.OriginX, y)
}

func (r *Renderer) keyboardBottom() int {
	bottom := 0
	for _, pk := range r.game.frame.Keys {
		bottom = mathutil.IntMax(bottom, pk.Box.Y2)
	}
	return bottom
}

func (r *Renderer) drawDebugInfo(screen *ebiten.Image) {
	m := r.game.monitor.GetCurrentMetrics()
	state := r.game.session.State()

	lines := []string{
		fmt.Sprintf("TPS %.1f  FPS %.1f", ebiten.ActualTPS(), ebiten.ActualFPS()),
		fmt.Sprintf("frame avg %v  resolve %v  render %v", m.AvgFrameTime, m.ResolveTime, m.RenderTime),
		fmt.Sprintf("frames %d  pointer %d  hovers %d  presses %d", m.Frames, m.PointerFrames, m.HoverChanges, m.Presses),
		fmt.Sprintf("dwell %s  progress %.0f%%", state.Phase, r.game.frame.Progress*100),
		fmt.Sprintf("frame %dx%d  pointer %s", r.game.frameW, r.game.frameH, samplePosition(r.game.sample.Present, r.game.sample.Point())),
	}
	for _, alert := range r.game.monitor.CheckPerformanceAlerts() {
		lines = append(lines, "! "+alert.Message)
	}

	x := mathutil.IntMax(0, r.game.frameW-360)
	y := mathutil.IntMax(0, r.game.frameH-len(lines)*14-4)
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, x, y+i*14)
	}
}

func samplePosition(present bool, p collision.Point) string {
	if !present {
		return "none"
	}
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
