package game

import (
	"image/color"
	"io"
	"testing"
	"time"

	"airkeys/internal/config"
	"airkeys/internal/dwell"
	"airkeys/internal/keyboard"
	"airkeys/internal/monitoring"
	"airkeys/internal/pointer"
	"airkeys/internal/session"

	"github.com/StantStantov/rps/swamp/logging"
	"github.com/StantStantov/rps/swamp/logging/logfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T, source pointer.Source) (*KeyboardGame, *time.Duration) {
	t.Helper()
	cfg := config.DefaultConfig()
	logger := logging.NewLogger(io.Discard, logfmt.MainFormat, logging.LevelDebug, 256)
	resolver, err := dwell.New(cfg.GetHoldTime())
	require.NoError(t, err)

	monitor := monitoring.NewPerformanceMonitor()
	sess := session.New(keyboard.NewEngine(cfg.GetRows(), cfg.GetGeometry()), resolver, logger, session.WithMonitor(monitor))
	g := NewKeyboardGame(cfg, sess, source, monitor, logger)

	now := new(time.Duration)
	g.clock = func() time.Duration { return *now }
	return g, now
}

func TestCursorSample(t *testing.T) {
	assert.Equal(t, pointer.At(10, 20), cursorSample(10, 20, 640, 480))
	assert.Equal(t, pointer.At(0, 0), cursorSample(0, 0, 640, 480))
	assert.Equal(t, pointer.None(), cursorSample(-1, 20, 640, 480))
	assert.Equal(t, pointer.None(), cursorSample(640, 20, 640, 480))
	assert.Equal(t, pointer.None(), cursorSample(10, 480, 640, 480))
}

func TestLayoutAdoptsOutsideSize(t *testing.T) {
	g, _ := newTestGame(t, pointer.SourceFunc(func(int, int, time.Duration) pointer.Sample { return pointer.None() }))

	w, h := g.Layout(800, 600)
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)

	w, h = g.Layout(0, 0)
	assert.Equal(t, 800, w, "minimized window keeps the last size")
	assert.Equal(t, 600, h)
}

func TestStepTypesThroughSource(t *testing.T) {
	// "Q" is the first key of the second row: x 50-100, y 208-258.
	var seenW, seenH int
	source := pointer.SourceFunc(func(w, h int, _ time.Duration) pointer.Sample {
		seenW, seenH = w, h
		return pointer.At(75, 230)
	})
	g, now := newTestGame(t, source)
	g.Layout(1024, 768)

	g.gameLoop.step()
	assert.True(t, g.frame.HasHovered)
	assert.Equal(t, "Q", g.frame.Hovered.Label)
	assert.Equal(t, 1024, seenW)
	assert.Equal(t, 768, seenH)

	*now = 1100 * time.Millisecond
	g.gameLoop.step()
	assert.True(t, g.frame.HasPress)
	assert.Equal(t, "Q", g.Text())
	assert.Equal(t, pointer.At(75, 230), g.sample)
}

func TestRGB(t *testing.T) {
	assert.Equal(t, color.RGBA{183, 72, 203, 255}, rgb([3]int{183, 72, 203}))
}

func TestLabelScale(t *testing.T) {
	assert.Equal(t, 2.0, labelScale("Q"))
	assert.Equal(t, 1.5, labelScale(keyboard.LabelSpace))
}

func TestSamplePosition(t *testing.T) {
	assert.Equal(t, "none", samplePosition(false, pointer.At(1, 2).Point()))
	assert.Equal(t, "(1,2)", samplePosition(true, pointer.At(1, 2).Point()))
}
