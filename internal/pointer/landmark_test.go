package pointer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromLandmark(t *testing.T) {
	lm := Landmark{X: 0.25, Y: 0.5}

	assert.Equal(t, At(160, 240), FromLandmark(lm, 640, 480, false))
	assert.Equal(t, At(480, 240), FromLandmark(lm, 640, 480, true))
}

func TestFromHand(t *testing.T) {
	hand := make([]Landmark, NumLandmarks)
	hand[IndexFingertip] = Landmark{X: 0.5, Y: 0.25}

	assert.Equal(t, At(320, 120), FromHand(hand, 640, 480, false))
	assert.Equal(t, None(), FromHand(hand[:IndexFingertip], 640, 480, false))
}

func TestSourceFunc(t *testing.T) {
	var src Source = SourceFunc(func(w, h int, _ time.Duration) Sample {
		return At(w/2, h/2)
	})

	assert.Equal(t, At(320, 240), src.Sample(640, 480, 0))
}
