package keytracker

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

func TestObserveReportsRisingEdgeOnce(t *testing.T) {
	k := New(ebiten.KeyF3)

	assert.False(t, k.Observe(false))
	assert.True(t, k.Observe(true))
	assert.False(t, k.Observe(true), "held key is not a new press")
	assert.False(t, k.Observe(false))
	assert.True(t, k.Observe(true))
	assert.Equal(t, ebiten.KeyF3, k.Key())
}
