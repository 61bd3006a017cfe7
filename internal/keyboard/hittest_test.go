package keyboard

import (
	"testing"

	"airkeys/internal/collision"
	"airkeys/internal/pointer"

	"github.com/stretchr/testify/assert"
)

func twoKeys() []PlacedKey {
	return ComputeLayout(NewRows([][]string{{"A", "B"}}), collision.Point{}, Size{W: 50, H: 50}, 0)
}

func TestHitTestBoundaries(t *testing.T) {
	keys := twoKeys()

	tests := []struct {
		name    string
		p       collision.Point
		want    string
		wantHit bool
	}{
		{"inside A", collision.Point{X: 10, Y: 10}, "A", true},
		{"inside B", collision.Point{X: 60, Y: 10}, "B", true},
		{"shared edge", collision.Point{X: 50, Y: 10}, "", false},
		{"left edge of A", collision.Point{X: 0, Y: 10}, "", false},
		{"right edge of B", collision.Point{X: 100, Y: 10}, "", false},
		{"top edge", collision.Point{X: 10, Y: 0}, "", false},
		{"bottom edge", collision.Point{X: 10, Y: 50}, "", false},
		{"below keyboard", collision.Point{X: 10, Y: 80}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := HitTest(tt.p, keys)
			assert.Equal(t, tt.wantHit, ok)
			assert.Equal(t, tt.want, got.Label)
		})
	}
}

func TestHitTestFirstMatchWins(t *testing.T) {
	keys := []PlacedKey{
		{Key: KeySpec{Label: "first", Row: 0, Col: 0}, Box: collision.NewBox(0, 0, 100, 100)},
		{Key: KeySpec{Label: "second", Row: 0, Col: 1}, Box: collision.NewBox(50, 50, 100, 100)},
	}

	for i := 0; i < 10; i++ {
		got, ok := HitTest(collision.Point{X: 75, Y: 75}, keys)
		assert.True(t, ok)
		assert.Equal(t, "first", got.Label)
	}
}

func TestHitSample(t *testing.T) {
	keys := twoKeys()

	got, ok := HitSample(pointer.At(60, 10), keys)
	assert.True(t, ok)
	assert.Equal(t, "B", got.Label)

	_, ok = HitSample(pointer.None(), keys)
	assert.False(t, ok)

	// An absent sample never hits, even if its stale coordinates would.
	_, ok = HitSample(pointer.Sample{X: 10, Y: 10}, keys)
	assert.False(t, ok)
}

func TestFind(t *testing.T) {
	keys := twoKeys()

	pk, ok := Find(KeySpec{Label: "B", Row: 0, Col: 1}, keys)
	assert.True(t, ok)
	assert.Equal(t, 50, pk.Box.X1)

	_, ok = Find(KeySpec{Label: "B", Row: 1, Col: 1}, keys)
	assert.False(t, ok)
}
