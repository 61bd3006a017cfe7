package keyboard

import (
	"testing"

	"airkeys/internal/collision"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultGeometry = Geometry{
	Origin:  collision.Point{X: 50, Y: 150},
	KeySize: Size{W: 50, H: 50},
	Gap:     8,
}

func layoutQWERTY() []PlacedKey {
	return ComputeLayout(NewRows(QWERTY), defaultGeometry.Origin, defaultGeometry.KeySize, defaultGeometry.Gap)
}

func TestNewRowsAssignsIndices(t *testing.T) {
	rows := NewRows([][]string{{"A", "B"}, {LabelSpace}})

	require.Len(t, rows, 2)
	assert.Equal(t, Row{{Label: "A", Row: 0, Col: 0}, {Label: "B", Row: 0, Col: 1}}, rows[0])
	assert.Equal(t, Row{{Label: LabelSpace, Row: 1, Col: 0}}, rows[1])
}

func TestComputeLayoutOnePlacedKeyPerSpec(t *testing.T) {
	keys := layoutQWERTY()

	total := 0
	for _, row := range QWERTY {
		total += len(row)
	}
	require.Len(t, keys, total)

	// Output follows row/column order.
	i := 0
	for r, row := range QWERTY {
		for c, label := range row {
			assert.Equal(t, KeySpec{Label: label, Row: r, Col: c}, keys[i].Key)
			i++
		}
	}
}

func TestComputeLayoutIsDeterministic(t *testing.T) {
	assert.Equal(t, layoutQWERTY(), layoutQWERTY())
}

func TestComputeLayoutRowPositions(t *testing.T) {
	for _, k := range layoutQWERTY() {
		wantY := 150 + k.Key.Row*(50+8)
		assert.Equal(t, wantY, k.Box.Y1, "key %s", k.Key)
		assert.Equal(t, 50, k.Box.Height(), "key %s", k.Key)
	}
}

func TestComputeLayoutWidthRule(t *testing.T) {
	for _, k := range layoutQWERTY() {
		want := 50
		switch k.Key.Label {
		case LabelSpace:
			want = 200
		case LabelDel, LabelEnter:
			want = 100
		}
		assert.Equal(t, want, k.Box.Width(), "key %s", k.Key)
	}
}

func TestComputeLayoutActionRow(t *testing.T) {
	keys := layoutQWERTY()
	last := keys[len(keys)-3:]

	// Space starts at the origin, Del after Space+gap, Enter after Del+gap.
	assert.Equal(t, collision.Box{X1: 50, Y1: 382, X2: 250, Y2: 432}, last[0].Box)
	assert.Equal(t, collision.Box{X1: 258, Y1: 382, X2: 358, Y2: 432}, last[1].Box)
	assert.Equal(t, collision.Box{X1: 366, Y1: 382, X2: 466, Y2: 432}, last[2].Box)
}

func TestComputeLayoutNoOverlapWithinRow(t *testing.T) {
	keys := layoutQWERTY()

	for i := range keys {
		for j := i + 1; j < len(keys); j++ {
			if keys[i].Key.Row != keys[j].Key.Row {
				continue
			}
			assert.False(t, keys[i].Box.Overlaps(keys[j].Box), "%s overlaps %s", keys[i].Key, keys[j].Key)
		}
	}
}

func TestComputeLayoutZeroGapSharesEdges(t *testing.T) {
	keys := ComputeLayout(NewRows([][]string{{"A", "B"}}), collision.Point{}, Size{W: 50, H: 50}, 0)

	require.Len(t, keys, 2)
	assert.Equal(t, collision.Box{X1: 0, Y1: 0, X2: 50, Y2: 50}, keys[0].Box)
	assert.Equal(t, collision.Box{X1: 50, Y1: 0, X2: 100, Y2: 50}, keys[1].Box)
	assert.False(t, keys[0].Box.Overlaps(keys[1].Box))
}

func TestComputeLayoutEmpty(t *testing.T) {
	assert.Empty(t, ComputeLayout(nil, collision.Point{}, Size{W: 50, H: 50}, 8))
}

func TestWidthMultiplier(t *testing.T) {
	assert.Equal(t, 4, WidthMultiplier(LabelSpace))
	assert.Equal(t, 2, WidthMultiplier(LabelDel))
	assert.Equal(t, 2, WidthMultiplier(LabelEnter))
	assert.Equal(t, 1, WidthMultiplier("Q"))
	assert.Equal(t, 1, WidthMultiplier("space"))
}

func TestKeySpecIsAction(t *testing.T) {
	assert.True(t, KeySpec{Label: LabelSpace}.IsAction())
	assert.True(t, KeySpec{Label: LabelDel}.IsAction())
	assert.True(t, KeySpec{Label: LabelEnter}.IsAction())
	assert.False(t, KeySpec{Label: "E"}.IsAction())
}
