package keyboard

import "airkeys/internal/collision"

// ComputeLayout places every key of rows on screen.
// Row i sits at origin.Y + i*(h+gap); keys in a row run left to right from origin.X,
// each advancing the cursor by its own width plus gap. The result follows row/column
// order, which hit-testing relies on for its tie-break.
func ComputeLayout(rows []Row, origin collision.Point, keySize Size, gap int) []PlacedKey {
	count := 0
	for _, row := range rows {
		count += len(row)
	}

	placed := make([]PlacedKey, 0, count)
	for i, row := range rows {
		y := origin.Y + i*(keySize.H+gap)
		x := origin.X
		for _, key := range row {
			w := keySize.W * WidthMultiplier(key.Label)
			placed = append(placed, PlacedKey{
				Key: key,
				Box: collision.NewBox(x, y, w, keySize.H),
			})
			x += w + gap
		}
	}
	return placed
}
