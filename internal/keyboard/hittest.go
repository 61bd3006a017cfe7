package keyboard

import (
	"airkeys/internal/collision"
	"airkeys/internal/pointer"
)

// HitTest returns the first key in layout order whose box strictly contains p
func HitTest(p collision.Point, keys []PlacedKey) (KeySpec, bool) {
	for _, k := range keys {
		if k.Box.Contains(p) {
			return k.Key, true
		}
	}
	return KeySpec{}, false
}

// HitSample hit-tests a pointer sample. An absent sample never hits.
func HitSample(s pointer.Sample, keys []PlacedKey) (KeySpec, bool) {
	if !s.Present {
		return KeySpec{}, false
	}
	return HitTest(s.Point(), keys)
}

// Find returns the placed key for k, used by renderers to highlight the hovered key
func Find(k KeySpec, keys []PlacedKey) (PlacedKey, bool) {
	for _, pk := range keys {
		if pk.Key == k {
			return pk, true
		}
	}
	return PlacedKey{}, false
}
