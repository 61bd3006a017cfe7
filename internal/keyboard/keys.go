// Package keyboard computes where every key of the on-screen keyboard sits
// and which key, if any, a pointer position lands on.
package keyboard

import "airkeys/internal/collision"

// Action key labels. Every other label is a single character.
const (
	LabelSpace = "Space"
	LabelDel   = "Del"
	LabelEnter = "Enter"
)

// QWERTY is the default row schema
var QWERTY = [][]string{
	{"1", "2", "3", "4", "5", "6", "7", "8", "9", "0"},
	{"Q", "W", "E", "R", "T", "Y", "U", "I", "O", "P"},
	{"A", "S", "D", "F", "G", "H", "J", "K", "L"},
	{"Z", "X", "C", "V", "B", "N", "M"},
	{LabelSpace, LabelDel, LabelEnter},
}

// KeySpec identifies a key by its label and position in the schema
type KeySpec struct {
	Label string
	Row   int
	Col   int
}

// IsAction reports whether the key is one of the named action keys
func (k KeySpec) IsAction() bool {
	switch k.Label {
	case LabelSpace, LabelDel, LabelEnter:
		return true
	}
	return false
}

func (k KeySpec) String() string {
	return k.Label
}

// Row is an ordered run of keys, placed left to right
type Row []KeySpec

// NewRows builds the key specs for a label schema, assigning row and column indices
func NewRows(labels [][]string) []Row {
	rows := make([]Row, len(labels))
	for r, rowLabels := range labels {
		row := make(Row, len(rowLabels))
		for c, label := range rowLabels {
			row[c] = KeySpec{Label: label, Row: r, Col: c}
		}
		rows[r] = row
	}
	return rows
}

// PlacedKey is a key together with its bounding box for the current frame
type PlacedKey struct {
	Key KeySpec
	Box collision.Box
}

// Size is a width/height pair in pixels
type Size struct {
	W, H int
}

// WidthMultiplier returns how many base key widths a key with this label spans
func WidthMultiplier(label string) int {
	switch label {
	case LabelSpace:
		return 4
	case LabelDel, LabelEnter:
		return 2
	default:
		return 1
	}
}
