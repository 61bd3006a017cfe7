package pointer

// Hand landmark indices following the MediaPipe convention.
const (
	IndexWrist     = 0
	IndexFingertip = 8
	NumLandmarks   = 21
)

// Landmark is a detector output point normalized to [0,1] across the frame
type Landmark struct {
	X, Y float64
}

// FromLandmark converts a normalized landmark into a pixel sample.
// mirror flips the x axis, matching a selfie-view camera frame.
func FromLandmark(lm Landmark, frameW, frameH int, mirror bool) Sample {
	x := lm.X
	if mirror {
		x = 1 - x
	}
	return At(int(x*float64(frameW)), int(lm.Y*float64(frameH)))
}

// FromHand picks the fingertip out of a full landmark set.
// A set too short to contain the fingertip yields an absent sample.
func FromHand(landmarks []Landmark, frameW, frameH int, mirror bool) Sample {
	if len(landmarks) <= IndexFingertip {
		return None()
	}
	return FromLandmark(landmarks[IndexFingertip], frameW, frameH, mirror)
}
