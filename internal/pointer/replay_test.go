package pointer

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReplayRejectsEmptyTrace(t *testing.T) {
	_, err := NewReplay(Trace{})
	assert.ErrorIs(t, err, ErrEmptyTrace)
}

func TestReplaySample(t *testing.T) {
	r, err := NewReplay(Trace{
		Steps: []TraceStep{
			{T: 1.0, X: 60, Y: 10},
			{T: 0.5, X: 10, Y: 10},
			{T: 2.0, Absent: true},
		},
		End: 3.0,
	})
	require.NoError(t, err)

	tests := []struct {
		name string
		now  time.Duration
		want Sample
	}{
		{"before first step", 100 * time.Millisecond, None()},
		{"at first step", 500 * time.Millisecond, At(10, 10)},
		{"between steps", 900 * time.Millisecond, At(10, 10)},
		{"at second step", time.Second, At(60, 10)},
		{"absent step", 2500 * time.Millisecond, None()},
		{"after end", 4 * time.Second, None()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Sample(640, 480, tt.now))
		})
	}
}

func TestReplayHoldsLastStepWithoutEnd(t *testing.T) {
	r, err := NewReplay(Trace{Steps: []TraceStep{{T: 0, X: 5, Y: 6}}})
	require.NoError(t, err)

	assert.Equal(t, At(5, 6), r.Sample(640, 480, time.Hour))
	assert.Equal(t, time.Duration(0), r.Duration())
}

func TestReplayTimesAreSorted(t *testing.T) {
	r, err := NewReplay(Trace{Steps: []TraceStep{{T: 1.5}, {T: 0.25}}, End: 2})
	require.NoError(t, err)

	assert.Equal(t, []time.Duration{250 * time.Millisecond, 1500 * time.Millisecond}, r.Times())
	assert.Equal(t, 2*time.Second, r.Duration())
}

func TestLoadReplay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trace.yaml")
	content := `steps:
  - {t: 0.0, x: 10, y: 10}
  - {t: 0.6, x: 10, y: 10}
  - {t: 1.1, absent: true}
end: 2.0
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	r, err := LoadReplay(path)
	require.NoError(t, err)

	assert.Equal(t, At(10, 10), r.Sample(640, 480, 700*time.Millisecond))
	assert.Equal(t, None(), r.Sample(640, 480, 1200*time.Millisecond))
}

func TestLoadReplayErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadReplay(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("steps: []\n"), 0o644))
	_, err = LoadReplay(empty)
	assert.ErrorIs(t, err, ErrEmptyTrace)

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("steps: [\n"), 0o644))
	_, err = LoadReplay(broken)
	assert.Error(t, err)
}
