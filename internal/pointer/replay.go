package pointer

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrEmptyTrace is returned when a trace file holds no steps
var ErrEmptyTrace = errors.New("pointer trace has no steps")

// TraceStep is one recorded pointer reading
type TraceStep struct {
	T      float64 `yaml:"t"` // Seconds since start
	X      int     `yaml:"x"`
	Y      int     `yaml:"y"`
	Absent bool    `yaml:"absent,omitempty"`
}

// Trace is a recorded pointer path, as stored on disk
type Trace struct {
	Steps []TraceStep `yaml:"steps"`
	End   float64     `yaml:"end,omitempty"` // Seconds; 0 means the last step holds forever
}

// Replay plays a recorded trace back as a Source
type Replay struct {
	steps []TraceStep
	end   time.Duration
}

// NewReplay creates a replay source. Steps are sorted by time.
func NewReplay(trace Trace) (*Replay, error) {
	if len(trace.Steps) == 0 {
		return nil, ErrEmptyTrace
	}
	steps := make([]TraceStep, len(trace.Steps))
	copy(steps, trace.Steps)
	sort.SliceStable(steps, func(i, j int) bool { return steps[i].T < steps[j].T })

	return &Replay{
		steps: steps,
		end:   seconds(trace.End),
	}, nil
}

// LoadReplay reads a YAML trace file
func LoadReplay(filename string) (*Replay, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read trace %s: %w", filename, err)
	}

	var trace Trace
	if err := yaml.Unmarshal(data, &trace); err != nil {
		return nil, fmt.Errorf("parse trace %s: %w", filename, err)
	}

	replay, err := NewReplay(trace)
	if err != nil {
		return nil, fmt.Errorf("trace %s: %w", filename, err)
	}
	return replay, nil
}

// Sample returns the latest step at or before now
func (r *Replay) Sample(frameW, frameH int, now time.Duration) Sample {
	if r.end > 0 && now > r.end {
		return None()
	}

	idx := sort.Search(len(r.steps), func(i int) bool {
		return seconds(r.steps[i].T) > now
	}) - 1
	if idx < 0 {
		return None()
	}

	step := r.steps[idx]
	if step.Absent {
		return None()
	}
	return At(step.X, step.Y)
}

// Duration returns the time of the final step, or the configured end if later
func (r *Replay) Duration() time.Duration {
	last := seconds(r.steps[len(r.steps)-1].T)
	if r.end > last {
		return r.end
	}
	return last
}

// Times returns every step time, for drivers that replay a trace frame by frame
func (r *Replay) Times() []time.Duration {
	times := make([]time.Duration, len(r.steps))
	for i, step := range r.steps {
		times[i] = seconds(step.T)
	}
	return times
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
