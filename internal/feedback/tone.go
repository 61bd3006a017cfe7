package feedback

import (
	"bytes"
	"encoding/binary"
	"math"
	"sync"
	"time"

	"github.com/StantStantov/rps/swamp/logging"
	"github.com/StantStantov/rps/swamp/logging/logfmt"
	"github.com/ebitengine/oto/v3"
)

// Audio format of the generated click.
const (
	SampleRate   = 44100
	ChannelCount = 2
)

// ToneConfig describes the click sound
type ToneConfig struct {
	Frequency float64       // Hz
	Duration  time.Duration // Length of the click
	Volume    float64       // 0.0 to 1.0
}

// Tone plays a generated sine click through the system audio device
type Tone struct {
	ctx    *oto.Context
	pcm    []byte
	logger *logging.Logger

	mu     sync.Mutex
	active *oto.Player // last started click, nil before the first one
}

// NewTone opens the audio device and renders the click once.
// Returns an error if the audio device is unavailable.
func NewTone(cfg ToneConfig, logger *logging.Logger) (*Tone, error) {
	op := &oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: ChannelCount,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-readyChan

	childLogger := logging.NewChildLogger(logger, func(event *logging.Event) {
		logfmt.String(event, "from", "feedback")
	})

	tone := &Tone{
		ctx:    ctx,
		pcm:    RenderClick(cfg),
		logger: childLogger,
	}

	logging.GetThenSendDebug(
		tone.logger,
		"audio click initialized",
		func(event *logging.Event, level logging.Level) error {
			logfmt.Integer(event, "audio.sample_rate", SampleRate)
			logfmt.Integer(event, "audio.pcm_bytes", len(tone.pcm))
			return nil
		},
	)

	return tone, nil
}

// Click starts playback and returns immediately. A click still sounding is cut off.
func (t *Tone) Click() {
	player := t.ctx.NewPlayer(bytes.NewReader(t.pcm))

	t.mu.Lock()
	previous := t.active
	t.active = player
	t.mu.Unlock()

	if previous != nil {
		previous.Pause()
		_ = previous.Close()
	}
	player.Play()
}

// Close stops any click in progress
func (t *Tone) Close() error {
	t.mu.Lock()
	active := t.active
	t.active = nil
	t.mu.Unlock()

	if active == nil {
		return nil
	}
	active.Pause()
	return active.Close()
}

// RenderClick renders a sine burst as interleaved signed 16-bit little-endian PCM.
// The amplitude decays linearly to zero so the click ends without a pop.
func RenderClick(cfg ToneConfig) []byte {
	frames := int(cfg.Duration.Seconds() * SampleRate)
	if frames <= 0 {
		return nil
	}
	volume := math.Max(0, math.Min(1, cfg.Volume))

	buf := make([]byte, frames*ChannelCount*2)
	for i := 0; i < frames; i++ {
		envelope := 1 - float64(i)/float64(frames)
		v := math.Sin(2*math.Pi*cfg.Frequency*float64(i)/SampleRate) * volume * envelope
		sample := uint16(int16(v * math.MaxInt16))
		for ch := 0; ch < ChannelCount; ch++ {
			binary.LittleEndian.PutUint16(buf[(i*ChannelCount+ch)*2:], sample)
		}
	}
	return buf
}
