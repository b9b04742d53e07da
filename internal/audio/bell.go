// Package audio plays a short tone when the simulation pauses itself.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// SampleRate is used for both the speaker and the generated tones.
const SampleRate = beep.SampleRate(44100)

// Tone frequencies per auto-pause reason.
var tones = map[string]float64{
	"extinct": 440,
	"stable":  880,
}

// Bell implements app.Notifier. The speaker is opened on first use.
type Bell struct {
	duration time.Duration

	once    sync.Once
	opened  bool
	initErr error
}

// NewBell returns a bell ringing for d per notification.
func NewBell(d time.Duration) *Bell {
	if d <= 0 {
		d = 80 * time.Millisecond
	}
	return &Bell{duration: d}
}

// Tone builds the streamer for a pause reason.
func Tone(reason string, d time.Duration) (beep.Streamer, error) {
	freq, ok := tones[reason]
	if !ok {
		freq = 660
	}
	sine, err := generators.SineTone(SampleRate, freq)
	if err != nil {
		return nil, fmt.Errorf("tone %q: %w", reason, err)
	}
	return beep.Take(SampleRate.N(d), sine), nil
}

// Init opens the speaker. Later calls return the first result.
func (b *Bell) Init() error {
	b.once.Do(func() {
		b.initErr = speaker.Init(SampleRate, SampleRate.N(time.Second/10))
		b.opened = b.initErr == nil
	})
	return b.initErr
}

// AutoPaused rings the tone for reason. Audio failures are silent; Init
// reports them up front.
func (b *Bell) AutoPaused(reason string) {
	if b.Init() != nil {
		return
	}
	s, err := Tone(reason, b.duration)
	if err != nil {
		return
	}
	speaker.Play(s)
}

// Close releases the speaker if it was opened.
func (b *Bell) Close() {
	if b.opened {
		speaker.Close()
		b.opened = false
	}
}
