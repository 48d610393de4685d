package tui

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// Sounder plays short feedback tones.
type Sounder interface {
	Win()
	Lose()
	Reject()
}

// NopSounder is silent.
type NopSounder struct{}

func (NopSounder) Win()    {}
func (NopSounder) Lose()   {}
func (NopSounder) Reject() {}

const sampleRate = beep.SampleRate(44100)

type beepSounder struct{}

// NewBeepSounder opens the default audio device. Callers should fall back
// to NopSounder on error; a missing device is not fatal.
func NewBeepSounder() (Sounder, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return beepSounder{}, nil
}

func (beepSounder) Win() {
	play(tone(660, 80*time.Millisecond), tone(880, 120*time.Millisecond))
}

func (beepSounder) Lose() {
	play(tone(220, 250*time.Millisecond))
}

func (beepSounder) Reject() {
	play(tone(110, 60*time.Millisecond))
}

func tone(freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil
	}
	return beep.Take(sampleRate.N(d), sine)
}

func play(parts ...beep.Streamer) {
	for _, p := range parts {
		if p == nil {
			return
		}
	}
	speaker.Play(beep.Seq(parts...))
}
