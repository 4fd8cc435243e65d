package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

const (
	volume = 0.2
	fade   = 5 * time.Millisecond
)

// tone is a sine wave of fixed length with a short fade at both ends.
type tone struct {
	sr    beep.SampleRate
	freq  float64
	pos   int
	total int
	fade  int
}

func newTone(sr beep.SampleRate, freq float64, d time.Duration) *tone {
	return &tone{
		sr:    sr,
		freq:  freq,
		total: sr.N(d),
		fade:  sr.N(fade),
	}
}

func (that *tone) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if that.pos >= that.total {
			return i, i > 0
		}

		t := float64(that.pos) / float64(that.sr)
		sample := volume * that.envelope() * math.Sin(2*math.Pi*that.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		that.pos++
	}

	return len(samples), true
}

func (that *tone) Err() error {
	return nil
}

func (that *tone) envelope() float64 {
	if that.fade == 0 {
		return 1
	}

	left := that.total - that.pos
	switch {
	case that.pos < that.fade:
		return float64(that.pos) / float64(that.fade)
	case left < that.fade:
		return float64(left) / float64(that.fade)
	default:
		return 1
	}
}

// melody plays notes back to back, each for d.
func melody(sr beep.SampleRate, d time.Duration, freqs ...float64) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(freqs))
	for _, freq := range freqs {
		notes = append(notes, newTone(sr, freq, d))
	}

	return beep.Seq(notes...)
}
