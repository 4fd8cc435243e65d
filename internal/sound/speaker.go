// Package sound plays short cues for accepted moves, rejected moves and the end of a game.
package sound

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/rocketscienceinc/ricracroe/internal/entity"
)

const (
	sampleRate = beep.SampleRate(44100)
	bufferSize = 100 * time.Millisecond

	noteLength = 120 * time.Millisecond
)

// Speaker mixes cues onto the default audio device. A disabled Speaker is silent.
type Speaker struct {
	logger *slog.Logger

	mu      sync.Mutex
	mixer   *beep.Mixer
	enabled bool
}

// New opens the audio device when enabled is set. A device that cannot be
// opened leaves the Speaker disabled.
func New(logger *slog.Logger, enabled bool) *Speaker {
	that := &Speaker{
		logger: logger.With("component", "sound"),
		mixer:  &beep.Mixer{},
	}

	if !enabled {
		return that
	}

	if err := speaker.Init(sampleRate, sampleRate.N(bufferSize)); err != nil {
		that.logger.Warn("audio unavailable, continuing without sound", "error", err)
		return that
	}

	speaker.Play(that.mixer)
	that.enabled = true

	return that
}

func (that *Speaker) Enabled() bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.enabled
}

func (that *Speaker) Accepted() {
	that.play(acceptedCue())
}

func (that *Speaker) Rejected() {
	that.play(rejectedCue())
}

func (that *Speaker) Finished(outcome *entity.Outcome) {
	if outcome == nil {
		return
	}

	that.play(finishedCue(outcome))
}

// Close stops playback and releases the device.
func (that *Speaker) Close() {
	that.mu.Lock()
	defer that.mu.Unlock()

	if !that.enabled {
		return
	}

	speaker.Clear()
	speaker.Close()
	that.enabled = false
}

func (that *Speaker) play(cue beep.Streamer) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if !that.enabled {
		return
	}

	speaker.Lock()
	that.mixer.Add(cue)
	speaker.Unlock()
}

func acceptedCue() beep.Streamer {
	return melody(sampleRate, noteLength/2, 660)
}

func rejectedCue() beep.Streamer {
	return melody(sampleRate, noteLength, 180)
}

func finishedCue(outcome *entity.Outcome) beep.Streamer {
	if outcome.IsDraw() {
		return melody(sampleRate, noteLength, 440, 330)
	}

	return melody(sampleRate, noteLength, 523.25, 659.25, 783.99)
}
