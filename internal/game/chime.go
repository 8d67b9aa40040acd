package game

import (
	"log/slog"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const chimeSampleRate = beep.SampleRate(44100)

// chimeNotes is a rising C major arpeggio.
var chimeNotes = []struct {
	freq float64
	dur  time.Duration
}{
	{523.25, 140 * time.Millisecond},
	{659.25, 140 * time.Millisecond},
	{783.99, 140 * time.Millisecond},
	{1046.50, 420 * time.Millisecond},
}

// chime plays the celebration sound. The speaker is initialized on first use;
// if that fails (no audio device) the chime stays silent.
type chime struct {
	logger   *slog.Logger
	ctrl     *beep.Ctrl
	muted    bool
	initDone bool
	disabled bool
}

func newChime(logger *slog.Logger) *chime {
	return &chime{logger: logger}
}

func (c *chime) Play() {
	if c.muted || c.disabled {
		return
	}
	if !c.initDone {
		if err := speaker.Init(chimeSampleRate, chimeSampleRate.N(time.Second/20)); err != nil {
			c.logger.Warn("audio unavailable, chime disabled", "err", err)
			c.disabled = true
			return
		}
		c.initDone = true
	}

	// Clear takes the speaker lock itself.
	speaker.Clear()
	ctrl := &beep.Ctrl{Streamer: melody(chimeSampleRate), Paused: false}
	c.ctrl = ctrl
	speaker.Play(beep.Seq(ctrl, beep.Callback(func() {
		c.logger.Debug("chime finished")
	})))
}

// ToggleMute flips the mute state, pausing a chime that is playing, and
// returns the new state.
func (c *chime) ToggleMute() bool {
	if c.initDone {
		speaker.Lock()
		defer speaker.Unlock()
	}
	c.muted = !c.muted
	if c.ctrl != nil {
		c.ctrl.Paused = c.muted
	}
	return c.muted
}

func melody(sr beep.SampleRate) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(chimeNotes))
	for _, n := range chimeNotes {
		notes = append(notes, tone(sr, n.freq, n.dur))
	}
	return beep.Seq(notes...)
}

// tone is a sine wave of freq Hz lasting d, with a short attack and a linear
// release so notes do not click.
func tone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	total := sr.N(d)
	attack := sr.N(5 * time.Millisecond)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for ; n < len(samples) && pos < total; n++ {
			env := 1 - float64(pos)/float64(total)
			if pos < attack {
				env *= float64(pos) / float64(attack)
			}
			v := 0.25 * env * math.Sin(2*math.Pi*freq*float64(pos)/float64(sr))
			samples[n][0] = v
			samples[n][1] = v
			pos++
		}
		return n, true
	})
}
