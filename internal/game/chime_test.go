package game

import (
	"math"
	"testing"
	"time"

	"github.com/faiface/beep"
)

func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
			if buf[i][0] != buf[i][1] {
				panic("channels differ")
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestToneLength(t *testing.T) {
	sr := beep.SampleRate(8000)
	n, peak := drain(tone(sr, 440, 250*time.Millisecond))
	if want := sr.N(250 * time.Millisecond); n != want {
		t.Errorf("samples = %d, want %d", n, want)
	}
	if peak <= 0 || peak > 0.25 {
		t.Errorf("peak = %v, want in (0, 0.25]", peak)
	}
}

func TestMelodyLength(t *testing.T) {
	sr := beep.SampleRate(8000)
	want := 0
	for _, note := range chimeNotes {
		want += sr.N(note.dur)
	}
	if n, _ := drain(melody(sr)); n != want {
		t.Errorf("samples = %d, want %d", n, want)
	}
}

func TestChimeMuteWithoutSpeaker(t *testing.T) {
	c := newChime(nil)
	if !c.ToggleMute() {
		t.Error("first toggle should mute")
	}
	c.Play()
	if c.initDone {
		t.Error("muted chime initialized the speaker")
	}
	if c.ToggleMute() {
		t.Error("second toggle should unmute")
	}
}
