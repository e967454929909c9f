package sound

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// tone is a decaying sine with a linear pitch sweep.
type tone struct {
	sr    beep.SampleRate
	freq  float64 // Hz at start
	sweep float64 // Hz per second
	decay float64 // envelope time constant, seconds
	amp   float64
	pos   int
	total int
	phase float64
}

const attack = 0.003 // seconds

func newTone(sr beep.SampleRate, freq, sweep float64, length, decay time.Duration, amp float64) *tone {
	return &tone{
		sr:    sr,
		freq:  freq,
		sweep: sweep,
		decay: decay.Seconds(),
		amp:   amp,
		total: sr.N(length),
	}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.total {
		return 0, false
	}
	rate := float64(t.sr)
	n := 0
	for n < len(samples) && t.pos < t.total {
		sec := float64(t.pos) / rate
		env := math.Exp(-sec / t.decay)
		if sec < attack {
			env *= sec / attack
		}
		f := math.Max(20, t.freq+t.sweep*sec)
		t.phase += 2 * math.Pi * f / rate
		v := math.Sin(t.phase) * env * t.amp
		samples[n] = [2]float64{v, v}
		n++
		t.pos++
	}
	return n, true
}

func (t *tone) Err() error { return nil }

// clickTone is the short blip of a single click; attract mode sounds lower.
func clickTone(sr beep.SampleRate, attract bool) beep.Streamer {
	freq := 880.0
	if attract {
		freq = 620
	}
	return newTone(sr, freq, -1400, 180*time.Millisecond, 60*time.Millisecond, 0.5)
}

// modeTone is the rising sweep played when a double click flips the mode.
func modeTone(sr beep.SampleRate) beep.Streamer {
	return newTone(sr, 300, 2600, 350*time.Millisecond, 200*time.Millisecond, 0.45)
}
