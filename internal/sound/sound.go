// Package sound plays synthesized feedback tones for clicks.
package sound

import (
	"fmt"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/brain-visualization/internal/brain"
	"github.com/iburimskiy/brain-visualization/internal/config"
)

// Player mixes click tones into the speaker and meters its output.
type Player struct {
	sr     beep.SampleRate
	mixer  *beep.Mixer
	tap    *levelTap
	out    beep.Streamer
	volume float64

	lock, unlock func()
}

// New initializes the speaker and starts streaming silence.
func New(volume float64) (*Player, error) {
	sr := beep.SampleRate(config.SampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	p := newPlayer(sr, volume)
	p.lock, p.unlock = speaker.Lock, speaker.Unlock
	speaker.Play(p.out)
	return p, nil
}

func newPlayer(sr beep.SampleRate, volume float64) *Player {
	mixer := &beep.Mixer{}
	tap := newLevelTap(mixer, config.TapRingSize)
	return &Player{
		sr:     sr,
		mixer:  mixer,
		tap:    tap,
		out:    &effects.Gain{Streamer: tap, Gain: volume - 1},
		volume: volume,
		lock:   func() {},
		unlock: func() {},
	}
}

// Click queues the tones for a click result.
func (p *Player) Click(res brain.ClickResult, attract bool) {
	if res.Shockwaves == 0 {
		return
	}
	p.lock()
	defer p.unlock()
	p.mixer.Add(clickTone(p.sr, attract))
	if res.Double {
		p.mixer.Add(modeTone(p.sr))
	}
}

// Level is the recent output loudness in [0,1].
func (p *Player) Level() float64 {
	return p.tap.level(config.LevelWindow)
}

// Close stops playback.
func (p *Player) Close() {
	p.lock()
	p.mixer.Clear()
	p.unlock()
	speaker.Clear()
}
