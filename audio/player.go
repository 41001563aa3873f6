package audio

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player plays the game's sound cues. A nil or disabled player is silent,
// so callers never need to check whether audio came up.
type Player struct {
	enabled bool
}

// NewPlayer initializes the speaker. Failure is not fatal: it is logged
// and the returned player stays silent.
func NewPlayer() *Player {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without sound)", err)
		return &Player{}
	}
	return &Player{enabled: true}
}

// NewMutedPlayer returns a player that never makes a sound.
func NewMutedPlayer() *Player {
	return &Player{}
}

// PlayEat plays the short blip for eating food.
func (p *Player) PlayEat() {
	p.play(NewTone(880, 50*time.Millisecond, WaveSine, sampleRate))
}

// PlayDeath plays the low tone for a self-collision.
func (p *Player) PlayDeath() {
	p.play(NewTone(110, 400*time.Millisecond, WaveSquare, sampleRate))
}

func (p *Player) play(s beep.Streamer) {
	if p == nil || !p.enabled {
		return
	}
	speaker.Play(s)
}
