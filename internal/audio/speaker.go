// internal/audio/speaker.go
package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SampleRate is the output rate used by the speaker.
const SampleRate = beep.SampleRate(44100)

// SpeakerPlayer mixes cues into the system audio device.
type SpeakerPlayer struct {
	mixer *beep.Mixer
}

// NewSpeakerPlayer initializes the speaker and starts an always-on mixer.
func NewSpeakerPlayer() (*SpeakerPlayer, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("failed to init speaker: %w", err)
	}
	p := &SpeakerPlayer{mixer: &beep.Mixer{}}
	speaker.Play(p.mixer)
	return p, nil
}

func (p *SpeakerPlayer) Play(s beep.Streamer) {
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close stops playback and releases the device.
func (p *SpeakerPlayer) Close() {
	speaker.Clear()
	speaker.Close()
}
