package audio

import (
	"bytes"
	"sync"

	"github.com/ebitengine/oto/v3"
	"github.com/hammamikhairi/ottotimer/internal/domain"
	"github.com/hammamikhairi/ottotimer/internal/logger"
)

// Compile-time interface check.
var _ Backend = (*OtoPlayer)(nil)

// OtoPlayer plays cues through oto. Every Play starts its own oto player,
// so overlapping cues are mixed by oto itself.
type OtoPlayer struct {
	ctx  *oto.Context
	cues cueLibrary
	log  *logger.Logger

	mu      sync.Mutex
	playing []*oto.Player
}

// NewOtoPlayer initializes the system audio context. Returns an error if
// the audio device is unavailable. Only one oto context may exist per
// process.
func NewOtoPlayer(log *logger.Logger) (*OtoPlayer, error) {
	cues, err := loadCues(SampleRate)
	if err != nil {
		return nil, err
	}

	op := &oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: ChannelCount,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-readyChan

	log.Debug("oto player initialized (rate=%d, channels=%d)", SampleRate, ChannelCount)
	return &OtoPlayer{ctx: ctx, cues: cues, log: log}, nil
}

// Play starts the cue and returns immediately.
func (p *OtoPlayer) Play(cue domain.Cue) error {
	pcm, err := p.cues.get(cue)
	if err != nil {
		return err
	}

	player := p.ctx.NewPlayer(bytes.NewReader(pcm))
	player.Play()

	p.mu.Lock()
	p.playing = append(p.playing, player)
	p.mu.Unlock()

	p.log.Debug("oto player: playing %s (%d bytes of PCM)", cue, len(pcm))
	return nil
}

// ActiveVoices returns how many cues are still playing. Finished players
// are closed as a side effect.
func (p *OtoPlayer) ActiveVoices() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	live := p.playing[:0]
	for _, player := range p.playing {
		if player.IsPlaying() {
			live = append(live, player)
			continue
		}
		if err := player.Close(); err != nil {
			p.log.Warn("oto player: closing finished player: %v", err)
		}
	}
	p.playing = live
	return len(live)
}

// Close stops and releases every player. The oto context itself lives
// for the rest of the process.
func (p *OtoPlayer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, player := range p.playing {
		player.Pause()
		if err := player.Close(); err != nil {
			p.log.Warn("oto player: close: %v", err)
		}
	}
	p.playing = nil
	return nil
}
