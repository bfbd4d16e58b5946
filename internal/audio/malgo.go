package audio

import (
	"fmt"
	"sync"

	"github.com/gen2brain/malgo"
	"github.com/hammamikhairi/ottotimer/internal/domain"
	"github.com/hammamikhairi/ottotimer/internal/logger"
)

// Compile-time interface check.
var _ Backend = (*MalgoPlayer)(nil)

// MalgoPlayer plays cues through a single miniaudio playback device.
// The device runs continuously; its data callback mixes whatever voices
// are active and outputs silence otherwise.
type MalgoPlayer struct {
	ctx    *malgo.AllocatedContext
	device *malgo.Device
	cues   cueLibrary
	log    *logger.Logger

	mu     sync.Mutex
	voices []*voice
}

// NewMalgoPlayer opens the default playback device.
func NewMalgoPlayer(log *logger.Logger) (*MalgoPlayer, error) {
	cues, err := loadCues(SampleRate)
	if err != nil {
		return nil, err
	}

	p := &MalgoPlayer{cues: cues, log: log}

	mCtx, err := malgo.InitContext(nil, malgo.ContextConfig{}, func(msg string) {
		log.Debug("malgo: %s", msg)
	})
	if err != nil {
		return nil, fmt.Errorf("init audio context: %w", err)
	}
	p.ctx = mCtx

	devCfg := malgo.DefaultDeviceConfig(malgo.Playback)
	devCfg.SampleRate = SampleRate
	devCfg.Playback.Format = malgo.FormatS16
	devCfg.Playback.Channels = ChannelCount
	devCfg.Alsa.NoMMap = 1

	callbacks := malgo.DeviceCallbacks{
		Data: p.fill,
	}

	device, err := malgo.InitDevice(mCtx.Context, devCfg, callbacks)
	if err != nil {
		p.freeContext()
		return nil, fmt.Errorf("init playback device: %w", err)
	}
	p.device = device

	if err := device.Start(); err != nil {
		device.Uninit()
		p.freeContext()
		return nil, fmt.Errorf("start playback device: %w", err)
	}

	log.Debug("malgo player initialized (rate=%d, channels=%d)", SampleRate, ChannelCount)
	return p, nil
}

// fill is the device data callback. It runs on the audio thread.
func (p *MalgoPlayer) fill(out, _ []byte, _ uint32) {
	p.mu.Lock()
	p.voices = mixVoices(out, p.voices)
	p.mu.Unlock()
}

// Play queues the cue on the mixer and returns immediately.
func (p *MalgoPlayer) Play(cue domain.Cue) error {
	pcm, err := p.cues.get(cue)
	if err != nil {
		return err
	}

	p.mu.Lock()
	p.voices = append(p.voices, &voice{pcm: pcm})
	n := len(p.voices)
	p.mu.Unlock()

	p.log.Debug("malgo player: playing %s (voices=%d)", cue, n)
	return nil
}

// ActiveVoices returns how many cues have samples left to play.
func (p *MalgoPlayer) ActiveVoices() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.voices)
}

// Close stops the device and releases the context.
func (p *MalgoPlayer) Close() error {
	var firstErr error
	if p.device != nil {
		if err := p.device.Stop(); err != nil {
			firstErr = err
		}
		p.device.Uninit()
		p.device = nil
	}
	p.freeContext()

	p.mu.Lock()
	p.voices = nil
	p.mu.Unlock()
	return firstErr
}

func (p *MalgoPlayer) freeContext() {
	if p.ctx == nil {
		return
	}
	if err := p.ctx.Uninit(); err != nil {
		p.log.Warn("malgo: uninit context: %v", err)
	}
	p.ctx.Free()
	p.ctx = nil
}
