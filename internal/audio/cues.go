package audio

import (
	"fmt"

	"github.com/hammamikhairi/ottotimer/internal/domain"
)

// cueLibrary maps each cue to its PCM payload.
type cueLibrary map[domain.Cue][]byte

// loadCues builds the PCM for every known cue at the given sample rate.
func loadCues(sampleRate int) (cueLibrary, error) {
	pcm, err := ExtractPCM(AlarmWAV(sampleRate))
	if err != nil {
		return nil, fmt.Errorf("loading alarm: %w", err)
	}
	return cueLibrary{domain.CueAlarm: pcm}, nil
}

func (l cueLibrary) get(cue domain.Cue) ([]byte, error) {
	pcm, ok := l[cue]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownCue, cue)
	}
	return pcm, nil
}
