package audio

import (
	"github.com/hammamikhairi/ottotimer/internal/domain"
	"github.com/hammamikhairi/ottotimer/internal/logger"
)

// Compile-time interface check.
var _ Backend = (*Silent)(nil)

// Silent is a backend that plays nothing. Used with -audio none.
type Silent struct {
	log *logger.Logger
}

// NewSilent creates a silent backend.
func NewSilent(log *logger.Logger) *Silent {
	return &Silent{log: log}
}

// Play logs the cue and returns.
func (s *Silent) Play(cue domain.Cue) error {
	if cue != domain.CueAlarm {
		return domain.ErrUnknownCue
	}
	s.log.Debug("silent audio: would play %s", cue)
	return nil
}

// ActiveVoices is always zero.
func (s *Silent) ActiveVoices() int { return 0 }

// Close does nothing.
func (s *Silent) Close() error { return nil }
