package audio

import (
	"fmt"

	"github.com/hammamikhairi/ottotimer/internal/domain"
	"github.com/hammamikhairi/ottotimer/internal/logger"
)

// Backend is a cue service that holds device resources.
type Backend interface {
	domain.CueService
	Close() error
}

// Open returns the named backend. Device errors are returned as-is so
// the caller can abort startup.
func Open(name string, log *logger.Logger) (Backend, error) {
	switch name {
	case BackendOto, "":
		p, err := NewOtoPlayer(log)
		if err != nil {
			return nil, fmt.Errorf("oto: %w", err)
		}
		return p, nil
	case BackendMalgo:
		p, err := NewMalgoPlayer(log)
		if err != nil {
			return nil, fmt.Errorf("malgo: %w", err)
		}
		return p, nil
	case BackendSilent:
		return NewSilent(log), nil
	default:
		return nil, fmt.Errorf("unknown audio backend %q", name)
	}
}
