package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrInputClosed = errors.New("input closed")
	ErrUnknownCue  = errors.New("unknown cue")
	ErrInvalidWAV  = errors.New("invalid wav data")
	ErrNotRunning  = errors.New("not running")
)
