// Package audio implements the cue service: it owns the built-in alarm
// sound and plays it through one of several backends.
package audio

// Output format shared by every backend.
const (
	SampleRate   = 24000
	ChannelCount = 1
	BitDepth     = 16
)

// Backend names accepted by Open.
const (
	BackendOto    = "oto"
	BackendMalgo  = "malgo"
	BackendSilent = "none"
)
