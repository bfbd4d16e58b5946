package audio

import (
	"encoding/binary"
	"math"
)

// voice is one sound being played by a software mixer.
type voice struct {
	pcm []byte
	pos int
}

func (v *voice) done() bool { return v.pos+1 >= len(v.pcm) }

// mixVoices fills out with the saturating sum of all voices, advancing
// each of them by len(out) bytes, and returns the voices that still have
// samples left. Everything is 16-bit little-endian PCM.
func mixVoices(out []byte, voices []*voice) []*voice {
	n := len(out) &^ 1
	for i := 0; i < n; i += 2 {
		var acc int32
		for _, v := range voices {
			if p := v.pos + i; p+1 < len(v.pcm) {
				acc += int32(int16(binary.LittleEndian.Uint16(v.pcm[p:])))
			}
		}
		if acc > math.MaxInt16 {
			acc = math.MaxInt16
		} else if acc < math.MinInt16 {
			acc = math.MinInt16
		}
		binary.LittleEndian.PutUint16(out[i:], uint16(int16(acc)))
	}

	live := voices[:0]
	for _, v := range voices {
		v.pos += n
		if !v.done() {
			live = append(live, v)
		}
	}
	return live
}
