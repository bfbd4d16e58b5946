package audio

import (
	"encoding/binary"
	"fmt"

	"github.com/hammamikhairi/ottotimer/internal/domain"
)

const wavHeaderSize = 44

// EncodeWAV wraps 16-bit little-endian PCM samples in a minimal RIFF/WAVE
// container.
func EncodeWAV(samples []int16, sampleRate, channels int) []byte {
	dataSize := len(samples) * 2
	buf := make([]byte, wavHeaderSize+dataSize)

	copy(buf[0:4], "RIFF")
	binary.LittleEndian.PutUint32(buf[4:8], uint32(36+dataSize))
	copy(buf[8:12], "WAVE")

	copy(buf[12:16], "fmt ")
	binary.LittleEndian.PutUint32(buf[16:20], 16)
	binary.LittleEndian.PutUint16(buf[20:22], 1) // PCM
	binary.LittleEndian.PutUint16(buf[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(buf[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(buf[28:32], uint32(sampleRate*channels*BitDepth/8))
	binary.LittleEndian.PutUint16(buf[32:34], uint16(channels*BitDepth/8))
	binary.LittleEndian.PutUint16(buf[34:36], BitDepth)

	copy(buf[36:40], "data")
	binary.LittleEndian.PutUint32(buf[40:44], uint32(dataSize))

	for i, s := range samples {
		binary.LittleEndian.PutUint16(buf[wavHeaderSize+i*2:], uint16(s))
	}
	return buf
}

// ExtractPCM strips the RIFF header and returns the raw PCM payload of
// the first data chunk.
func ExtractPCM(wav []byte) ([]byte, error) {
	if len(wav) < wavHeaderSize {
		return nil, fmt.Errorf("%w: %d bytes is too short", domain.ErrInvalidWAV, len(wav))
	}
	if string(wav[0:4]) != "RIFF" || string(wav[8:12]) != "WAVE" {
		return nil, fmt.Errorf("%w: missing RIFF/WAVE header", domain.ErrInvalidWAV)
	}

	pos := 12
	for pos+8 <= len(wav) {
		chunkID := string(wav[pos : pos+4])
		chunkSize := int(binary.LittleEndian.Uint32(wav[pos+4 : pos+8]))

		if chunkID == "data" {
			start := pos + 8
			end := start + chunkSize
			if end > len(wav) {
				end = len(wav)
			}
			return wav[start:end], nil
		}

		pos += 8 + chunkSize
		// Chunks are word-aligned.
		if chunkSize%2 != 0 {
			pos++
		}
	}

	return nil, fmt.Errorf("%w: data chunk not found", domain.ErrInvalidWAV)
}
