package audio

import (
	"math"
	"time"
)

// Alarm shape: three short beeps.
const (
	alarmFreq      = 880.0
	alarmBeeps     = 3
	alarmBeepLen   = 180 * time.Millisecond
	alarmGapLen    = 120 * time.Millisecond
	alarmFadeLen   = 5 * time.Millisecond
	alarmAmplitude = 0.45
)

// AlarmSamples synthesizes the alarm as mono 16-bit samples.
func AlarmSamples(sampleRate int) []int16 {
	beep := samplesFor(alarmBeepLen, sampleRate)
	gap := samplesFor(alarmGapLen, sampleRate)
	fade := samplesFor(alarmFadeLen, sampleRate)

	out := make([]int16, 0, alarmBeeps*(beep+gap))
	for b := 0; b < alarmBeeps; b++ {
		for i := 0; i < beep; i++ {
			env := 1.0
			if fade > 0 {
				if i < fade {
					env = float64(i) / float64(fade)
				} else if beep-i <= fade {
					env = float64(beep-i-1) / float64(fade)
				}
			}
			v := math.Sin(2*math.Pi*alarmFreq*float64(i)/float64(sampleRate)) * alarmAmplitude * env
			out = append(out, int16(v*math.MaxInt16))
		}
		if b < alarmBeeps-1 {
			out = append(out, make([]int16, gap)...)
		}
	}
	return out
}

// AlarmWAV returns the alarm as a WAV file.
func AlarmWAV(sampleRate int) []byte {
	return EncodeWAV(AlarmSamples(sampleRate), sampleRate, ChannelCount)
}

func samplesFor(d time.Duration, sampleRate int) int {
	return int(int64(d) * int64(sampleRate) / int64(time.Second))
}
