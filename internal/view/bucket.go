package view

// Level is a discrete step of the stepped progress display.
type Level int

const (
	LevelStarted Level = iota // progress < 0.25
	LevelQuarter              // 0.25 <= progress < 0.5
	LevelHalf                 // 0.5 <= progress < 0.75
	LevelThreeQuarters        // 0.75 <= progress < 1.0
	LevelComplete             // progress >= 1.0
)

// Thresholds at which Bucket moves up a level.
var Thresholds = [...]float64{0.25, 0.5, 0.75, 1.0}

// barsPerLevel is how many bars each reached level adds to the chart.
const barsPerLevel = 4

// levelHeights is the bar height (out of 100) contributed by each level.
var levelHeights = [...]int{10, 40, 60, 90, 100}

// Bucket maps a progress ratio onto a Level.
func Bucket(progress float64) Level {
	lvl := LevelStarted
	for _, th := range Thresholds {
		if progress < th {
			break
		}
		lvl++
	}
	return lvl
}

// BarHeights returns the bar chart data for a level: one group of
// barsPerLevel bars for every level reached, growing taller each step.
func BarHeights(l Level) []int {
	if l < LevelStarted {
		l = LevelStarted
	}
	if l > LevelComplete {
		l = LevelComplete
	}
	out := make([]int, 0, int(l+1)*barsPerLevel)
	for i := 0; i <= int(l); i++ {
		for j := 0; j < barsPerLevel; j++ {
			out = append(out, levelHeights[i])
		}
	}
	return out
}
