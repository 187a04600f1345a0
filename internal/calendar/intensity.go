package calendar

// Level is a day's commit-volume bucket, from no activity to the hottest
// color the renderer has.
type Level int

const (
	LevelZero Level = iota
	LevelLow
	LevelMedium
	LevelHigh
	LevelMax
)

func (l Level) String() string {
	switch l {
	case LevelZero:
		return "zero"
	case LevelLow:
		return "low"
	case LevelMedium:
		return "medium"
	case LevelHigh:
		return "high"
	case LevelMax:
		return "max"
	default:
		return "unknown"
	}
}

// Threshold assigns a level to every count >= MinCount, until a higher
// threshold takes over.
type Threshold struct {
	MinCount int
	Level    Level
}

// Scale is an ascending list of thresholds. It must start at MinCount 0
// so that Classify is total over nonnegative counts.
type Scale []Threshold

// DefaultScale matches the GitHub-style banding: a single commit already
// shows, 6+ saturates.
func DefaultScale() Scale {
	return Scale{
		{MinCount: 0, Level: LevelZero},
		{MinCount: 1, Level: LevelLow},
		{MinCount: 2, Level: LevelMedium},
		{MinCount: 4, Level: LevelHigh},
		{MinCount: 6, Level: LevelMax},
	}
}

// Classify maps a commit count to its level: the last threshold whose
// MinCount does not exceed the count wins.
func (s Scale) Classify(count int) Level {
	level := LevelZero
	for _, t := range s {
		if count < t.MinCount {
			break
		}
		level = t.Level
	}
	return level
}
