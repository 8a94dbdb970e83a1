package progression

import "fmt"

// SetsPerSession is the number of push-up sets in every session.
const SetsPerSession = 5

// ProgramWeeks and SessionsPerWeek bound the 6-week curriculum grid.
const (
	ProgramWeeks    = 6
	SessionsPerWeek = 3
)

// LevelFromMaxReps assigns the starting curriculum level from the user's
// initial max-rep test. The thresholds are a monotone step function.
func LevelFromMaxReps(maxReps int) int {
	switch {
	case maxReps <= 5:
		return 1
	case maxReps <= 10:
		return 2
	case maxReps <= 20:
		return 3
	case maxReps <= 25:
		return 4
	case maxReps <= 30:
		return 5
	case maxReps <= 35:
		return 6
	default:
		return 7
	}
}

// SessionTargets returns the five target-rep values for the given level,
// week (1-6) and session (1-3). The returned slice is a copy; mutating it
// does not touch the curriculum.
func SessionTargets(level, week, session int) ([]int, error) {
	if level < 1 || level > len(curriculum) {
		return nil, fmt.Errorf("level %d: %w", level, ErrOutOfRange)
	}
	if week < 1 || week > ProgramWeeks {
		return nil, fmt.Errorf("week %d: %w", week, ErrOutOfRange)
	}
	if session < 1 || session > SessionsPerWeek {
		return nil, fmt.Errorf("session %d: %w", session, ErrOutOfRange)
	}
	sets := curriculum[level-1][week-1][session-1]
	out := make([]int, SetsPerSession)
	copy(out, sets[:])
	return out, nil
}

// curriculum is the hand-authored progressive-overload program:
// 7 levels x 6 weeks x 3 sessions x 5 sets of target reps. The values encode
// a specific training design and are data, not a formula.
var curriculum = [7][ProgramWeeks][SessionsPerWeek][SetsPerSession]int{
	{ // level 1
		{{2, 3, 2, 2, 3}, {3, 4, 2, 3, 4}, {4, 5, 4, 4, 5}},
		{{4, 6, 4, 4, 6}, {5, 6, 4, 4, 7}, {5, 7, 5, 5, 8}},
		{{10, 12, 7, 7, 9}, {10, 12, 8, 8, 12}, {11, 13, 9, 9, 13}},
		{{12, 14, 11, 10, 16}, {14, 16, 12, 12, 18}, {16, 18, 13, 13, 20}},
		{{17, 19, 15, 15, 20}, {20, 23, 16, 16, 25}, {22, 25, 18, 18, 28}},
		{{25, 30, 20, 15, 40}, {28, 33, 25, 25, 44}, {30, 35, 28, 28, 48}},
	},
	{ // level 2
		{{3, 4, 2, 3, 4}, {4, 5, 4, 4, 5}, {5, 6, 4, 4, 6}},
		{{5, 7, 5, 5, 8}, {6, 8, 6, 6, 8}, {7, 10, 6, 6, 9}},
		{{12, 14, 11, 10, 16}, {14, 16, 12, 12, 17}, {16, 17, 14, 14, 20}},
		{{18, 20, 15, 15, 22}, {20, 22, 16, 16, 25}, {22, 24, 18, 18, 28}},
		{{25, 28, 20, 20, 30}, {28, 30, 22, 22, 34}, {30, 33, 25, 25, 38}},
		{{35, 40, 28, 28, 45}, {38, 42, 30, 30, 50}, {40, 45, 33, 33, 55}},
	},
	{ // level 3
		{{6, 6, 4, 4, 5}, {6, 8, 6, 6, 7}, {8, 10, 7, 7, 10}},
		{{9, 11, 8, 8, 11}, {10, 12, 9, 9, 13}, {12, 13, 10, 10, 15}},
		{{14, 16, 12, 12, 17}, {16, 18, 13, 13, 20}, {18, 20, 15, 15, 22}},
		{{20, 25, 15, 15, 25}, {22, 28, 18, 18, 28}, {25, 30, 20, 20, 32}},
		{{28, 33, 25, 25, 36}, {30, 36, 28, 28, 40}, {33, 38, 30, 30, 44}},
		{{40, 45, 35, 35, 50}, {42, 48, 38, 38, 55}, {45, 50, 40, 40, 60}},
	},
	{ // level 4
		{{9, 11, 8, 8, 11}, {10, 12, 9, 9, 13}, {12, 13, 10, 10, 15}},
		{{14, 14, 10, 10, 15}, {14, 16, 12, 12, 17}, {16, 18, 13, 13, 20}},
		{{18, 22, 16, 16, 20}, {20, 25, 18, 18, 25}, {22, 28, 20, 20, 28}},
		{{25, 30, 20, 20, 32}, {28, 33, 23, 23, 36}, {30, 36, 25, 25, 40}},
		{{35, 40, 30, 30, 42}, {38, 42, 33, 33, 46}, {40, 45, 35, 35, 50}},
		{{45, 50, 38, 38, 55}, {48, 55, 42, 42, 60}, {50, 58, 45, 45, 65}},
	},
	{ // level 5
		{{12, 13, 10, 10, 15}, {14, 14, 11, 11, 17}, {16, 17, 14, 14, 20}},
		{{17, 19, 15, 15, 20}, {20, 22, 16, 16, 25}, {22, 25, 18, 18, 28}},
		{{25, 28, 20, 20, 30}, {28, 30, 22, 22, 34}, {30, 33, 25, 25, 38}},
		{{33, 36, 28, 28, 40}, {35, 38, 30, 30, 44}, {38, 40, 33, 33, 48}},
		{{42, 45, 35, 35, 50}, {45, 48, 38, 38, 55}, {48, 50, 40, 40, 58}},
		{{50, 55, 42, 42, 60}, {55, 58, 45, 45, 65}, {58, 60, 48, 48, 70}},
	},
	{ // level 6
		{{16, 18, 13, 13, 20}, {18, 20, 15, 15, 22}, {20, 22, 16, 16, 25}},
		{{22, 25, 18, 18, 28}, {25, 28, 20, 20, 32}, {28, 30, 22, 22, 35}},
		{{30, 34, 25, 25, 35}, {33, 36, 28, 28, 38}, {35, 38, 30, 30, 42}},
		{{38, 42, 33, 33, 45}, {40, 45, 35, 35, 48}, {42, 48, 38, 38, 52}},
		{{48, 52, 40, 40, 55}, {50, 55, 42, 42, 58}, {52, 58, 45, 45, 62}},
		{{55, 60, 45, 45, 65}, {58, 63, 48, 48, 70}, {60, 65, 50, 50, 75}},
	},
	{ // level 7
		{{20, 22, 16, 16, 25}, {22, 25, 18, 18, 28}, {25, 28, 20, 20, 32}},
		{{28, 30, 22, 22, 35}, {30, 33, 25, 25, 38}, {33, 36, 28, 28, 42}},
		{{35, 38, 30, 30, 42}, {38, 42, 33, 33, 46}, {40, 45, 35, 35, 50}},
		{{42, 48, 38, 38, 52}, {45, 50, 40, 40, 56}, {48, 52, 42, 42, 60}},
		{{52, 58, 45, 45, 60}, {55, 60, 48, 48, 65}, {58, 63, 50, 50, 68}},
		{{60, 65, 50, 50, 70}, {63, 68, 55, 55, 75}, {65, 70, 58, 58, 80}},
	},
}
