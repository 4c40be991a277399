package schema

import "strconv"

// FatalToken is the string representation of a fatal option score.
// Matching is case-insensitive.
const FatalToken = "FATAL"

// OptionScore represents the scoring scheme for a criterion option.
// It is either a fatal marker or a signed whole-number point value.
// A fatal selection forces the whole review's total to zero.
type OptionScore struct {
	fatal  bool
	points int
}

// PointsScore returns an OptionScore worth n points. The value may be
// negative.
func PointsScore(n int) OptionScore {
	return OptionScore{points: n}
}

// FatalScore returns the fatal OptionScore marker.
func FatalScore() OptionScore {
	return OptionScore{fatal: true}
}

// IsFatal reports whether this score is the fatal marker.
func (s OptionScore) IsFatal() bool {
	return s.fatal
}

// Points returns the point value of this score. It is zero for the
// fatal marker; callers that care about the distinction should check
// IsFatal first.
func (s OptionScore) Points() int {
	if s.fatal {
		return 0
	}
	return s.points
}

// String returns the serialized form used in scorecard CSV cells.
func (s OptionScore) String() string {
	if s.fatal {
		return FatalToken
	}
	return strconv.Itoa(s.points)
}

// ParseOptionScore parses an option score from a scorecard cell.
// "FATAL" (any casing) yields the fatal marker; a base-10 signed
// integer yields a point score. Anything else yields ok == false,
// which is not an error: callers decide how to treat an unscorable
// cell (the CSV importer skips it to allow sparse grids).
func ParseOptionScore(text string) (OptionScore, bool) {
	if equalsFatalToken(text) {
		return FatalScore(), true
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return OptionScore{}, false
	}
	return PointsScore(n), true
}

// equalsFatalToken matches the fatal token without allocating an
// uppercased copy of the input.
func equalsFatalToken(text string) bool {
	if len(text) != len(FatalToken) {
		return false
	}
	for i := 0; i < len(text); i++ {
		c := text[i]
		if 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}
		if c != FatalToken[i] {
			return false
		}
	}
	return true
}
