package catalog

// Points awarded per successful interaction.
const (
	PointsPerHit   = 10 // click, catch, double
	PointsPerMatch = 20 // drag
)

// Star thresholds as percentages of the maximum score.
const (
	oneStarPercent   = 50
	twoStarPercent   = 75
	threeStarPercent = 95
)

// PointsFor returns the points one successful interaction is worth.
func PointsFor(m Mode) int {
	if m == ModeDrag {
		return PointsPerMatch
	}
	return PointsPerHit
}

// CalculateStars rates a score against the maximum score: 3 stars at 95%,
// 2 at 75%, 1 at 50%, otherwise 0. Integer arithmetic keeps the boundaries
// exact.
func CalculateStars(score, maxScore int) int {
	if maxScore <= 0 || score <= 0 {
		return 0
	}
	pct := score * 100
	switch {
	case pct >= maxScore*threeStarPercent:
		return 3
	case pct >= maxScore*twoStarPercent:
		return 2
	case pct >= maxScore*oneStarPercent:
		return 1
	default:
		return 0
	}
}
