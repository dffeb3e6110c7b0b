package model

// LevelFor maps accumulated points to a member level between 0 and 5.
// Levels are always recomputed from points and never persisted, so the two
// cannot drift apart.
func LevelFor(points int) int {
	switch {
	case points >= 5000:
		return 5
	case points >= 2000:
		return 4
	case points >= 500:
		return 3
	case points >= 100:
		return 2
	case points >= 10:
		return 1
	default:
		return 0
	}
}
