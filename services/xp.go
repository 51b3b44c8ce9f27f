package services

// xpBands maps a minimum overall score to the XP it earns, highest band first.
var xpBands = []struct {
	minScore float64
	xp       int
}{
	{90, 35},
	{80, 30},
	{70, 25},
	{60, 20},
	{50, 15},
}

const baseXP = 10

// CalculateXP returns the XP reward for an overall score. Bands are inclusive
// on their lower bound.
func CalculateXP(overallScore float64) int {
	for _, band := range xpBands {
		if overallScore >= band.minScore {
			return band.xp
		}
	}
	return baseXP
}
