package ending

import "github.com/braydenokley13-ux/T101-M1-L2/internal/domain/game"

// Grade is a GM letter grade
type Grade string

const (
	GradeAPlus  Grade = "A+"
	GradeA      Grade = "A"
	GradeAMinus Grade = "A-"
	GradeBPlus  Grade = "B+"
	GradeB      Grade = "B"
	GradeBMinus Grade = "B-"
	GradeCPlus  Grade = "C+"
	GradeC      Grade = "C"
	GradeD      Grade = "D"
	GradeF      Grade = "F"
)

// Claim codes handed out on the results screen
const (
	ClaimCodeElite      = "NBA-ELITE-GM-2026"
	ClaimCodeRisingStar = "NBA-RISING-STAR-2026"
)

// ClaimCode returns the reward code for the grade band. D and F earn none.
func (g Grade) ClaimCode() (string, bool) {
	switch g {
	case GradeAPlus, GradeA, GradeAMinus:
		return ClaimCodeElite, true
	case GradeBPlus, GradeB, GradeBMinus, GradeCPlus, GradeC:
		return ClaimCodeRisingStar, true
	default:
		return "", false
	}
}

// Rating is a numeric GM score and its letter grade
type Rating struct {
	Score int
	Grade Grade
}

var gradeThresholds = []struct {
	min   int
	grade Grade
}{
	{90, GradeAPlus},
	{85, GradeA},
	{80, GradeAMinus},
	{75, GradeBPlus},
	{70, GradeB},
	{65, GradeBMinus},
	{60, GradeCPlus},
	{55, GradeC},
	// scores 45-54 land on D; there is no C- band
	{45, GradeD},
}

// Rate scores a season: wins (capped at 50), budget discipline and tax efficiency
func Rate(s game.Snapshot) Rating {
	score := min(championshipWins, s.Wins)

	switch {
	case s.TotalSpend <= 130_000_000:
		score += 30
	case s.TotalSpend <= 140_000_000:
		score += 20
	case s.TotalSpend <= 150_000_000:
		score += 10
	default:
		score -= 20
	}

	switch {
	case s.LuxuryTax == 0:
		score += 20
	case s.LuxuryTax < 5_000_000:
		score += 15
	case s.LuxuryTax < 10_000_000:
		score += 10
	case s.LuxuryTax < 20_000_000:
		score += 5
	}

	return Rating{Score: score, Grade: GradeFor(score)}
}

// GradeFor maps a score to its letter grade
func GradeFor(score int) Grade {
	for _, t := range gradeThresholds {
		if score >= t.min {
			return t.grade
		}
	}
	return GradeF
}
