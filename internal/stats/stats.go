// Package stats derives a user's profile numbers from the attempt log.
package stats

import (
	"math"

	"github.com/ciphersql/studio/pkg/models"
)

// XPPerAssignment is the reward for each distinct solved assignment.
const XPPerAssignment = 500

// coreAssignments is the fixed denominator for the progress bar. It is a
// hardcoded count of "core" assignments, independent of catalog size.
const coreAssignments = 4

// Compute derives UserStats from the distinct-solved count and the per-day
// activity list (ascending by date).
//
// Streak is the number of distinct calendar days with any attempt, not a
// consecutive-day run. That is the historical behavior the frontend was
// built against; see DESIGN.md before changing it.
func Compute(solved int, days []models.DayActivity) models.UserStats {
	xp := solved * XPPerAssignment

	history := days
	if history == nil {
		history = []models.DayActivity{}
	}

	progress := int(math.Round(float64(solved) / coreAssignments * 100))
	if progress > 100 {
		progress = 100
	}

	return models.UserStats{
		SolvedCount: solved,
		XP:          xp,
		Rank:        Rank(xp),
		Streak:      len(history),
		History:     history,
		Progress:    progress,
	}
}

// Rank maps experience points onto a tier label. Thresholds are strict:
// exactly 1000 xp is still "Beginner".
func Rank(xp int) string {
	switch {
	case xp > 5000:
		return "SQL Master"
	case xp > 2500:
		return "Advanced"
	case xp > 1000:
		return "Intermediate"
	case xp > 0:
		return "Beginner"
	default:
		return "Novice I"
	}
}
