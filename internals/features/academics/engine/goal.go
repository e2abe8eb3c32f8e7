package engine

import (
	"fmt"
	"math"
)

// GoalOutcome classifies how hard a target is.
type GoalOutcome string

const (
	GoalUnreachable GoalOutcome = "unreachable" // needs more than 10 per semester
	GoalAlreadyMet  GoalOutcome = "already_met" // target holds even with 0 from here on
	GoalChallenging GoalOutcome = "challenging" // needs ≥ 9.5
	GoalAchievable  GoalOutcome = "achievable"  // needs ≥ 8
	GoalOnTrack     GoalOutcome = "on_track"
)

const (
	challengingSGPA = 9.5
	achievableSGPA  = 8.0
)

type GoalResult struct {
	TargetCGPA         float64     `json:"target_cgpa"`
	RemainingSemesters int         `json:"remaining_semesters"`
	CurrentCredits     float64     `json:"current_credits"`
	FutureCredits      float64     `json:"future_credits"`
	Required           float64     `json:"required"`
	Achievable         bool        `json:"achievable"`
	Outcome            GoalOutcome `json:"outcome"`

	// best CGPA reachable with straight 10s; set only when Outcome is unreachable
	MaxCGPA *float64 `json:"max_cgpa,omitempty"`
}

// RequiredSGPA inverts the weighted average: the SGPA needed in each of the
// remaining semesters to finish at targetCGPA. creditsPerSemester <= 0 means
// StandardCredits. The ledger is the recomputed one, never the official CGPA.
func RequiredSGPA(semesters []Semester, targetCGPA float64, remainingSemesters int, creditsPerSemester float64) (GoalResult, error) {
	if math.IsNaN(targetCGPA) || targetCGPA < 0 || targetCGPA > 10 {
		return GoalResult{}, fmt.Errorf("%w: target CGPA %.2f outside [0,10]", ErrInvalidGoal, targetCGPA)
	}
	if remainingSemesters < 1 {
		return GoalResult{}, fmt.Errorf("%w: remaining semesters must be at least 1, got %d", ErrInvalidGoal, remainingSemesters)
	}
	if creditsPerSemester <= 0 {
		creditsPerSemester = StandardCredits
	}

	currentSum, currentCredits, _ := ledger(semesters)
	futureCredits := float64(remainingSemesters) * creditsPerSemester

	out := GoalResult{
		TargetCGPA:         targetCGPA,
		RemainingSemesters: remainingSemesters,
		CurrentCredits:     currentCredits,
		FutureCredits:      futureCredits,
	}

	// nothing recorded yet: the target average is the required average
	if currentCredits == 0 {
		out.Required = Round2(targetCGPA)
		out.Achievable = true
		out.Outcome = classifyGoal(out.Required)
		return out, nil
	}

	totalCredits := currentCredits + futureCredits
	out.Required = Round2((targetCGPA*totalCredits - currentSum) / futureCredits)
	out.Achievable = out.Required >= 0 && out.Required <= 10
	out.Outcome = classifyGoal(out.Required)

	if out.Required > 10 {
		ceiling := Round2((currentSum + futureCredits*10) / totalCredits)
		out.MaxCGPA = &ceiling
	}
	return out, nil
}

func classifyGoal(required float64) GoalOutcome {
	switch {
	case required > 10:
		return GoalUnreachable
	case required < 0:
		return GoalAlreadyMet
	case required >= challengingSGPA:
		return GoalChallenging
	case required >= achievableSGPA:
		return GoalAchievable
	default:
		return GoalOnTrack
	}
}
