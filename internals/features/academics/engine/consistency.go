package engine

import "math"

type Stability string

const (
	StabilityUnknown  Stability = "unknown"
	StabilityVeryHigh Stability = "very_high"
	StabilityHigh     Stability = "high"
	StabilityModerate Stability = "moderate"
	StabilityVolatile Stability = "volatile"
)

// coefficient of variation at which the consistency score reaches 0
const consistencyCVFloor = 0.5

type Consistency struct {
	Subjects      int       `json:"subjects"`
	Mean          float64   `json:"grade_points_mean"`
	StdDev        float64   `json:"grade_points_std"`
	Score         int       `json:"consistency_score"`
	Stability     Stability `json:"grade_stability"`
	DominantGrade Grade     `json:"dominant_grade,omitempty"`
}

// AnalyzeConsistency measures how evenly grade points are spread across all
// positive-credit subjects of detailed semesters.
func AnalyzeConsistency(semesters []Semester) Consistency {
	var points []float64
	counts := map[Grade]int{}

	for _, sem := range semesters {
		if sem.Mode != ModeDetailed {
			continue
		}
		for _, s := range sem.Subjects {
			if s.Credits <= 0 || !s.Grade.Valid() {
				continue
			}
			points = append(points, float64(gradePoints[s.Grade]))
			counts[s.Grade]++
		}
	}

	out := Consistency{Subjects: len(points), Stability: StabilityUnknown}
	if len(points) == 0 {
		return out
	}

	var sum float64
	for _, p := range points {
		sum += p
	}
	mean := sum / float64(len(points))

	// sample standard deviation; a single subject has none
	var std float64
	if len(points) > 1 {
		var ss float64
		for _, p := range points {
			ss += (p - mean) * (p - mean)
		}
		std = math.Sqrt(ss / float64(len(points)-1))
	}

	if mean > 0 {
		raw := 100 * (1 - (std/mean)/consistencyCVFloor)
		out.Score = int(math.Max(0, math.Min(100, math.Round(raw))))
	}

	switch {
	case std < 0.5:
		out.Stability = StabilityVeryHigh
	case std < 1.0:
		out.Stability = StabilityHigh
	case std < 1.5:
		out.Stability = StabilityModerate
	default:
		out.Stability = StabilityVolatile
	}

	best := 0
	for _, g := range gradeOrder {
		if counts[g] > best {
			best = counts[g]
			out.DominantGrade = g
		}
	}

	out.Mean = Round2(mean)
	out.StdDev = Round2(std)
	return out
}
