package engine

import (
	"math"
	"sort"
)

/* ===================== THRESHOLDS ===================== */

// Classification boundaries. Fixed policy, not tunable per call.
const (
	StrongUpwardSlope    = 0.2
	SteadyImprovingSlope = 0.05
	SlightDeclineSlope   = -0.05
	DownwardSlope        = -0.2

	HighVolatility = 1.0
	LowVolatility  = 0.3

	WideSpread = 1.5

	OutstandingSGPA      = 9.0
	VeryGoodSGPA         = 8.0
	BelowAverageMargin   = 0.5
	RecoveryStreakLength = 3
)

/* ===================== SIGNALS ===================== */

type InsightKind string

const (
	KindInsufficient InsightKind = "insufficient_data"
	KindTrend        InsightKind = "trend"
	KindVolatility   InsightKind = "volatility"
	KindSpread       InsightKind = "spread"
	KindRecovery     InsightKind = "recovery"
	KindLatest       InsightKind = "latest"
)

type Signal string

const (
	SignalInsufficientData  Signal = "insufficient_data"
	SignalStrongUpward      Signal = "strong_upward"
	SignalSteadyImprovement Signal = "steady_improvement"
	SignalStable            Signal = "stable"
	SignalSlightDecline     Signal = "slight_decline"
	SignalDownwardTrend     Signal = "downward_trend"
	SignalHighVolatility    Signal = "high_volatility"
	SignalLowVolatility     Signal = "low_volatility"
	SignalWideSpread        Signal = "wide_spread"
	SignalRecovery          Signal = "recovery"
	SignalOutstanding       Signal = "outstanding"
	SignalVeryGood          Signal = "very_good"
	SignalBelowAverage      Signal = "below_average"
)

// Spread names the best and worst semesters of a sequence (0-based positions,
// first occurrence on ties).
type Spread struct {
	Highest      float64 `json:"highest"`
	HighestIndex int     `json:"highest_index"`
	Lowest       float64 `json:"lowest"`
	LowestIndex  int     `json:"lowest_index"`
	Gap          float64 `json:"gap"`
}

type Insight struct {
	Kind   InsightKind `json:"kind"`
	Signal Signal      `json:"signal"`
	Value  float64     `json:"value"`

	// mean of the sequence, set on below_average
	Reference *float64 `json:"reference,omitempty"`
	Spread    *Spread  `json:"spread,omitempty"`
}

// TrendReport is the outcome of AnalyzeTrend. Insights are in display order:
// trend, volatility, spread, recovery, latest.
type TrendReport struct {
	Points     int       `json:"points"`
	Slope      float64   `json:"slope"`
	Volatility float64   `json:"volatility"`
	Insights   []Insight `json:"insights"`
}

/* ===================== ANALYSIS ===================== */

// SGPASequence returns the positive resolved SGPAs in chronological (year, term) order.
func SGPASequence(semesters []Semester) []float64 {
	ordered := append([]Semester(nil), semesters...)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Year != ordered[j].Year {
			return ordered[i].Year < ordered[j].Year
		}
		return ordered[i].Term < ordered[j].Term
	})

	seq := make([]float64, 0, len(ordered))
	for _, sem := range ordered {
		if v := ResolveSemesterSGPA(sem); v > 0 {
			seq = append(seq, v)
		}
	}
	return seq
}

// AnalyzeSemesters runs AnalyzeTrend over the semesters' SGPA sequence.
func AnalyzeSemesters(semesters []Semester) TrendReport {
	return AnalyzeTrend(SGPASequence(semesters))
}

// AnalyzeTrend derives categorical insights from a chronological SGPA sequence.
// Fewer than two points yield only the insufficient-data signal.
func AnalyzeTrend(seq []float64) TrendReport {
	report := TrendReport{Points: len(seq)}
	if len(seq) < 2 {
		report.Insights = []Insight{{Kind: KindInsufficient, Signal: SignalInsufficientData}}
		return report
	}

	report.Slope = snap(Slope(seq))
	report.Volatility = snap(Volatility(seq))

	insights := make([]Insight, 0, 5)
	insights = append(insights, Insight{Kind: KindTrend, Signal: ClassifySlope(report.Slope), Value: report.Slope})

	if sig, ok := classifyVolatility(report.Volatility); ok {
		insights = append(insights, Insight{Kind: KindVolatility, Signal: sig, Value: report.Volatility})
	}

	if sp := spreadOf(seq); sp.Gap > WideSpread {
		insights = append(insights, Insight{Kind: KindSpread, Signal: SignalWideSpread, Value: sp.Gap, Spread: &sp})
	}

	if isRecovering(seq) {
		insights = append(insights, Insight{Kind: KindRecovery, Signal: SignalRecovery, Value: seq[len(seq)-1]})
	}

	if in, ok := latestInsight(seq); ok {
		insights = append(insights, in)
	}

	report.Insights = insights
	return report
}

// Slope is the least-squares slope of (i, seq[i]) for i = 0..n-1.
func Slope(seq []float64) float64 {
	n := float64(len(seq))
	if len(seq) < 2 {
		return 0
	}

	var sumX, sumY, sumXY, sumX2 float64
	for i, y := range seq {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumX2 += x * x
	}
	return (n*sumXY - sumX*sumY) / (n*sumX2 - sumX*sumX)
}

// ClassifySlope maps a slope onto the five trend signals.
func ClassifySlope(slope float64) Signal {
	slope = snap(slope)
	switch {
	case slope > StrongUpwardSlope:
		return SignalStrongUpward
	case slope > SteadyImprovingSlope:
		return SignalSteadyImprovement
	case slope < DownwardSlope:
		return SignalDownwardTrend
	case slope < SlightDeclineSlope:
		return SignalSlightDecline
	default:
		return SignalStable
	}
}

// snap drops float noise below 1e-6 so that band boundaries stay inclusive
// for inputs carrying two decimals.
func snap(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

// Volatility is the population standard deviation of |seq[i] - seq[i-1]|.
func Volatility(seq []float64) float64 {
	if len(seq) < 2 {
		return 0
	}

	diffs := make([]float64, 0, len(seq)-1)
	var sum float64
	for i := 1; i < len(seq); i++ {
		d := math.Abs(seq[i] - seq[i-1])
		diffs = append(diffs, d)
		sum += d
	}
	mean := sum / float64(len(diffs))

	var variance float64
	for _, d := range diffs {
		variance += (d - mean) * (d - mean)
	}
	return math.Sqrt(variance / float64(len(diffs)))
}

func classifyVolatility(v float64) (Signal, bool) {
	v = snap(v)
	switch {
	case v > HighVolatility:
		return SignalHighVolatility, true
	case v < LowVolatility:
		return SignalLowVolatility, true
	default:
		return "", false
	}
}

func spreadOf(seq []float64) Spread {
	sp := Spread{Highest: seq[0], Lowest: seq[0]}
	for i, v := range seq {
		if v > sp.Highest {
			sp.Highest, sp.HighestIndex = v, i
		}
		if v < sp.Lowest {
			sp.Lowest, sp.LowestIndex = v, i
		}
	}
	sp.Gap = sp.Highest - sp.Lowest
	return sp
}

func isRecovering(seq []float64) bool {
	if len(seq) < RecoveryStreakLength {
		return false
	}
	tail := seq[len(seq)-RecoveryStreakLength:]
	for i := 1; i < len(tail); i++ {
		if tail[i] <= tail[i-1] {
			return false
		}
	}
	return true
}

func latestInsight(seq []float64) (Insight, bool) {
	latest := seq[len(seq)-1]

	var sum float64
	for _, v := range seq {
		sum += v
	}
	mean := sum / float64(len(seq))

	switch {
	case latest >= OutstandingSGPA:
		return Insight{Kind: KindLatest, Signal: SignalOutstanding, Value: latest}, true
	case latest >= VeryGoodSGPA:
		return Insight{Kind: KindLatest, Signal: SignalVeryGood, Value: latest}, true
	case latest < mean-BelowAverageMargin:
		return Insight{Kind: KindLatest, Signal: SignalBelowAverage, Value: latest, Reference: &mean}, true
	default:
		return Insight{}, false
	}
}
