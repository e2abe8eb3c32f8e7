package engine

import "math"

type PredictionTrend string

const (
	PredictionIncreasing PredictionTrend = "increasing"
	PredictionDecreasing PredictionTrend = "decreasing"
	PredictionStable     PredictionTrend = "stable"
)

// slope beyond ±predictionTrendBand counts as a direction
const predictionTrendBand = 0.1

type Prediction struct {
	PredictedSGPA float64         `json:"predicted_sgpa"`
	Slope         float64         `json:"slope"`
	Trend         PredictionTrend `json:"trend"`
}

// PredictNextSGPA extrapolates the least-squares line through seq one step ahead.
// The prediction is clamped to [0,10]. ok is false with fewer than two points.
func PredictNextSGPA(seq []float64) (p Prediction, ok bool) {
	if len(seq) < 2 {
		return Prediction{}, false
	}

	slope := Slope(seq)
	n := float64(len(seq))

	var sumY float64
	for _, v := range seq {
		sumY += v
	}
	meanX := (n - 1) / 2
	intercept := sumY/n - slope*meanX

	next := intercept + slope*n
	next = math.Max(0, math.Min(10, next))

	p = Prediction{
		PredictedSGPA: Round2(next),
		Slope:         math.Round(slope*1000) / 1000,
		Trend:         PredictionStable,
	}
	switch {
	case slope > predictionTrendBand:
		p.Trend = PredictionIncreasing
	case slope < -predictionTrendBand:
		p.Trend = PredictionDecreasing
	}
	return p, true
}
