package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signals(r TrendReport) []Signal {
	out := make([]Signal, 0, len(r.Insights))
	for _, in := range r.Insights {
		out = append(out, in.Signal)
	}
	return out
}

func kinds(r TrendReport) []InsightKind {
	out := make([]InsightKind, 0, len(r.Insights))
	for _, in := range r.Insights {
		out = append(out, in.Kind)
	}
	return out
}

func TestAnalyzeTrendInsufficient(t *testing.T) {
	for _, seq := range [][]float64{nil, {8.2}} {
		r := AnalyzeTrend(seq)
		require.Len(t, r.Insights, 1)
		assert.Equal(t, KindInsufficient, r.Insights[0].Kind)
		assert.Equal(t, SignalInsufficientData, r.Insights[0].Signal)
		assert.Equal(t, 0.0, r.Slope)
	}
}

func TestAnalyzeTrendStrongUpward(t *testing.T) {
	r := AnalyzeTrend([]float64{6.0, 6.5, 7.0, 7.5})

	assert.InDelta(t, 0.5, r.Slope, 1e-12)
	assert.InDelta(t, 0.0, r.Volatility, 1e-12)
	assert.Equal(t, []Signal{SignalStrongUpward, SignalLowVolatility, SignalRecovery}, signals(r))
}

func TestAnalyzeTrendFlat(t *testing.T) {
	r := AnalyzeTrend([]float64{8, 8, 8, 8})

	assert.Equal(t, 0.0, r.Slope)
	assert.Equal(t, 0.0, r.Volatility)
	assert.Equal(t, []Signal{SignalStable, SignalLowVolatility, SignalVeryGood}, signals(r))
}

func TestAnalyzeTrendAllSignals(t *testing.T) {
	r := AnalyzeTrend([]float64{9.5, 6.0, 7.0, 9.5})

	assert.Equal(t, []InsightKind{KindTrend, KindVolatility, KindSpread, KindRecovery, KindLatest}, kinds(r))
	assert.Equal(t, []Signal{SignalSteadyImprovement, SignalHighVolatility, SignalWideSpread, SignalRecovery, SignalOutstanding}, signals(r))
	assert.InDelta(t, 0.1, r.Slope, 1e-12)

	sp := r.Insights[2].Spread
	require.NotNil(t, sp)
	assert.Equal(t, Spread{Highest: 9.5, HighestIndex: 0, Lowest: 6.0, LowestIndex: 1, Gap: 3.5}, *sp)
}

func TestAnalyzeTrendDecliningBelowAverage(t *testing.T) {
	r := AnalyzeTrend([]float64{9.0, 8.5, 8.0, 7.5})

	assert.InDelta(t, -0.5, r.Slope, 1e-12)
	assert.Equal(t, []Signal{SignalDownwardTrend, SignalLowVolatility, SignalBelowAverage}, signals(r))

	last := r.Insights[len(r.Insights)-1]
	assert.Equal(t, 7.5, last.Value)
	require.NotNil(t, last.Reference)
	assert.InDelta(t, 8.25, *last.Reference, 1e-12)
}

func TestAnalyzeTrendModerateVolatilityHasNoSignal(t *testing.T) {
	// diffs 1.0 and 0.0 -> stddev 0.5
	r := AnalyzeTrend([]float64{7.0, 6.0, 6.0})
	assert.InDelta(t, 0.5, r.Volatility, 1e-12)
	assert.NotContains(t, kinds(r), KindVolatility)
	assert.NotContains(t, kinds(r), KindRecovery)
}

func trendSignal(t *testing.T, r TrendReport) Signal {
	t.Helper()
	for _, in := range r.Insights {
		if in.Kind == KindTrend {
			return in.Signal
		}
	}
	require.Fail(t, "no trend insight")
	return ""
}

func TestAnalyzeTrendBoundariesFromTwoDecimalSGPAs(t *testing.T) {
	cases := []struct {
		seq       []float64
		want      Signal
		wantSlope float64
	}{
		{[]float64{7.0, 7.2}, SignalSteadyImprovement, 0.2},
		{[]float64{8.0, 8.05}, SignalStable, 0.05},
		{[]float64{8.05, 8.0}, SignalStable, -0.05},
		{[]float64{7.2, 7.0}, SignalSlightDecline, -0.2},
	}
	for _, tc := range cases {
		r := AnalyzeTrend(tc.seq)
		assert.Equal(t, tc.want, trendSignal(t, r), "seq=%v", tc.seq)
		assert.Equal(t, tc.wantSlope, r.Slope, "seq=%v", tc.seq)
	}
}

func TestAnalyzeTrendVolatilityBoundaryIsNotLow(t *testing.T) {
	// diffs 0.6 and 0.0 -> stddev exactly 0.3 once float noise is dropped
	r := AnalyzeTrend([]float64{7.0, 7.6, 7.6})
	assert.Equal(t, 0.3, r.Volatility)
	assert.NotContains(t, kinds(r), KindVolatility)
}

func TestClassifySlope(t *testing.T) {
	cases := []struct {
		slope float64
		want  Signal
	}{
		{0.21, SignalStrongUpward},
		{0.2, SignalSteadyImprovement},
		{0.1, SignalSteadyImprovement},
		{0.05, SignalStable},
		{0, SignalStable},
		{-0.05, SignalStable},
		{-0.1, SignalSlightDecline},
		{-0.2, SignalSlightDecline},
		{-0.21, SignalDownwardTrend},
		{0.20000000000000107, SignalSteadyImprovement},
		{0.050000000000000711, SignalStable},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ClassifySlope(tc.slope), "slope=%v", tc.slope)
	}
}

func TestSGPASequence(t *testing.T) {
	sems := []Semester{
		manual(2, 1, 8.1),
		detailed(1, 2, subj("a", GradeA, 4)),
		detailed(1, 1, subj("b", GradeO, 4)),
		detailed(2, 2),
		manual(3, 1, 0),
	}
	assert.Equal(t, []float64{10, 8, 8.1}, SGPASequence(sems))
	assert.Equal(t, ModeManual, sems[0].Mode, "input order must be left alone")

	r := AnalyzeSemesters(sems)
	assert.Equal(t, 3, r.Points)
}
