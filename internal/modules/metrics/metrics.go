// Package metrics implements the named policy formulas of the land registry
// dashboards as pure numeric functions. Every calculator is total over valid
// numeric inputs: a zero or negative denominator yields {Value: 0, Band:
// "undefined"} instead of NaN, Inf or a panic, and all banding thresholds are
// policy constants passed in explicitly so boundary behavior can be probed
// exactly in tests. Documented defaults are provided per calculator.
package metrics

import "math"

// Result pairs a metric value with its categorical banding.
type Result struct {
	Value float64 `json:"value"`
	Band  string  `json:"band"`
}

// BandUndefined is the banding returned for degenerate inputs
// (zero or negative denominators).
const BandUndefined = "undefined"

// Affordability bands
const (
	BandAffordable = "affordable"
	BandStressed   = "stressed"
	BandCritical   = "critical"
)

// EMI bands
const (
	BandAcceptable = "acceptable"
	BandElevated   = "elevated"
)

// Gap bands
const (
	BandNoGap        = "no_gap"
	BandGap          = "gap"
	BandIntervention = "intervention"
)

// Verification bands
const (
	BandCompliant = "compliant"
	BandReview    = "review"
	BandHold      = "hold"
)

// Resolution bands
const (
	BandHealthy = "healthy"
	BandWatch   = "watch"
	BandBacklog = "backlog"
)

// Title chain bands
const (
	BandClean   = "clean"
	BandFlagged = "flagged"
)

// Subsidy eligibility bands
const (
	BandPriority   = "priority"
	BandEligible   = "eligible"
	BandIneligible = "ineligible"
)

// Leakage bands
const (
	BandNormal = "normal"
	BandAudit  = "audit"
)

// Effectiveness bands
const (
	BandGood        = "good"
	BandIneffective = "ineffective"
)

// Divergence bands
const (
	BandWarning = "warning"
	BandBubble  = "bubble"
)

// Speculation bands
const (
	BandHighSpeculation = "high"
)

// Credit bands
const (
	BandDeteriorating = "deteriorating"
	BandSystemic      = "systemic"
)

// Stress bands
const (
	BandCrisis = "crisis"
)

// Risk bands (dispute rate and city risk scores)
const (
	BandLowRisk    = "low"
	BandMediumRisk = "medium"
	BandHighRisk   = "high"
)

// Disposition bands (ministerial composite)
const (
	BandInterventionNeeded = "intervention"
)

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// undefinedResult is the shared degenerate-denominator result.
func undefinedResult() Result {
	return Result{Value: 0, Band: BandUndefined}
}
