package metrics

// SESWeights holds the subsidy eligibility component weights.
// Weights are expected to sum to 1.
type SESWeights struct {
	Income   float64
	Asset    float64
	Location float64
	Family   float64
}

// DefaultSESWeights returns the documented program weights:
// 0.35 income, 0.25 asset, 0.20 location, 0.20 family.
func DefaultSESWeights() SESWeights {
	return SESWeights{Income: 0.35, Asset: 0.25, Location: 0.20, Family: 0.20}
}

// SESComponents holds the normalized applicant subscores, each on a 0-100
// scale. Normalization is the caller's responsibility (income as % of area
// median income, asset score as inverse of total assets, and so on).
type SESComponents struct {
	Income   float64
	Asset    float64
	Location float64
	Family   float64
}

// SESThresholds holds the eligibility banding cutoffs.
type SESThresholds struct {
	Eligible float64 // below this: ineligible
	Priority float64 // at or above this: priority allocation
}

// DefaultSESThresholds returns the documented policy defaults:
// >=80 priority, 60-79 eligible, <60 ineligible.
func DefaultSESThresholds() SESThresholds {
	return SESThresholds{Eligible: 60, Priority: 80}
}

// SubsidyEligibilityScore computes the weighted component sum
// SES = w1*income + w2*asset + w3*location + w4*family.
// A non-positive weight total yields the undefined result.
func SubsidyEligibilityScore(c SESComponents, w SESWeights, t SESThresholds) Result {
	total := w.Income + w.Asset + w.Location + w.Family
	if total <= 0 {
		return undefinedResult()
	}

	ses := c.Income*w.Income + c.Asset*w.Asset + c.Location*w.Location + c.Family*w.Family

	band := BandIneligible
	switch {
	case ses >= t.Priority:
		band = BandPriority
	case ses >= t.Eligible:
		band = BandEligible
	}

	return Result{Value: round1(ses), Band: band}
}

// AnomalyFlag is one leakage anomaly category with its case count and
// severity weight.
type AnomalyFlag struct {
	Count  int
	Weight float64
}

// DefaultLeakageWeights returns the documented severity weights per anomaly
// category: income mismatch 3, repeat beneficiary 5, premium property 4,
// false documentation 5.
func DefaultLeakageWeights() map[string]float64 {
	return map[string]float64{
		"Income mismatch":          3,
		"Repeated beneficiary":     5,
		"Premium property subsidy": 4,
		"False documentation":      5,
	}
}

// LDIThresholds holds the leakage banding cutoff.
type LDIThresholds struct {
	Audit float64 // above this: program audit triggered
}

// DefaultLDIThresholds returns the documented policy default: LDI > 0.05
// triggers a program audit.
func DefaultLDIThresholds() LDIThresholds {
	return LDIThresholds{Audit: 0.05}
}

// LeakageDetectionIndex computes
// LDI = sum(flag count x severity weight) / total disbursements.
// A non-positive disbursement count yields the undefined result.
func LeakageDetectionIndex(flags []AnomalyFlag, totalDisbursements int, t LDIThresholds) Result {
	if totalDisbursements <= 0 {
		return undefinedResult()
	}

	var weighted float64
	for _, f := range flags {
		weighted += float64(f.Count) * f.Weight
	}

	ldi := weighted / float64(totalDisbursements)

	band := BandNormal
	if ldi > t.Audit {
		band = BandAudit
	}

	return Result{Value: round3(ldi), Band: band}
}

// SERThresholds holds the subsidy effectiveness banding cutoffs.
// The acceptable band is inclusive of both cutoffs.
type SERThresholds struct {
	Acceptable float64 // below this: ineffective
	Good       float64 // above this: good ROI
}

// DefaultSERThresholds returns the documented policy defaults:
// >1.5 good, 1.0-1.5 acceptable, <1.0 ineffective.
func DefaultSERThresholds() SERThresholds {
	return SERThresholds{Acceptable: 1.0, Good: 1.5}
}

// SubsidyEffectivenessRatio computes
// SER = (units delivered x avg price reduction %) / (total subsidy spent / 1M).
// Spend is expressed in the program currency; a non-positive spend yields the
// undefined result.
func SubsidyEffectivenessRatio(unitsDelivered int, avgPriceReductionPct, totalSpent float64, t SERThresholds) Result {
	if totalSpent <= 0 {
		return undefinedResult()
	}

	ser := (float64(unitsDelivered) * avgPriceReductionPct / 100) / (totalSpent / 1_000_000)

	band := BandIneffective
	switch {
	case ser > t.Good:
		band = BandGood
	case ser >= t.Acceptable:
		band = BandAcceptable
	}

	return Result{Value: round2(ser), Band: band}
}
