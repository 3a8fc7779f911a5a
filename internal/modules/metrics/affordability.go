package metrics

// PIRThresholds holds the banding cutoffs for the price-to-income ratio.
// Values at exactly Stressed fall into the stressed band (boundary inclusive),
// values above Critical into the critical band.
type PIRThresholds struct {
	Stressed float64 // below this: affordable
	Critical float64 // above this: critical
}

// DefaultPIRThresholds returns the documented policy defaults:
// <5 affordable, 5-7 stressed, >7 critical.
func DefaultPIRThresholds() PIRThresholds {
	return PIRThresholds{Stressed: 5, Critical: 7}
}

// PriceToIncomeRatio computes PIR = median house price / median annual
// household income. A non-positive income yields the undefined result.
func PriceToIncomeRatio(medianPrice, medianAnnualIncome float64, t PIRThresholds) Result {
	if medianAnnualIncome <= 0 {
		return undefinedResult()
	}

	pir := medianPrice / medianAnnualIncome

	band := BandAffordable
	switch {
	case pir > t.Critical:
		band = BandCritical
	case pir >= t.Stressed:
		band = BandStressed
	}

	return Result{Value: round2(pir), Band: band}
}

// HAIParams holds housing affordability index parameters.
type HAIParams struct {
	IncomeShareCap float64 // max share of gross income allotted to housing
	Affordable     float64 // above this: affordable
	Critical       float64 // below this: critical
}

// DefaultHAIParams returns the documented policy defaults: a 28% housing cost
// cap with bands >100 affordable, 70-100 stressed, <70 critical.
func DefaultHAIParams() HAIParams {
	return HAIParams{IncomeShareCap: 0.28, Affordable: 100, Critical: 70}
}

// HousingAffordabilityIndex computes
// HAI = (median monthly income x income share cap) / monthly mortgage payment x 100.
// HAI above 100 means the capped housing budget covers the median mortgage
// payment. A non-positive income or payment yields the undefined result.
func HousingAffordabilityIndex(medianMonthlyIncome, monthlyMortgagePayment float64, p HAIParams) Result {
	if medianMonthlyIncome <= 0 || monthlyMortgagePayment <= 0 {
		return undefinedResult()
	}

	hai := (medianMonthlyIncome * p.IncomeShareCap) / monthlyMortgagePayment * 100

	band := BandCritical
	switch {
	case hai > p.Affordable:
		band = BandAffordable
	case hai >= p.Critical:
		band = BandStressed
	}

	return Result{Value: round1(hai), Band: band}
}

// EMIThresholds holds the banding cutoffs for the EMI-to-income ratio,
// in percent. The elevated band is inclusive of both cutoffs.
type EMIThresholds struct {
	Elevated float64 // below this: acceptable
	Stressed float64 // above this: stressed
}

// DefaultEMIThresholds returns the documented policy defaults:
// <35 acceptable, 35-40 elevated, >40 stressed.
func DefaultEMIThresholds() EMIThresholds {
	return EMIThresholds{Elevated: 35, Stressed: 40}
}

// EMIToIncomeRatio computes (monthly EMI / monthly gross income) x 100.
// A non-positive income yields the undefined result.
func EMIToIncomeRatio(monthlyEMI, monthlyGrossIncome float64, t EMIThresholds) Result {
	if monthlyGrossIncome <= 0 {
		return undefinedResult()
	}

	ratio := monthlyEMI / monthlyGrossIncome * 100

	band := BandAcceptable
	switch {
	case ratio > t.Stressed:
		band = BandStressed
	case ratio >= t.Elevated:
		band = BandElevated
	}

	return Result{Value: round1(ratio), Band: band}
}

// AGIThresholds holds the affordability gap banding cutoffs, in percent.
type AGIThresholds struct {
	Intervention float64 // gaps below this trigger policy intervention
}

// DefaultAGIThresholds returns the documented policy default: intervention
// is triggered when the gap falls below -30%.
func DefaultAGIThresholds() AGIThresholds {
	return AGIThresholds{Intervention: -30}
}

// AffordabilityGapIndex computes
// AGI = (affordable ceiling - actual median price) / actual median price x 100.
// A non-negative AGI means prices sit within reach of the median household; a
// negative AGI reports the shortfall magnitude. A non-positive actual price
// yields the undefined result.
func AffordabilityGapIndex(affordableCeiling, actualMedianPrice float64, t AGIThresholds) Result {
	if actualMedianPrice <= 0 {
		return undefinedResult()
	}

	agi := (affordableCeiling - actualMedianPrice) / actualMedianPrice * 100

	band := BandNoGap
	switch {
	case agi < t.Intervention:
		band = BandIntervention
	case agi < 0:
		band = BandGap
	}

	return Result{Value: round1(agi), Band: band}
}

// DisputeRateThresholds holds the banding cutoffs for a region's dispute
// rate. The medium band is inclusive of both cutoffs.
type DisputeRateThresholds struct {
	Medium float64 // below this: low
	High   float64 // above this: high
}

// DefaultDisputeRateThresholds returns the documented defaults:
// <0.10 low, 0.10-0.15 medium, >0.15 high.
func DefaultDisputeRateThresholds() DisputeRateThresholds {
	return DisputeRateThresholds{Medium: 0.10, High: 0.15}
}

// DisputeRateBand bands a stored per-region dispute rate. The rate itself is
// an authoritative display value from the dataset, not recomputed here.
func DisputeRateBand(rate float64, t DisputeRateThresholds) Result {
	band := BandLowRisk
	switch {
	case rate > t.High:
		band = BandHighRisk
	case rate >= t.Medium:
		band = BandMediumRisk
	}

	return Result{Value: rate, Band: band}
}
