package metrics

// PIDIThresholds holds the price-income divergence banding cutoffs,
// in standard deviations.
type PIDIThresholds struct {
	Warning float64 // above this: prices outpacing incomes abnormally
	Bubble  float64 // above this: bubble territory
}

// DefaultPIDIThresholds returns the documented policy defaults:
// >2 warning, >3 bubble.
func DefaultPIDIThresholds() PIDIThresholds {
	return PIDIThresholds{Warning: 2, Bubble: 3}
}

// PriceIncomeDivergenceIndex computes
// PIDI = (YoY price growth % - YoY income growth %) / historical std dev.
// A non-positive standard deviation yields the undefined result.
func PriceIncomeDivergenceIndex(priceGrowthPct, incomeGrowthPct, historicalStdDev float64, t PIDIThresholds) Result {
	if historicalStdDev <= 0 {
		return undefinedResult()
	}

	pidi := (priceGrowthPct - incomeGrowthPct) / historicalStdDev

	band := BandNormal
	switch {
	case pidi > t.Bubble:
		band = BandBubble
	case pidi > t.Warning:
		band = BandWarning
	}

	return Result{Value: round2(pidi), Band: band}
}

// SAIThresholds holds the speculative activity banding cutoffs.
type SAIThresholds struct {
	High         float64 // above this: high speculation
	Intervention float64 // above this: regulatory intervention recommended
}

// DefaultSAIThresholds returns the documented policy defaults:
// >0.35 high, >0.50 intervention.
func DefaultSAIThresholds() SAIThresholds {
	return SAIThresholds{High: 0.35, Intervention: 0.50}
}

// SpeculativeActivityIndex computes
// SAI = (short-term resales + multi-property buyers + cash purchases) / total transactions.
// A non-positive transaction count yields the undefined result.
func SpeculativeActivityIndex(shortTermResales, multiProperty, cashPurchases, totalTransactions int, t SAIThresholds) Result {
	if totalTransactions <= 0 {
		return undefinedResult()
	}

	sai := float64(shortTermResales+multiProperty+cashPurchases) / float64(totalTransactions)

	band := BandNormal
	switch {
	case sai > t.Intervention:
		band = BandIntervention
	case sai > t.High:
		band = BandHighSpeculation
	}

	return Result{Value: round3(sai), Band: band}
}

// CRCWeights holds the credit risk composite weights.
type CRCWeights struct {
	LTV         float64
	DTI         float64
	Subprime    float64
	DefaultRate float64
}

// DefaultCRCWeights returns the documented weights: 0.3 LTV, 0.3 DTI,
// 0.2 subprime share, 0.2 default rate.
func DefaultCRCWeights() CRCWeights {
	return CRCWeights{LTV: 0.3, DTI: 0.3, Subprime: 0.2, DefaultRate: 0.2}
}

// CRCComponents holds the normalized credit inputs, each on a 0-1 scale
// (average loan-to-value, average debt-to-income, subprime share of the loan
// portfolio, 90+ day delinquency rate).
type CRCComponents struct {
	LTV         float64
	DTI         float64
	Subprime    float64
	DefaultRate float64
}

// CRCThresholds holds the credit risk banding cutoffs.
type CRCThresholds struct {
	Deteriorating float64 // above this: credit quality deteriorating
	Systemic      float64 // above this: systemic risk
}

// DefaultCRCThresholds returns the documented policy defaults:
// >0.6 deteriorating, >0.8 systemic.
func DefaultCRCThresholds() CRCThresholds {
	return CRCThresholds{Deteriorating: 0.6, Systemic: 0.8}
}

// CreditRiskComposite computes the weighted credit quality sum
// CRC = w1*LTV + w2*DTI + w3*subprime + w4*default rate.
// A non-positive weight total yields the undefined result.
func CreditRiskComposite(c CRCComponents, w CRCWeights, t CRCThresholds) Result {
	total := w.LTV + w.DTI + w.Subprime + w.DefaultRate
	if total <= 0 {
		return undefinedResult()
	}

	crc := c.LTV*w.LTV + c.DTI*w.DTI + c.Subprime*w.Subprime + c.DefaultRate*w.DefaultRate

	band := BandAcceptable
	switch {
	case crc > t.Systemic:
		band = BandSystemic
	case crc > t.Deteriorating:
		band = BandDeteriorating
	}

	return Result{Value: round3(crc), Band: band}
}

// MSSWeights holds the market stress sub-index weights.
type MSSWeights struct {
	Divergence   float64 // price-income divergence
	Speculation  float64 // speculative activity
	Credit       float64 // credit risk
	Vacancy      float64 // vacancy trend
	Construction float64 // construction oversupply
}

// DefaultMSSWeights returns the documented weights:
// 0.25 divergence, 0.20 speculation, 0.25 credit, 0.15 vacancy,
// 0.15 construction.
func DefaultMSSWeights() MSSWeights {
	return MSSWeights{Divergence: 0.25, Speculation: 0.20, Credit: 0.25, Vacancy: 0.15, Construction: 0.15}
}

// MSSComponents holds the five normalized sub-indices, each on a 0-100 scale.
type MSSComponents struct {
	Divergence   float64
	Speculation  float64
	Credit       float64
	Vacancy      float64
	Construction float64
}

// MSSThresholds holds the market stress banding cutoffs.
type MSSThresholds struct {
	Watch    float64 // at or above this: watch
	Elevated float64 // at or above this: elevated
	Crisis   float64 // at or above this: crisis mode
}

// DefaultMSSThresholds returns the documented policy defaults:
// 0-40 healthy, 40-60 watch, 60-80 elevated, 80-100 crisis.
func DefaultMSSThresholds() MSSThresholds {
	return MSSThresholds{Watch: 40, Elevated: 60, Crisis: 80}
}

// MarketStressScore computes the weighted sum of the five normalized
// sub-indices. A non-positive weight total yields the undefined result.
func MarketStressScore(c MSSComponents, w MSSWeights, t MSSThresholds) Result {
	total := w.Divergence + w.Speculation + w.Credit + w.Vacancy + w.Construction
	if total <= 0 {
		return undefinedResult()
	}

	mss := c.Divergence*w.Divergence +
		c.Speculation*w.Speculation +
		c.Credit*w.Credit +
		c.Vacancy*w.Vacancy +
		c.Construction*w.Construction

	band := BandHealthy
	switch {
	case mss >= t.Crisis:
		band = BandCrisis
	case mss >= t.Elevated:
		band = BandElevated
	case mss >= t.Watch:
		band = BandWatch
	}

	return Result{Value: round1(mss), Band: band}
}

// RiskScoreBand bands a 0-100 city risk score into low/medium/high.
// The medium band is inclusive of both cutoffs.
func RiskScoreBand(score, medium, high float64) Result {
	band := BandLowRisk
	switch {
	case score > high:
		band = BandHighRisk
	case score >= medium:
		band = BandMediumRisk
	}
	return Result{Value: score, Band: band}
}
