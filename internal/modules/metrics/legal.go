package metrics

// VCSThresholds holds the verification completeness banding cutoffs,
// in percent.
type VCSThresholds struct {
	Review float64 // below this: hold
}

// DefaultVCSThresholds returns the documented policy defaults:
// 100 compliant, 80-99 review, <80 hold.
func DefaultVCSThresholds() VCSThresholds {
	return VCSThresholds{Review: 80}
}

// VerificationCompletenessScore computes
// VCS = verified documents / required documents x 100.
// A verified count above the required count signals a caller bug and is
// clamped to 100 rather than reported as >100; a negative verified count
// clamps to 0. A non-positive required count yields the undefined result.
func VerificationCompletenessScore(verifiedDocs, requiredDocs int, t VCSThresholds) Result {
	if requiredDocs <= 0 {
		return undefinedResult()
	}

	vcs := float64(verifiedDocs) / float64(requiredDocs) * 100
	if vcs > 100 {
		vcs = 100
	}
	if vcs < 0 {
		vcs = 0
	}

	band := BandHold
	switch {
	case vcs >= 100:
		band = BandCompliant
	case vcs >= t.Review:
		band = BandReview
	}

	return Result{Value: round1(vcs), Band: band}
}

// DRRThresholds holds the dispute resolution rate banding cutoffs,
// in percent. The watch band is inclusive of both cutoffs.
type DRRThresholds struct {
	Watch   float64 // below this: backlog
	Healthy float64 // above this: healthy
}

// DefaultDRRThresholds returns the documented policy defaults:
// >25 healthy, 10-25 watch, <10 backlog.
func DefaultDRRThresholds() DRRThresholds {
	return DRRThresholds{Watch: 10, Healthy: 25}
}

// DisputeResolutionRate computes
// DRR = disputes resolved in period / active disputes at period start x 100.
// A non-positive active count yields the undefined result.
func DisputeResolutionRate(resolvedInPeriod, activeAtStart int, t DRRThresholds) Result {
	if activeAtStart <= 0 {
		return undefinedResult()
	}

	drr := float64(resolvedInPeriod) / float64(activeAtStart) * 100

	band := BandBacklog
	switch {
	case drr > t.Healthy:
		band = BandHealthy
	case drr >= t.Watch:
		band = BandWatch
	}

	return Result{Value: round1(drr), Band: band}
}

// TCISThresholds holds the title chain integrity banding cutoff.
type TCISThresholds struct {
	Clean float64 // at or above this: clean
}

// DefaultTCISThresholds returns the documented policy default: >=0.95 clean.
func DefaultTCISThresholds() TCISThresholds {
	return TCISThresholds{Clean: 0.95}
}

// TitleChainIntegrityScore computes
// TCIS = 1 - (title breaks + unverified transfers) / chain length.
// A perfect chain scores 1.0; anything below the clean cutoff requires title
// insurance or legal review before transfer. A non-positive chain length
// yields the undefined result.
func TitleChainIntegrityScore(titleBreaks, unverifiedTransfers, chainLength int, t TCISThresholds) Result {
	if chainLength <= 0 {
		return undefinedResult()
	}

	tcis := 1 - float64(titleBreaks+unverifiedTransfers)/float64(chainLength)

	band := BandFlagged
	if tcis >= t.Clean {
		band = BandClean
	}

	return Result{Value: round3(tcis), Band: band}
}
