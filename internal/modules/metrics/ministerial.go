package metrics

// MPIWeights holds the master policy index pillar weights.
type MPIWeights struct {
	Affordability float64
	Legal         float64
	Subsidy       float64
	Stability     float64
}

// DefaultMPIWeights returns the documented equal pillar weights (0.25 each).
func DefaultMPIWeights() MPIWeights {
	return MPIWeights{Affordability: 0.25, Legal: 0.25, Subsidy: 0.25, Stability: 0.25}
}

// MPIComponents holds the four pillar scores, each on a 0-100 scale.
// Stability is the inverse of bubble risk (100 - bubble risk index) so that
// higher is better across all pillars.
type MPIComponents struct {
	Affordability float64
	Legal         float64
	Subsidy       float64
	Stability     float64
}

// MPIThresholds holds the master policy index banding cutoffs.
// The intervention band is inclusive of both cutoffs.
type MPIThresholds struct {
	Intervention float64 // below this: crisis mode
	Healthy      float64 // above this: healthy housing market
}

// DefaultMPIThresholds returns the documented policy defaults:
// >75 healthy, 50-75 intervention needed, <50 crisis.
func DefaultMPIThresholds() MPIThresholds {
	return MPIThresholds{Intervention: 50, Healthy: 75}
}

// MasterPolicyIndex computes the ministerial composite
// MPI = w1*affordability + w2*legal + w3*subsidy + w4*stability.
// A non-positive weight total yields the undefined result.
func MasterPolicyIndex(c MPIComponents, w MPIWeights, t MPIThresholds) Result {
	total := w.Affordability + w.Legal + w.Subsidy + w.Stability
	if total <= 0 {
		return undefinedResult()
	}

	mpi := c.Affordability*w.Affordability +
		c.Legal*w.Legal +
		c.Subsidy*w.Subsidy +
		c.Stability*w.Stability

	band := BandCrisis
	switch {
	case mpi > t.Healthy:
		band = BandHealthy
	case mpi >= t.Intervention:
		band = BandInterventionNeeded
	}

	return Result{Value: round1(mpi), Band: band}
}
