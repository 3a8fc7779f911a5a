package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMasterPolicyIndex(t *testing.T) {
	w := DefaultMPIWeights()
	th := DefaultMPIThresholds()

	healthy := MasterPolicyIndex(MPIComponents{Affordability: 80, Legal: 85, Subsidy: 78, Stability: 82}, w, th)
	assert.Equal(t, BandHealthy, healthy.Band)
	assert.InDelta(t, 81.3, healthy.Value, 0.05)

	intervention := MasterPolicyIndex(MPIComponents{Affordability: 40, Legal: 50, Subsidy: 77, Stability: 42}, w, th)
	assert.Equal(t, BandInterventionNeeded, intervention.Band)

	crisis := MasterPolicyIndex(MPIComponents{Affordability: 30, Legal: 40, Subsidy: 45, Stability: 35}, w, th)
	assert.Equal(t, BandCrisis, crisis.Band)

	boundary75IsIntervention := MasterPolicyIndex(MPIComponents{Affordability: 75, Legal: 75, Subsidy: 75, Stability: 75}, w, th)
	assert.Equal(t, BandInterventionNeeded, boundary75IsIntervention.Band)

	boundary50IsIntervention := MasterPolicyIndex(MPIComponents{Affordability: 50, Legal: 50, Subsidy: 50, Stability: 50}, w, th)
	assert.Equal(t, BandInterventionNeeded, boundary50IsIntervention.Band)

	undefined := MasterPolicyIndex(MPIComponents{Affordability: 80}, MPIWeights{}, th)
	assert.Equal(t, BandUndefined, undefined.Band)
}
