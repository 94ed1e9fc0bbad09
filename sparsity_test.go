package q47verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExponents_StandardValue(t *testing.T) {
	// At the standard Barban–Davenport–Halberstam value B = B' = 1 the
	// global bound barely fails while the restricted one wins outright.
	assert.InDelta(t, 1.0/92, GlobalExponent(1), 1e-12)
	assert.InDelta(t, -11.0/23, RestrictedExponent(1), 1e-12)
	assert.Greater(t, GlobalExponent(1), 0.0)
	assert.Less(t, RestrictedExponent(1), 0.0)
}

func TestExponents_CriticalThresholds(t *testing.T) {
	assert.InDelta(t, 0, GlobalExponent(GlobalCriticalB), 1e-12)
	assert.InDelta(t, 0, RestrictedExponent(RestrictedCriticalB), 1e-12)

	// Just below each threshold the exponent goes negative.
	assert.Less(t, GlobalExponent(GlobalCriticalB-1e-6), 0.0)
	assert.Less(t, RestrictedExponent(RestrictedCriticalB-1e-6), 0.0)
}

func TestExponents_DoubleSaving(t *testing.T) {
	// The restricted bound carries two sparsity factors: its saving at
	// full strength is (log x)^(−45/46), exactly double the global
	// (log x)^(−45/92).
	assert.InDelta(t, 2.0, (45.0/46)/(45.0/92), 1e-12)
	assert.InDelta(t, -LandauRamanujanExponent, RestrictedExponent(0), 1e-12)
	assert.InDelta(t, -LandauRamanujanExponent/2, GlobalExponent(0), 1e-12)
}

func TestCompareSparsity_DefaultTable(t *testing.T) {
	report := CompareSparsity(DefaultBValues())
	require.Len(t, report.Rows, 8)

	var labels []string
	for _, row := range report.Rows {
		labels = append(labels, row.Label)
		assert.Equal(t, row.Global < 0, row.GlobalOK, "B = %s", row.Label)
		assert.Equal(t, row.Restricted < 0, row.RestrictedOK, "B = %s", row.Label)
	}
	assert.Contains(t, labels, "45/46")
	assert.Contains(t, labels, "45/23")

	// Exponents are increasing in B.
	for i := 1; i < len(report.Rows); i++ {
		assert.GreaterOrEqual(t, report.Rows[i].Global, report.Rows[i-1].Global)
		assert.GreaterOrEqual(t, report.Rows[i].Restricted, report.Rows[i-1].Restricted)
	}
}

func TestCompareSparsity_StatusFlip(t *testing.T) {
	report := CompareSparsity([]float64{1.0})
	require.Len(t, report.Rows, 1)

	row := report.Rows[0]
	assert.False(t, row.GlobalOK, "global bound must fail at B = 1")
	assert.True(t, row.RestrictedOK, "restricted bound must achieve θ = 1/2 at B' = 1")
	assert.Equal(t, "1.0000", row.Label)
}
