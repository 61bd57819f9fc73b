package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"framecraft-backend/internal/pricing"
)

func TestSizes_PhysicalOrder(t *testing.T) {
	sizes := pricing.Sizes()

	assert.Equal(t, []pricing.FrameSize{
		pricing.Size8x10,
		pricing.Size11x14,
		pricing.Size16x20,
		pricing.Size18x24,
		pricing.Size24x36,
	}, sizes)
}

func TestSpec_LabelsAndMultipliers(t *testing.T) {
	spec, err := pricing.Spec(pricing.Size8x10)
	require.NoError(t, err)
	assert.Equal(t, `8" × 10"`, spec.Label)
	assert.Equal(t, 1.0, spec.Multiplier)

	spec, err = pricing.Spec(pricing.Size24x36)
	require.NoError(t, err)
	assert.Equal(t, `24" × 36"`, spec.Label)
	assert.Equal(t, 3.0, spec.Multiplier)
}

func TestSpec_UnknownSize(t *testing.T) {
	_, err := pricing.Spec("9x12")

	var unknownErr *pricing.UnknownSizeError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, pricing.FrameSize("9x12"), unknownErr.Size)
}

func TestTotal(t *testing.T) {
	total, err := pricing.Total(100, pricing.Size16x20)
	require.NoError(t, err)
	assert.InDelta(t, 180.0, total, 1e-9)

	total, err = pricing.Total(100, pricing.Size8x10)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, total, 1e-9)
}

func TestTotal_UnknownSize(t *testing.T) {
	_, err := pricing.Total(100, "huge")

	var unknownErr *pricing.UnknownSizeError
	assert.ErrorAs(t, err, &unknownErr)
}

func TestTotal_MonotonicInSize(t *testing.T) {
	base := 75.0
	prev := 0.0
	for _, size := range pricing.Sizes() {
		total, err := pricing.Total(base, size)
		require.NoError(t, err)
		assert.Greater(t, total, prev, "total for %s should exceed the next smaller size", size)
		prev = total
	}
}

func TestFrameSize_IsValid(t *testing.T) {
	assert.True(t, pricing.Size11x14.IsValid())
	assert.False(t, pricing.FrameSize("").IsValid())
	assert.False(t, pricing.FrameSize("8X10").IsValid())
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "GH₵180.00", pricing.FormatCurrency(180))
	assert.Equal(t, "GH₵97.50", pricing.FormatCurrency(97.5))
	assert.Equal(t, "GH₵0.00", pricing.FormatCurrency(0))
}
