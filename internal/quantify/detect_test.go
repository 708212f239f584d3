package quantify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []Match
	}{
		{
			"Percentage",
			"Improved throughput by 35%",
			[]Match{{Text: "35%", Kind: KindPercentage}},
		},
		{
			"Currency",
			"Saved $1.2M annually",
			[]Match{{Text: "$1.2M", Kind: KindCurrency}},
		},
		{
			"Multiplier x",
			"Achieved 2x faster builds",
			[]Match{{Text: "2x", Kind: KindMultiplier}},
		},
		{
			"Multiplier fold",
			"Delivered a 3-fold increase",
			[]Match{{Text: "3-fold", Kind: KindMultiplier}},
		},
		{
			"Plain number",
			"Managed 12 services",
			[]Match{{Text: "12", Kind: KindNumber}},
		},
		{
			"No quantification",
			"Built a great system",
			nil,
		},
		{
			"Empty text",
			"",
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Detect(tt.text))
		})
	}
}

func TestDetectDoesNotDoubleCount(t *testing.T) {
	matches := Detect("Cut costs by 20%")

	require.Len(t, matches, 1)
	assert.Equal(t, KindPercentage, matches[0].Kind)
}

func TestHas(t *testing.T) {
	assert.True(t, Has("Handled 1M requests"))
	assert.True(t, Has("Grew revenue 4x"))
	assert.False(t, Has("Handled many requests"))
	assert.False(t, Has(""))
}
