package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRecordsEstimate(t *testing.T) {
	tests := []struct {
		estimate string
		expected int
	}{
		{"~1,200 provisions", 1200},
		{"12 regimes", 12},
		{"3k+ records", 3000},
		{"approximately 450", 450},
		{"unknown", 0},
		{"", 0},
		{"1,000,000,000 rows", MaxRecordsEstimate},
		{"99999999999999999999999999 rows", MaxRecordsEstimate},
		{"5000000k", MaxRecordsEstimate},
	}

	for _, tt := range tests {
		t.Run(tt.estimate, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseRecordsEstimate(tt.estimate))
		})
	}
}

func TestCompletionPercent(t *testing.T) {
	assert.Equal(t, 50.0, CompletionPercent(10, 5))
	assert.Equal(t, 33.3, CompletionPercent(3, 1))
	assert.Equal(t, 100.0, CompletionPercent(10, 25))
	assert.Equal(t, 100.0, CompletionPercent(0, 2))
	assert.Equal(t, 0.0, CompletionPercent(0, 0))
}
