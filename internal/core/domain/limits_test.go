package domain

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLimit(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		def       int
		expected  int
	}{
		{"missing uses default", 0, 10, 10},
		{"missing uses custom default", 0, 1, 1},
		{"within range", 25, 10, 25},
		{"above max clamps to 50", 500, 10, 50},
		{"exactly max", 50, 10, 50},
		{"negative clamps to 1", -3, 10, 1},
		{"one", 1, 10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeLimit(tt.requested, tt.def))
		})
	}
}

func TestParseLimit(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected int
	}{
		{"nil", nil, 0},
		{"float", float64(12), 12},
		{"fractional floors", 7.9, 7},
		{"explicit zero means minimum", float64(0), 1},
		{"int", 3, 3},
		{"int64", int64(4), 4},
		{"numeric string", " 15 ", 15},
		{"json number", json.Number("20"), 20},
		{"non-numeric string", "many", 0},
		{"bool", true, 0},
		{"NaN", math.NaN(), 0},
		{"infinity", math.Inf(1), 0},
		{"huge", float64(1e12), MaxLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLimit(tt.input))
		})
	}
}

func TestParseLimit_FeedsNormalizeLimit(t *testing.T) {
	assert.Equal(t, 10, NormalizeLimit(ParseLimit("abc"), 10))
	assert.Equal(t, 1, NormalizeLimit(ParseLimit(float64(0)), 10))
	assert.Equal(t, 1, NormalizeLimit(ParseLimit(float64(-9)), 10))
	assert.Equal(t, 50, NormalizeLimit(ParseLimit(float64(51)), 10))
}

func TestNormalizeStringList(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{"nil", nil, nil},
		{"all blank", []string{" ", ""}, nil},
		{"trims", []string{" EU ", "UN"}, []string{"EU", "UN"}},
		{"dedupes keeping first seen", []string{"US", "EU", "US", " EU"}, []string{"US", "EU"}},
		{"case sensitive", []string{"eu", "EU"}, []string{"eu", "EU"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeStringList(tt.input))
		})
	}
}
