package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateXP(t *testing.T) {
	tests := []struct {
		score float64
		want  int
	}{
		{100, 35},
		{95, 35},
		{90, 35},
		{89.9, 30},
		{85, 30},
		{80, 30},
		{75, 25},
		{70, 25},
		{65, 20},
		{60, 20},
		{55, 15},
		{50, 15},
		{49, 10},
		{30, 10},
		{0, 10},
		{-12, 10},
		{140, 35},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CalculateXP(tt.score), "score %v", tt.score)
	}
}
