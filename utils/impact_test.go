package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateCO2Savings(t *testing.T) {
	assert.Equal(t, 2.6, EstimateCO2Savings("Used public transport"))
	assert.Equal(t, 0.0, EstimateCO2Savings("My own custom habit"))
}

func TestTotalCO2Savings(t *testing.T) {
	total := TotalCO2Savings([]string{
		"Walked or biked",
		"Walked or biked",
		"Composted",
		"unknown",
	})
	assert.InDelta(t, 5.1, total, 1e-9)

	assert.Equal(t, 0.0, TotalCO2Savings(nil))
}
