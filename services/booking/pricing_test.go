package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	total, commission, workshopAmount := Split(1000, 0.10)
	assert.Equal(t, 1000.0, total)
	assert.Equal(t, 100.0, commission)
	assert.Equal(t, 900.0, workshopAmount)
}

func TestSplitPartsSumToTotal(t *testing.T) {
	for _, price := range []float64{1, 49.99, 1234.56, 100000} {
		total, commission, workshopAmount := Split(price, 0.15)
		assert.Equal(t, total, commission+workshopAmount)
	}
}

func TestSplitDefaultsRate(t *testing.T) {
	_, commission, _ := Split(500, 0)
	assert.Equal(t, 500*DefaultCommissionRate, commission)

	_, commission, _ = Split(500, -1)
	assert.Equal(t, 500*DefaultCommissionRate, commission)
}
