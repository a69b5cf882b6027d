package ynab_test

import (
	"testing"

	// Packages
	ynab "github.com/mutablelogic/go-tinyagent/pkg/ynab"
	assert "github.com/stretchr/testify/assert"
)

func Test_milliunits_001(t *testing.T) {
	tests := []struct {
		amount float64
		want   ynab.Milliunits
	}{
		{0, 0},
		{12.34, 12340},
		{-12.34, -12340},
		{0.1, 100},
		{0.29, 290},
		{1.005, 1005},
		{-45.99, -45990},
		{1234567.891, 1234567891},
		{0.0019, 1},
		{-0.0019, -1},
	}
	for _, test := range tests {
		t.Run(test.want.String(), func(t *testing.T) {
			assert := assert.New(t)
			assert.Equal(test.want, ynab.ToMilliunits(test.amount))
		})
	}
}

func Test_milliunits_002(t *testing.T) {
	// Encoding and decoding is inverse-consistent to three decimal places
	assert := assert.New(t)
	for _, amount := range []float64{12.34, -12.34, 0.01, 99.999, -0.5, 100, 4.2} {
		assert.InDelta(amount, ynab.ToMilliunits(amount).Float(), 1e-9)
	}
	assert.Equal(12.34, ynab.Milliunits(12340).Float())
	assert.Equal("12.340", ynab.Milliunits(12340).String())
	assert.Equal("-0.500", ynab.Milliunits(-500).String())
}
