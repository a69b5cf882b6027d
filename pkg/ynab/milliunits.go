package ynab

import (
	"math"
	"strconv"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Milliunits is a currency amount in thousandths of a unit, so 12.34 is
// 12340 milliunits
type Milliunits int64

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// ToMilliunits converts an amount in currency units to milliunits,
// truncating toward zero. The amount is first rounded to millionths of a
// unit so that floating point error does not lose a milliunit.
func ToMilliunits(amount float64) Milliunits {
	return Milliunits(math.Trunc(math.Round(amount*1e6) / 1e3))
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Float returns the amount in currency units
func (m Milliunits) Float() float64 {
	return float64(m) / 1000
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (m Milliunits) String() string {
	return strconv.FormatFloat(m.Float(), 'f', 3, 64)
}
