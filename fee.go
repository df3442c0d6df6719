package skinvault

import "github.com/shopspring/decimal"

// The marketplace takes a cut on every sale. The rate is not flat: it scales
// roughly linearly from 10% on the cheapest listings to 13.05% on the most
// expensive ones, over the price band below. Prices outside the band pay the
// boundary rate.
var (
	feeMinPrice = decimal.RequireFromString("0.20")
	feeMaxPrice = decimal.RequireFromString("1800")
	feeMinRate  = decimal.RequireFromString("0.10")
	feeMaxRate  = decimal.RequireFromString("0.1305")
)

// ApplyFee estimates the seller's net proceeds for a given gross (buyer)
// price, rounded to 2 decimals. A non-positive gross yields zero.
func ApplyFee(gross Money) Money {
	if !gross.value.IsPositive() {
		return Money{}
	}

	clamped := gross.value
	if clamped.LessThan(feeMinPrice) {
		clamped = feeMinPrice
	}
	if clamped.GreaterThan(feeMaxPrice) {
		clamped = feeMaxPrice
	}

	span := feeMaxPrice.Sub(feeMinPrice)
	rate := feeMinRate.Add(clamped.Sub(feeMinPrice).Div(span).Mul(feeMaxRate.Sub(feeMinRate)))

	net := gross.value.Mul(decimal.NewFromInt(1).Sub(rate))
	return Money{value: net}.Round()
}
