package reservation

import (
	"github.com/shopspring/decimal"
)

type PriceCalculator interface {
	TotalPrice(pricePerNight decimal.Decimal, period StayPeriod) decimal.Decimal
}

// NightlyPriceCalculator charges the nightly rate for every night of the stay.
type NightlyPriceCalculator struct{}

func NewNightlyPriceCalculator() *NightlyPriceCalculator {
	return &NightlyPriceCalculator{}
}

func (NightlyPriceCalculator) TotalPrice(pricePerNight decimal.Decimal, period StayPeriod) decimal.Decimal {
	return pricePerNight.Mul(decimal.NewFromInt(int64(period.Nights()))).Round(2)
}
