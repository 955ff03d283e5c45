package reservation

import "rentalhub/internal/domain/daterange"

type Quote struct {
	Nights     int
	TotalPrice Money
}

type PriceCalculator interface {
	Quote(nightlyPrice Money, dates daterange.DateRange) Quote
}

// NightlyPriceCalculator charges the nightly price per night. A same-day stay costs one night.
type NightlyPriceCalculator struct{}

func NewNightlyPriceCalculator() *NightlyPriceCalculator {
	return &NightlyPriceCalculator{}
}

func (NightlyPriceCalculator) Quote(nightlyPrice Money, dates daterange.DateRange) Quote {
	nights := dates.Nights()
	if nights == 0 {
		return Quote{Nights: 0, TotalPrice: nightlyPrice}
	}
	return Quote{Nights: nights, TotalPrice: nightlyPrice.Times(nights)}
}
