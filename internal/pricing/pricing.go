// Package pricing holds the pure price and rating math.
package pricing

import "math"

const popularityScale = 5

// Price computes the display price in currency units for a product given the
// current gold price per gram: (popularityScore + 1) * weight * goldPrice,
// rounded to cents.
func Price(popularityScore, weight, goldPrice float64) float64 {
	return round((popularityScore+1)*weight*goldPrice, 2)
}

// Rating converts a 0-1 popularity score to a 0-5 rating with one decimal
// place.
func Rating(popularityScore float64) float64 {
	return round(popularityScore*popularityScale, 1)
}

// round scales by 10^places, rounds half away from zero, and descales.
// The scaled rounding is part of the pricing contract.
func round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
