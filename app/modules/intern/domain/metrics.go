package interndomain

import (
	"errors"
	"math"
)

// DefaultDonationTarget is the fundraising goal a participant's progress is measured against.
const DefaultDonationTarget = 2000

var (
	// ErrInvalidTarget is returned for a zero or negative progress target.
	ErrInvalidTarget = errors.New("progress target must be positive")

	// ErrNegativeTotal is returned for a negative donation total.
	ErrNegativeTotal = errors.New("donation total must not be negative")
)

// Progress returns min(total/target, 1) * 100.
func Progress(total, target int) (float64, error) {
	if target <= 0 {
		return 0, ErrInvalidTarget
	}
	if total < 0 {
		return 0, ErrNegativeTotal
	}

	ratio := float64(total) / float64(target)
	if ratio > 1 {
		ratio = 1
	}
	return ratio * 100, nil
}

// RoundProgress rounds a percentage to two decimals for display.
func RoundProgress(p float64) float64 {
	return math.Round(p*100) / 100
}
