package interndomain

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidRecord is returned when a record read from a data source breaks
// the InternRecord invariants.
var ErrInvalidRecord = errors.New("invalid intern record")

var validate = validator.New(validator.WithRequiredStructEnabled())

// InternRecord is a single participant as served by any data source.
type InternRecord struct {
	Name           string `json:"name" validate:"required"`
	ReferralCode   string `json:"referralCode" validate:"required"`
	TotalDonations int    `json:"totalDonations" validate:"gte=0"`
}

// Validate enforces non-empty names and referral codes and non-negative totals.
func (r InternRecord) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidRecord, r.Name, err)
	}
	return nil
}

// ValidateAll validates every record and stops at the first violation.
func ValidateAll(records []InternRecord) error {
	for _, r := range records {
		if err := r.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// LeaderboardEntry is a ranked, presentable view of one record.
// Rank is the 0-based position after sorting.
type LeaderboardEntry struct {
	Name           string `json:"name"`
	TotalDonations int    `json:"totalDonations"`
	Rank           int    `json:"rank"`
	Badge          Badge  `json:"badge"`
	Tier           Tier   `json:"tier"`
}
