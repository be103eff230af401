package internservice

import (
	interndomain "github.com/Black-And-White-Club/intern-dashboard/app/modules/intern/domain"
)

// Source names where a result's records came from.
type Source string

const (
	SourceStore    Source = "store"
	SourceFallback Source = "fallback"
)

// NextLevel is the band above the intern's current tier.
type NextLevel struct {
	Level     interndomain.TierName `json:"level"`
	Icon      string                `json:"icon"`
	Remaining int                   `json:"remaining"`
}

// InternSummary is the dashboard profile payload.
type InternSummary struct {
	Name           string            `json:"name"`
	ReferralCode   string            `json:"referralCode"`
	TotalDonations int               `json:"totalDonations"`
	Progress       float64           `json:"progress"`
	Tier           interndomain.Tier `json:"tier"`
	Next           *NextLevel        `json:"nextLevel,omitempty"`
}

// InternResult pairs the summary with its source.
type InternResult struct {
	Intern InternSummary
	Source Source
}

// LeaderboardResult pairs the ranked entries with their source.
type LeaderboardResult struct {
	Entries []interndomain.LeaderboardEntry
	Source  Source
}

// HealthStatus is the liveness payload. The mongoConnected key predates the
// Postgres store and is kept for existing clients.
type HealthStatus struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Connected bool   `json:"mongoConnected"`
}
