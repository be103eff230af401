package interndomain

import "slices"

// canonicalInterns is the fixed dataset. It is both the offline fallback and
// the rows seeded into an empty store, in this order.
var canonicalInterns = []InternRecord{
	{Name: "Alex Johnson", ReferralCode: "alexj2025", TotalDonations: 1250},
	{Name: "Maria Garcia", ReferralCode: "mariag2025", TotalDonations: 1100},
	{Name: "Ben Carter", ReferralCode: "benc2025", TotalDonations: 980},
	{Name: "Sarah Kim", ReferralCode: "sarahk2025", TotalDonations: 850},
	{Name: "David Chen", ReferralCode: "davidc2025", TotalDonations: 720},
	{Name: "Emma Wilson", ReferralCode: "emmaw2025", TotalDonations: 650},
	{Name: "Michael Brown", ReferralCode: "michaelb2025", TotalDonations: 580},
	{Name: "Lisa Rodriguez", ReferralCode: "lisar2025", TotalDonations: 420},
}

// Fallback serves the canonical dataset when the store cannot.
type Fallback struct{}

// Primary returns the record shown on the single-participant view.
func (Fallback) Primary() InternRecord {
	return canonicalInterns[0]
}

// All returns the dataset in store order.
func (Fallback) All() []InternRecord {
	return slices.Clone(canonicalInterns)
}

// SeedRecords returns the rows inserted into an empty store.
func SeedRecords() []InternRecord {
	return slices.Clone(canonicalInterns)
}
