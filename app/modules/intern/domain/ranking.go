package interndomain

import (
	"cmp"
	"slices"
)

// SortByTotal returns a copy of records ordered by TotalDonations descending.
// Records with equal totals keep their input order.
func SortByTotal(records []InternRecord) []InternRecord {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b InternRecord) int {
		return cmp.Compare(b.TotalDonations, a.TotalDonations)
	})
	return sorted
}

// BuildLeaderboard ranks records by position. Input must already be sorted.
func BuildLeaderboard(sorted []InternRecord) []LeaderboardEntry {
	entries := make([]LeaderboardEntry, 0, len(sorted))
	for i, r := range sorted {
		// i is never negative, so RankBadge cannot fail here.
		badge, _ := RankBadge(i)
		entries = append(entries, LeaderboardEntry{
			Name:           r.Name,
			TotalDonations: r.TotalDonations,
			Rank:           i,
			Badge:          badge,
			Tier:           TierFor(r.TotalDonations),
		})
	}
	return entries
}
