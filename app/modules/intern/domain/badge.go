package interndomain

import (
	"errors"
	"strconv"
)

// ErrNegativeRank is returned when a rank badge is requested for a negative index.
var ErrNegativeRank = errors.New("rank index must not be negative")

// Badge is the display marker for a leaderboard position.
type Badge struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

var podium = [...]Badge{
	{Label: "1st", Icon: "🥇"},
	{Label: "2nd", Icon: "🥈"},
	{Label: "3rd", Icon: "🥉"},
}

// RankBadge returns the badge for a 0-based leaderboard index. The top three
// get medals; everyone else gets their 1-based position as plain text.
func RankBadge(index int) (Badge, error) {
	if index < 0 {
		return Badge{}, ErrNegativeRank
	}
	if index < len(podium) {
		return podium[index], nil
	}
	pos := index + 1
	return Badge{Label: Ordinal(pos), Icon: strconv.Itoa(pos)}, nil
}

// Ordinal formats n as an English ordinal ("1st", "12th", "23rd").
func Ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}
