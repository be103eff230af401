package interndomain

// TierName is the label of an achievement band.
type TierName string

const (
	TierDiamond  TierName = "Diamond"
	TierPlatinum TierName = "Platinum"
	TierGold     TierName = "Gold"
	TierSilver   TierName = "Silver"
	TierBronze   TierName = "Bronze"
	TierRookie   TierName = "Rookie"
)

// Tier is an achievement band. It only affects display.
type Tier struct {
	Name      TierName `json:"level"`
	Icon      string   `json:"icon"`
	Threshold int      `json:"threshold"`
}

// tiers is ordered from the highest threshold down; TierFor relies on it.
var tiers = []Tier{
	{Name: TierDiamond, Icon: "💎", Threshold: 2000},
	{Name: TierPlatinum, Icon: "🥇", Threshold: 1500},
	{Name: TierGold, Icon: "🥇", Threshold: 1000},
	{Name: TierSilver, Icon: "🥈", Threshold: 500},
	{Name: TierBronze, Icon: "🥉", Threshold: 250},
	{Name: TierRookie, Icon: "🌱", Threshold: 0},
}

// Tiers returns the bands from highest to lowest.
func Tiers() []Tier {
	out := make([]Tier, len(tiers))
	copy(out, tiers)
	return out
}

// TierFor returns the first band whose threshold total reaches.
// Negative totals fall through to Rookie.
func TierFor(total int) Tier {
	for _, t := range tiers {
		if total >= t.Threshold {
			return t
		}
	}
	return tiers[len(tiers)-1]
}

// NextTier returns the band above total's current band and the donations
// still needed to reach it. ok is false once total is in the top band.
func NextTier(total int) (next Tier, remaining int, ok bool) {
	current := TierFor(total)
	for i, t := range tiers {
		if t.Name != current.Name {
			continue
		}
		if i == 0 {
			return Tier{}, 0, false
		}
		next = tiers[i-1]
		return next, next.Threshold - total, true
	}
	return Tier{}, 0, false
}
