package interndb

import (
	"time"

	interndomain "github.com/Black-And-White-Club/intern-dashboard/app/modules/intern/domain"
	"github.com/uptrace/bun"
)

// Intern is the persisted form of an InternRecord. ID carries insertion order.
type Intern struct {
	bun.BaseModel `bun:"table:interns,alias:i"`

	ID             int64     `bun:"id,pk,autoincrement"`
	Name           string    `bun:"name,notnull"`
	ReferralCode   string    `bun:"referral_code,notnull"`
	TotalDonations int       `bun:"total_donations,notnull,default:0"`
	CreatedAt      time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// ToRecord drops storage-only columns.
func (i Intern) ToRecord() interndomain.InternRecord {
	return interndomain.InternRecord{
		Name:           i.Name,
		ReferralCode:   i.ReferralCode,
		TotalDonations: i.TotalDonations,
	}
}

func fromRecord(r interndomain.InternRecord) *Intern {
	return &Intern{
		Name:           r.Name,
		ReferralCode:   r.ReferralCode,
		TotalDonations: r.TotalDonations,
	}
}
