package testutils

import (
	"fmt"
	"strings"
	"time"

	interndomain "github.com/Black-And-White-Club/intern-dashboard/app/modules/intern/domain"
	"github.com/brianvoe/gofakeit/v7"
)

// TestDataGenerator provides methods to create test data for integration tests
type TestDataGenerator struct {
	faker *gofakeit.Faker
	seed  int64
}

// NewTestDataGenerator creates a new test data generator with optional seed
func NewTestDataGenerator(seed ...int64) *TestDataGenerator {
	var s int64
	if len(seed) > 0 {
		s = seed[0]
	} else {
		s = time.Now().UnixNano()
	}

	return &TestDataGenerator{
		faker: gofakeit.New(uint64(s)),
		seed:  s,
	}
}

// Seed returns the seed so failing runs can be reproduced.
func (g *TestDataGenerator) Seed() int64 {
	return g.seed
}

// GenerateInterns creates count valid records with totals in [0, maxTotal].
// Referral codes are unique within the batch.
func (g *TestDataGenerator) GenerateInterns(count, maxTotal int) []interndomain.InternRecord {
	records := make([]interndomain.InternRecord, count)
	for i := range records {
		first := g.faker.FirstName()
		last := g.faker.LastName()
		records[i] = interndomain.InternRecord{
			Name:           first + " " + last,
			ReferralCode:   fmt.Sprintf("%s%d", strings.ToLower(last), i),
			TotalDonations: g.faker.Number(0, maxTotal),
		}
	}
	return records
}

// WithTies overwrites every other record's total with total.
func WithTies(records []interndomain.InternRecord, total int) []interndomain.InternRecord {
	out := make([]interndomain.InternRecord, len(records))
	copy(out, records)
	for i := 0; i < len(out); i += 2 {
		out[i].TotalDonations = total
	}
	return out
}
