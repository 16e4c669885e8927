package usecase

import (
	"time"

	"github.com/NasaVasa/radarbot/internal/domain"
)

// UsageScorer rates a protocol on behavioral signals from its usage entry.
// A protocol with no usage entry scores zero; whether zero passes is the
// caller's threshold decision, not this scorer's.
type UsageScorer struct {
	usageRecencyDays int
	now              func() time.Time
}

func NewUsageScorer(usageRecencyDays int) *UsageScorer {
	return &UsageScorer{usageRecencyDays: usageRecencyDays, now: time.Now}
}

func (s *UsageScorer) Score(p domain.ProtocolRecord, entry domain.UsageEntry, ok bool) int {
	if !ok {
		return 0
	}

	score := 0

	switch {
	case entry.ActiveUsers > 5000:
		score += 25
	case entry.ActiveUsers > 1000:
		score += 15
	case entry.ActiveUsers > 300:
		score += 8
	}

	switch {
	case entry.NewUsers > 500:
		score += 25
	case entry.NewUsers > 100:
		score += 15
	case entry.NewUsers > 30:
		score += 8
	}

	switch {
	case entry.Transactions > 20000:
		score += 20
	case entry.Transactions > 5000:
		score += 10
	case entry.Transactions > 1000:
		score += 5
	}

	if age, known := listingAgeDays(s.now(), p.ListedAt); known && age <= float64(s.usageRecencyDays) {
		score += 10
	}

	return score
}
