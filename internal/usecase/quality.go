package usecase

import (
	"time"

	"github.com/NasaVasa/radarbot/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	tvlTier1 = decimal.NewFromInt(50_000_000)
	tvlTier2 = decimal.NewFromInt(10_000_000)
	tvlTier3 = decimal.NewFromInt(1_000_000)
)

// QualityScorer rates a protocol on structural signals: category, size,
// chain breadth and listing age. The rubric is additive and uncapped;
// totals above 100 read as very high quality.
type QualityScorer struct {
	newProjectDays int
	now            func() time.Time
}

func NewQualityScorer(newProjectDays int) *QualityScorer {
	return &QualityScorer{newProjectDays: newProjectDays, now: time.Now}
}

func (s *QualityScorer) Score(p domain.ProtocolRecord) int {
	// Base presence: the record made the feed at all.
	score := 10

	switch Classify(p.Category, p.Name) {
	case domain.CategoryL1L2, domain.CategoryPerpDEX, domain.CategoryDEX, domain.CategoryDeFi, domain.CategoryAIInfra:
		score += 25
	case domain.CategoryNFT, domain.CategoryGaming:
		score += 15
	default:
		score += 5
	}

	switch {
	case p.TVL.GreaterThanOrEqual(tvlTier1):
		score += 30
	case p.TVL.GreaterThanOrEqual(tvlTier2):
		score += 20
	case p.TVL.GreaterThanOrEqual(tvlTier3):
		score += 10
	}

	switch {
	case len(p.Chains) >= 3:
		score += 15
	case len(p.Chains) == 2:
		score += 8
	}

	// Unknown listing age contributes nothing but is not disqualifying.
	if age, known := listingAgeDays(s.now(), p.ListedAt); known {
		switch {
		case age <= float64(s.newProjectDays):
			score += 20
		case age <= 30:
			score += 10
		}
	}

	return score
}

// listingAgeDays reports how many days ago the protocol was listed. A zero
// or future timestamp means the age is unknown.
func listingAgeDays(now time.Time, listedAt int64) (float64, bool) {
	if listedAt <= 0 {
		return 0, false
	}
	age := now.Sub(time.Unix(listedAt, 0)).Hours() / 24
	if age < 0 {
		return 0, false
	}
	return age, true
}
