package usecase

import (
	"strings"

	"github.com/NasaVasa/radarbot/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	raiseTier1 = decimal.NewFromInt(5_000_000)
	raiseTier2 = decimal.NewFromInt(1_000_000)
)

// RaiseScorer rates a fundraising event on amount and investor tier. The
// amount axis is monotonic in the raise size and zero below $1M; each
// distinguished investor adds 20 with no cap.
type RaiseScorer struct {
	topTier []string
}

// NewRaiseScorer takes the static allow-list of top-tier investor names,
// matched case-insensitively as substrings of investor display names.
func NewRaiseScorer(topTier []string) *RaiseScorer {
	lowered := make([]string, 0, len(topTier))
	for _, name := range topTier {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		lowered = append(lowered, name)
	}
	return &RaiseScorer{topTier: lowered}
}

func (s *RaiseScorer) Score(r domain.RaiseRecord) int {
	score := 0

	switch {
	case r.Amount.GreaterThanOrEqual(raiseTier1):
		score += 40
	case r.Amount.GreaterThanOrEqual(raiseTier2):
		score += 10
	}

	investors := loweredInvestors(r)
	for _, name := range s.topTier {
		if strings.Contains(investors, name) {
			score += 20
		}
	}

	return score
}

// TopTierMatch reports whether any investor on the raise is on the
// allow-list. Raises without a match are not signal candidates.
func (s *RaiseScorer) TopTierMatch(r domain.RaiseRecord) bool {
	investors := loweredInvestors(r)
	for _, name := range s.topTier {
		if strings.Contains(investors, name) {
			return true
		}
	}
	return false
}

func loweredInvestors(r domain.RaiseRecord) string {
	names := make([]string, 0, len(r.Investors))
	for _, inv := range r.Investors {
		names = append(names, strings.ToLower(inv.Name))
	}
	return strings.Join(names, " ")
}
