package usecase

import (
	"testing"

	"github.com/NasaVasa/radarbot/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTopTier() []string {
	return []string{"paradigm", "a16z", "binance labs"}
}

func TestRaiseScoreAmountBuckets(t *testing.T) {
	scorer := NewRaiseScorer(nil)

	tests := []struct {
		amount int64
		want   int
	}{
		{0, 0},
		{999_999, 0},
		{1_000_000, 10},
		{4_999_999, 10},
		{5_000_000, 40},
		{50_000_000, 40},
	}

	for _, tt := range tests {
		r := domain.RaiseRecord{Project: "X", Amount: decimal.NewFromInt(tt.amount)}
		assert.Equal(t, tt.want, scorer.Score(r), "amount %d", tt.amount)
	}
}

func TestRaiseScoreInvestorTier(t *testing.T) {
	scorer := NewRaiseScorer(testTopTier())

	r := domain.RaiseRecord{
		Project: "Foo",
		Amount:  decimal.NewFromInt(2_000_000),
		Investors: []domain.Investor{
			{Name: "Paradigm"},
			{Name: "A16Z Crypto"},
			{Name: "Some Fund"},
		},
	}

	// 10 amount + 20 per allow-listed investor, no cap.
	require.Equal(t, 50, scorer.Score(r))
	require.True(t, scorer.TopTierMatch(r))
}

func TestRaiseTopTierMatchCaseInsensitiveSubstring(t *testing.T) {
	scorer := NewRaiseScorer(testTopTier())

	matched := domain.RaiseRecord{Investors: []domain.Investor{{Name: "BINANCE LABS Asia"}}}
	require.True(t, scorer.TopTierMatch(matched))

	unmatched := domain.RaiseRecord{Investors: []domain.Investor{{Name: "Regional Angels"}}}
	require.False(t, scorer.TopTierMatch(unmatched))

	empty := domain.RaiseRecord{}
	require.False(t, scorer.TopTierMatch(empty))
}
