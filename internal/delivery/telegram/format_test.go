package telegram

import (
	"testing"
	"time"

	"github.com/NasaVasa/radarbot/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFormatter() *Formatter {
	f := NewFormatter()
	f.now = func() time.Time {
		return time.Date(2026, time.March, 15, 12, 30, 0, 0, time.UTC)
	}
	return f
}

func TestRenderQuality(t *testing.T) {
	f := newTestFormatter()

	p := domain.ProtocolRecord{
		Name:   "Foo Finance",
		TVL:    decimal.NewFromInt(60_000_000),
		Chains: []string{"eth", "arb", "op"},
	}

	text := f.RenderQuality(p, domain.CategoryDeFi, 95)
	assert.Contains(t, text, "New project signal (score 95/100)")
	assert.Contains(t, text, "Project: Foo Finance")
	assert.Contains(t, text, "Category: DeFi")
	assert.Contains(t, text, "TVL: $60,000,000")
	assert.Contains(t, text, "Chains: eth, arb, op")
	assert.Contains(t, text, "2026-03-15 12:30 UTC")
}

func TestRenderClampsDisplayScoreOnly(t *testing.T) {
	f := newTestFormatter()

	p := domain.ProtocolRecord{Name: "Over"}
	assert.Contains(t, f.RenderQuality(p, domain.CategoryGeneral, 115), "score 100/100")
	assert.Contains(t, f.RenderUsage(p, domain.CategoryGeneral, 108), "score 100/100")

	// Raise scores are uncapped and shown raw.
	r := domain.RaiseRecord{Project: "Big"}
	assert.Contains(t, f.RenderRaise(r, 120), "score 120")
}

func TestRenderRaise(t *testing.T) {
	f := newTestFormatter()

	r := domain.RaiseRecord{
		Project: "Foo",
		Amount:  decimal.NewFromInt(2_000_000),
		Date:    time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC).Unix(),
		Investors: []domain.Investor{
			{Name: "Paradigm"},
			{Name: "Some Fund"},
		},
	}

	text := f.RenderRaise(r, 30)
	assert.Contains(t, text, "Project: Foo")
	assert.Contains(t, text, "Investors: Paradigm, Some Fund")
	assert.Contains(t, text, "Raise: $2,000,000")
	assert.Contains(t, text, "Date: 2026-03-01")

	r.Date = 0
	assert.Contains(t, f.RenderRaise(r, 30), "Date: ?")
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"0", "0"},
		{"999", "999"},
		{"1000", "1,000"},
		{"2000000", "2,000,000"},
		{"60000000.49", "60,000,000"},
	}

	for _, tt := range tests {
		amount, err := decimal.NewFromString(tt.amount)
		require.NoError(t, err)
		assert.Equal(t, tt.want, formatMoney(amount), "amount %s", tt.amount)
	}
}
