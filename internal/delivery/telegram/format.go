package telegram

import (
	"fmt"
	"strings"
	"time"

	"github.com/NasaVasa/radarbot/internal/domain"
	"github.com/shopspring/decimal"
)

// Formatter renders selected candidates to message text. Protocol scores
// are shown clamped to /100 for display only; the selector compares the
// uncapped values.
type Formatter struct {
	now func() time.Time
}

func NewFormatter() *Formatter {
	return &Formatter{now: time.Now}
}

func (f *Formatter) RenderQuality(p domain.ProtocolRecord, category domain.Category, score int) string {
	return fmt.Sprintf(
		"New project signal (score %d/100)\n\nProject: %s\nCategory: %s\nTVL: $%s\nChains: %s\n\n%s",
		clampDisplayScore(score),
		p.Name,
		category,
		formatMoney(p.TVL),
		formatChains(p.Chains),
		f.timestamp(),
	)
}

func (f *Formatter) RenderUsage(p domain.ProtocolRecord, category domain.Category, score int) string {
	return fmt.Sprintf(
		"Usage signal (score %d/100)\n\nProject: %s\nCategory: %s\nTVL: $%s\nChains: %s\n\n%s",
		clampDisplayScore(score),
		p.Name,
		category,
		formatMoney(p.TVL),
		formatChains(p.Chains),
		f.timestamp(),
	)
}

func (f *Formatter) RenderRaise(r domain.RaiseRecord, score int) string {
	names := make([]string, 0, len(r.Investors))
	for _, inv := range r.Investors {
		names = append(names, inv.Name)
	}

	date := "?"
	if r.Date > 0 {
		date = time.Unix(r.Date, 0).UTC().Format("2006-01-02")
	}

	return fmt.Sprintf(
		"VC signal (top-tier raise, score %d)\n\nProject: %s\nInvestors: %s\nRaise: $%s\nDate: %s\n\n%s",
		score,
		r.Project,
		strings.Join(names, ", "),
		formatMoney(r.Amount),
		date,
		f.timestamp(),
	)
}

func (f *Formatter) timestamp() string {
	return f.now().UTC().Format("2006-01-02 15:04 UTC")
}

func clampDisplayScore(score int) int {
	if score > 100 {
		return 100
	}
	return score
}

func formatChains(chains []string) string {
	if len(chains) == 0 {
		return "-"
	}
	return strings.Join(chains, ", ")
}

// formatMoney renders a whole-currency amount with thousands grouping.
func formatMoney(amount decimal.Decimal) string {
	digits := amount.Round(0).BigInt().String()
	negative := strings.HasPrefix(digits, "-")
	if negative {
		digits = digits[1:]
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}

	out := b.String()
	if out == "" {
		out = "0"
	}
	if negative {
		out = "-" + out
	}
	return out
}
