package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ProtocolRecord is one entry from the protocols feed. Numeric and text
// fields may be absent upstream; absent values decode to their zero value
// and score as zero contribution.
type ProtocolRecord struct {
	Slug        string
	Name        string
	Category    string
	TVL         decimal.Decimal
	Chains      []string
	ListedAt    int64
	TokenSymbol string
}

// Identifier returns the slug, falling back to the lower-cased name when the
// feed omits a slug. Empty means the record cannot be tracked.
func (p ProtocolRecord) Identifier() string {
	if p.Slug != "" {
		return strings.ToLower(p.Slug)
	}
	return strings.ToLower(p.Name)
}

// HasToken reports whether the protocol already launched a token. Tokenized
// protocols are excluded from pre-token signal types.
func (p ProtocolRecord) HasToken() bool {
	return p.TokenSymbol != ""
}

// UsageEntry carries behavioral counters for one protocol, keyed by the same
// identifier space as ProtocolRecord.
type UsageEntry struct {
	ActiveUsers  int64
	NewUsers     int64
	Transactions int64
}

// Investor is one backer on a raise.
type Investor struct {
	Name string
}

// RaiseRecord is one fundraising event. Project is the identifier; it is
// matched against protocols by best-effort lower-cased name/slug lookup and
// a miss is not an error.
type RaiseRecord struct {
	Project   string
	Amount    decimal.Decimal
	Date      int64
	Investors []Investor
}

// Snapshot is the full feed state one radar pass evaluates. A feed that
// failed to fetch is represented by its empty value.
type Snapshot struct {
	Protocols []ProtocolRecord
	Usage     map[string]UsageEntry
	Raises    []RaiseRecord
}
