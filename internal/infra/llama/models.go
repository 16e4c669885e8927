package llama

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

type protocolPayload struct {
	Name        string          `json:"name"`
	Slug        string          `json:"slug"`
	Category    string          `json:"category"`
	TVL         NullableDecimal `json:"tvl"`
	Chains      []string        `json:"chains"`
	ListedAt    LooseCount      `json:"listedAt"`
	TokenSymbol string          `json:"tokenSymbol"`
}

type raisesEnvelope struct {
	Raises []raisePayload `json:"raises"`
}

type raisePayload struct {
	Project   string            `json:"project"`
	Amount    NullableDecimal   `json:"amount"`
	Date      LooseCount        `json:"date"`
	Investors []investorPayload `json:"investors"`
}

type investorPayload struct {
	Name string `json:"name"`
}

type usagePayload struct {
	Users    metricValue `json:"users"`
	NewUsers metricValue `json:"newUsers"`
	Txs      metricValue `json:"txs"`
}

// metricValue is the feed's {"value": n} wrapper. The whole object, or the
// value inside it, may be null, a string, or garbage; anything unusable
// reads as zero.
type metricValue struct {
	Value LooseCount `json:"value"`
}

func (m *metricValue) UnmarshalJSON(data []byte) error {
	m.Value = 0
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if trimmed[0] == '{' {
		var inner struct {
			Value LooseCount `json:"value"`
		}
		if err := json.Unmarshal(trimmed, &inner); err == nil {
			m.Value = inner.Value
		}
		return nil
	}
	var direct LooseCount
	if err := json.Unmarshal(trimmed, &direct); err == nil {
		m.Value = direct
	}
	return nil
}

// LooseCount decodes a count that the feed may deliver as a number, a
// numeric string, null, or not at all. Non-numeric input degrades to zero
// rather than failing the record.
type LooseCount int64

func (c *LooseCount) UnmarshalJSON(data []byte) error {
	*c = 0
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		return nil
	}
	trimmed = strings.Trim(trimmed, "\"")
	if trimmed == "" {
		return nil
	}
	dec, err := decimal.NewFromString(trimmed)
	if err != nil {
		return nil
	}
	*c = LooseCount(dec.IntPart())
	return nil
}

// NullableDecimal mirrors LooseCount for money amounts: null, absence and
// garbage all read as invalid, which callers treat as zero.
type NullableDecimal struct {
	Decimal decimal.Decimal
	Valid   bool
}

func (n *NullableDecimal) UnmarshalJSON(data []byte) error {
	n.Valid = false
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		return nil
	}
	if trimmed[0] == '"' && trimmed[len(trimmed)-1] == '"' {
		trimmed = strings.Trim(trimmed, "\"")
	}
	dec, err := decimal.NewFromString(trimmed)
	if err != nil {
		return nil
	}
	n.Decimal = dec
	n.Valid = true
	return nil
}

func (n NullableDecimal) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Decimal.String())
}
