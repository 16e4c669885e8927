package llama

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProtocolPayloadDecoding(t *testing.T) {
	raw := `{
		"name": "Foo Finance",
		"slug": "foo-finance",
		"category": "Lending",
		"tvl": 60000000.5,
		"chains": ["Ethereum", "Arbitrum"],
		"listedAt": 1767225600,
		"tokenSymbol": "FOO"
	}`

	var p protocolPayload
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	assert.Equal(t, "foo-finance", p.Slug)
	assert.True(t, p.TVL.Valid)
	assert.Equal(t, "60000000.5", p.TVL.Decimal.String())
	assert.Equal(t, int64(1767225600), int64(p.ListedAt))
	assert.Equal(t, "FOO", p.TokenSymbol)
}

func TestProtocolPayloadToleratesMissingFields(t *testing.T) {
	var p protocolPayload
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Bare"}`), &p))
	assert.False(t, p.TVL.Valid)
	assert.Zero(t, int64(p.ListedAt))
	assert.Empty(t, p.Chains)

	require.NoError(t, json.Unmarshal([]byte(`{"name":"Nulls","tvl":null,"listedAt":null}`), &p))
	assert.False(t, p.TVL.Valid)
	assert.Zero(t, int64(p.ListedAt))
}

func TestUsagePayloadDecoding(t *testing.T) {
	tests := []struct {
		name                 string
		raw                  string
		users, newUsers, txs int64
	}{
		{
			"nested values",
			`{"users":{"value":6000},"newUsers":{"value":600},"txs":{"value":25000}}`,
			6000, 600, 25000,
		},
		{
			"string value degrades",
			`{"users":{"value":"1500"},"txs":{"value":"n/a"}}`,
			1500, 0, 0,
		},
		{
			"null metric objects",
			`{"users":null,"newUsers":null,"txs":null}`,
			0, 0, 0,
		},
		{
			"bare numbers",
			`{"users":42,"txs":7}`,
			42, 0, 7,
		},
		{
			"empty object",
			`{}`,
			0, 0, 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var u usagePayload
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &u))
			assert.Equal(t, tt.users, int64(u.Users.Value))
			assert.Equal(t, tt.newUsers, int64(u.NewUsers.Value))
			assert.Equal(t, tt.txs, int64(u.Txs.Value))
		})
	}
}

func TestRaisesEnvelopeDecoding(t *testing.T) {
	raw := `{"raises":[
		{"project":"Foo","amount":"2000000","date":1766000000,"investors":[{"name":"Paradigm"},{"name":"Some Fund"}]},
		{"project":"Bare"}
	]}`

	var envelope raisesEnvelope
	require.NoError(t, json.Unmarshal([]byte(raw), &envelope))
	require.Len(t, envelope.Raises, 2)

	first := envelope.Raises[0]
	assert.True(t, first.Amount.Valid)
	assert.Equal(t, "2000000", first.Amount.Decimal.String())
	require.Len(t, first.Investors, 2)
	assert.Equal(t, "Paradigm", first.Investors[0].Name)

	second := envelope.Raises[1]
	assert.False(t, second.Amount.Valid)
	assert.Empty(t, second.Investors)
}

func TestLooseCountGarbageReadsZero(t *testing.T) {
	var c LooseCount
	require.NoError(t, json.Unmarshal([]byte(`"not a number"`), &c))
	assert.Zero(t, int64(c))

	require.NoError(t, json.Unmarshal([]byte(`true`), &c))
	assert.Zero(t, int64(c))

	require.NoError(t, json.Unmarshal([]byte(`1700000000.0`), &c))
	assert.Equal(t, int64(1700000000), int64(c))
}
