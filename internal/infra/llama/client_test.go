package llama

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestClientProtocols(t *testing.T) {
	server := newTestServer(t, map[string]string{
		"/protocols": `[
			{"name":"Foo","slug":"foo","category":"Lending","tvl":60000000,"chains":["eth","arb"],"listedAt":1767225600,"tokenSymbol":"FOO"},
			{"name":"Bare"}
		]`,
	})

	client := NewClient(server.URL, time.Second, zap.NewNop())
	records, err := client.Protocols(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "foo", records[0].Slug)
	assert.Equal(t, "60000000", records[0].TVL.String())
	assert.Equal(t, int64(1767225600), records[0].ListedAt)
	assert.True(t, records[0].HasToken())

	assert.Equal(t, "bare", records[1].Identifier())
	assert.True(t, records[1].TVL.IsZero())
	assert.False(t, records[1].HasToken())
}

func TestClientActiveUsersLowersKeys(t *testing.T) {
	server := newTestServer(t, map[string]string{
		"/activeUsers": `{"Foo":{"users":{"value":6000},"newUsers":{"value":600},"txs":{"value":25000}}}`,
	})

	client := NewClient(server.URL, time.Second, zap.NewNop())
	entries, err := client.ActiveUsers(context.Background())
	require.NoError(t, err)

	entry, ok := entries["foo"]
	require.True(t, ok)
	assert.Equal(t, int64(6000), entry.ActiveUsers)
	assert.Equal(t, int64(600), entry.NewUsers)
	assert.Equal(t, int64(25000), entry.Transactions)
}

func TestClientRaises(t *testing.T) {
	server := newTestServer(t, map[string]string{
		"/raises": `{"raises":[{"project":"Foo","amount":2000000,"date":1766000000,"investors":[{"name":"Paradigm"}]}]}`,
	})

	client := NewClient(server.URL, time.Second, zap.NewNop())
	records, err := client.Raises(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Foo", records[0].Project)
	assert.Equal(t, "2000000", records[0].Amount.String())
	require.Len(t, records[0].Investors, 1)
}

func TestClientSurfacesHTTPErrors(t *testing.T) {
	server := newTestServer(t, nil)

	client := NewClient(server.URL, time.Second, zap.NewNop())
	_, err := client.Protocols(context.Background())
	require.Error(t, err)
}
