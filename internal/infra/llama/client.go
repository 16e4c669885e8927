package llama

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/NasaVasa/radarbot/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Client fetches the DeFiLlama feed snapshots. Every call is bounded by the
// configured HTTP timeout; a failed fetch surfaces as an error the caller
// downgrades to an empty snapshot for that feed.
type Client struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

func (c *Client) Protocols(ctx context.Context) ([]domain.ProtocolRecord, error) {
	var payload []protocolPayload
	if err := c.getJSON(ctx, "/protocols", &payload); err != nil {
		return nil, err
	}

	records := make([]domain.ProtocolRecord, 0, len(payload))
	for _, p := range payload {
		tvl := decimal.Zero
		if p.TVL.Valid {
			tvl = p.TVL.Decimal
		}
		records = append(records, domain.ProtocolRecord{
			Slug:        p.Slug,
			Name:        p.Name,
			Category:    p.Category,
			TVL:         tvl,
			Chains:      p.Chains,
			ListedAt:    int64(p.ListedAt),
			TokenSymbol: p.TokenSymbol,
		})
	}
	return records, nil
}

func (c *Client) ActiveUsers(ctx context.Context) (map[string]domain.UsageEntry, error) {
	var payload map[string]usagePayload
	if err := c.getJSON(ctx, "/activeUsers", &payload); err != nil {
		return nil, err
	}

	entries := make(map[string]domain.UsageEntry, len(payload))
	for id, u := range payload {
		entries[strings.ToLower(id)] = domain.UsageEntry{
			ActiveUsers:  int64(u.Users.Value),
			NewUsers:     int64(u.NewUsers.Value),
			Transactions: int64(u.Txs.Value),
		}
	}
	return entries, nil
}

func (c *Client) Raises(ctx context.Context) ([]domain.RaiseRecord, error) {
	var payload raisesEnvelope
	if err := c.getJSON(ctx, "/raises", &payload); err != nil {
		return nil, err
	}

	records := make([]domain.RaiseRecord, 0, len(payload.Raises))
	for _, r := range payload.Raises {
		amount := decimal.Zero
		if r.Amount.Valid {
			amount = r.Amount.Decimal
		}
		investors := make([]domain.Investor, 0, len(r.Investors))
		for _, inv := range r.Investors {
			investors = append(investors, domain.Investor{Name: inv.Name})
		}
		records = append(records, domain.RaiseRecord{
			Project:   r.Project,
			Amount:    amount,
			Date:      int64(r.Date),
			Investors: investors,
		})
	}
	return records, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	endpoint := c.baseURL + path
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	start := time.Now()
	c.logger.Info("llama request start", zap.String("url", endpoint))
	response, err := c.client.Do(request)
	if err != nil {
		c.logger.Error("llama request failed", zap.String("url", endpoint), zap.Error(err))
		return err
	}
	defer response.Body.Close()

	c.logger.Info(
		"llama request complete",
		zap.String("url", endpoint),
		zap.Int("status", response.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("llama error: status %d", response.StatusCode)
	}

	return json.NewDecoder(response.Body).Decode(out)
}
