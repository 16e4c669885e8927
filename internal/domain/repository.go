package domain

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// SentSet is the in-memory view of the dedup registry for one radar pass.
type SentSet map[string]struct{}

func (s SentSet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

func (s SentSet) Add(id string) {
	s[id] = struct{}{}
}

// SentSignalRepository persists identifiers of signals already notified.
// Snapshot is loaded once at run start; Add persists immediately so a
// mid-run crash never causes re-notification. Adding a present identifier
// is a no-op.
type SentSignalRepository interface {
	Snapshot(ctx context.Context) (SentSet, error)
	Add(ctx context.Context, identifier string) error
}

// FeedClient fetches the three feed snapshots a radar pass evaluates.
type FeedClient interface {
	Protocols(ctx context.Context) ([]ProtocolRecord, error)
	ActiveUsers(ctx context.Context) (map[string]UsageEntry, error)
	Raises(ctx context.Context) ([]RaiseRecord, error)
}
