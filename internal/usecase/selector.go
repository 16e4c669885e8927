package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/NasaVasa/radarbot/internal/domain"
	"go.uber.org/zap"
)

type Notifier interface {
	Notify(text string) error
}

// Renderer turns a selected candidate into the outbound message text.
type Renderer interface {
	RenderQuality(p domain.ProtocolRecord, category domain.Category, score int) string
	RenderUsage(p domain.ProtocolRecord, category domain.Category, score int) string
	RenderRaise(r domain.RaiseRecord, score int) string
}

type SelectorConfig struct {
	NewProjectDays   int
	UsageRecencyDays int
	MinQualityScore  int
	MinUsageScore    int
	MaxSignalsPerRun int
	RaiseSubCap      int
	NotifyDelay      time.Duration
}

// Selector runs one closed evaluation over a feed snapshot: it builds the
// three candidate lists, filters by threshold, recency and the dedup
// registry, ranks, and spends the per-run budget in RAISE, QUALITY, USAGE
// priority order. Each emission commits its identifier to the registry
// before the next candidate is considered.
type Selector struct {
	cfg      SelectorConfig
	registry domain.SentSignalRepository
	notifier Notifier
	renderer Renderer
	quality  *QualityScorer
	usage    *UsageScorer
	raise    *RaiseScorer
	logger   *zap.Logger
	now      func() time.Time
}

func NewSelector(
	cfg SelectorConfig,
	registry domain.SentSignalRepository,
	notifier Notifier,
	renderer Renderer,
	quality *QualityScorer,
	usage *UsageScorer,
	raise *RaiseScorer,
	logger *zap.Logger,
) *Selector {
	return &Selector{
		cfg:      cfg,
		registry: registry,
		notifier: notifier,
		renderer: renderer,
		quality:  quality,
		usage:    usage,
		raise:    raise,
		logger:   logger,
		now:      time.Now,
	}
}

type candidate struct {
	id     string
	score  int
	kind   domain.SignalKind
	render func() string
}

func (s *Selector) Run(ctx context.Context, snap domain.Snapshot) (domain.RunReport, error) {
	report := domain.RunReport{StartedAt: s.now(), State: domain.RunNoSignals}

	sent, err := s.registry.Snapshot(ctx)
	if err != nil {
		return report, fmt.Errorf("load sent registry: %w", err)
	}

	raiseList, qualityList, usageList := s.buildCandidates(snap, sent)
	sortCandidates(raiseList)
	sortCandidates(qualityList)
	sortCandidates(usageList)

	s.logger.Info(
		"candidates built",
		zap.Int("raise", len(raiseList)),
		zap.Int("quality", len(qualityList)),
		zap.Int("usage", len(usageList)),
	)

	budget := s.cfg.MaxSignalsPerRun
	s.emit(ctx, raiseList, min(s.cfg.RaiseSubCap, budget), sent, &report)
	s.emit(ctx, qualityList, budget-report.Sent, sent, &report)
	s.emit(ctx, usageList, budget-report.Sent, sent, &report)

	if report.Sent > 0 {
		report.State = domain.RunCompleted
	}
	return report, nil
}

func (s *Selector) buildCandidates(snap domain.Snapshot, sent domain.SentSet) (raises, quality, usage []candidate) {
	now := s.now()
	index := protocolIndex(snap.Protocols)

	for _, p := range snap.Protocols {
		id := p.Identifier()
		if id == "" || p.HasToken() {
			continue
		}
		age, known := listingAgeDays(now, p.ListedAt)
		if !known {
			continue
		}
		sigID := domain.ProtocolSignalID(id)
		if sent.Contains(sigID) {
			continue
		}

		proto := p
		category := Classify(p.Category, p.Name)

		if age <= float64(s.cfg.NewProjectDays) {
			if score := s.quality.Score(p); score >= s.cfg.MinQualityScore {
				quality = append(quality, candidate{
					id:     sigID,
					score:  score,
					kind:   domain.SignalQuality,
					render: func() string { return s.renderer.RenderQuality(proto, category, score) },
				})
			}
		}

		if age <= float64(s.cfg.UsageRecencyDays) {
			entry, ok := snap.Usage[id]
			if score := s.usage.Score(p, entry, ok); score >= s.cfg.MinUsageScore {
				usage = append(usage, candidate{
					id:     sigID,
					score:  score,
					kind:   domain.SignalUsage,
					render: func() string { return s.renderer.RenderUsage(proto, category, score) },
				})
			}
		}
	}

	for _, r := range snap.Raises {
		if strings.TrimSpace(r.Project) == "" {
			continue
		}
		if !s.raise.TopTierMatch(r) {
			continue
		}
		// A raise we can cross-reference must still be pre-token. One we
		// cannot is assumed pre-token.
		if p, ok := index[strings.ToLower(r.Project)]; ok && p.HasToken() {
			continue
		}
		sigID := domain.RaiseSignalID(r.Project)
		if sent.Contains(sigID) {
			continue
		}

		raise := r
		score := s.raise.Score(r)
		raises = append(raises, candidate{
			id:     sigID,
			score:  score,
			kind:   domain.SignalRaise,
			render: func() string { return s.renderer.RenderRaise(raise, score) },
		})
	}

	return raises, quality, usage
}

// emit spends at most limit emissions from one ranked list. A dispatch
// failure skips the dedup commit and does not consume budget; a persist
// failure after a delivered notification is logged but the signal still
// counts as sent.
func (s *Selector) emit(ctx context.Context, list []candidate, limit int, sent domain.SentSet, report *domain.RunReport) {
	for _, cand := range list {
		if limit <= 0 || ctx.Err() != nil {
			return
		}
		// The same protocol can qualify in more than one list; the first
		// emission wins.
		if sent.Contains(cand.id) {
			continue
		}

		if err := s.notifier.Notify(cand.render()); err != nil {
			s.logger.Warn("signal dispatch failed",
				zap.String("identifier", cand.id),
				zap.String("kind", string(cand.kind)),
				zap.Error(err),
			)
			s.pause(ctx)
			continue
		}

		sent.Add(cand.id)
		if err := s.registry.Add(ctx, cand.id); err != nil {
			s.logger.Error("failed to persist sent signal",
				zap.String("identifier", cand.id),
				zap.Error(err),
			)
		}

		report.Sent++
		limit--
		switch cand.kind {
		case domain.SignalRaise:
			report.RaiseSent++
		case domain.SignalQuality:
			report.QualitySent++
		case domain.SignalUsage:
			report.UsageSent++
		}

		s.logger.Info("signal sent",
			zap.String("identifier", cand.id),
			zap.String("kind", string(cand.kind)),
			zap.Int("score", cand.score),
		)

		s.pause(ctx)
	}
}

// pause honors the notifier collaborator's rate limit between dispatches.
func (s *Selector) pause(ctx context.Context) {
	if s.cfg.NotifyDelay <= 0 {
		return
	}
	timer := time.NewTimer(s.cfg.NotifyDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

// sortCandidates orders by score descending with identifier as an explicit
// tie-break so selection is reproducible regardless of feed arrival order.
func sortCandidates(list []candidate) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].score != list[j].score {
			return list[i].score > list[j].score
		}
		return list[i].id < list[j].id
	})
}

// protocolIndex keys protocols by lower-cased slug and name for best-effort
// raise cross-referencing.
func protocolIndex(protocols []domain.ProtocolRecord) map[string]domain.ProtocolRecord {
	index := make(map[string]domain.ProtocolRecord, len(protocols))
	for _, p := range protocols {
		if slug := strings.ToLower(p.Slug); slug != "" {
			index[slug] = p
		}
		if name := strings.ToLower(p.Name); name != "" {
			if _, exists := index[name]; !exists {
				index[name] = p
			}
		}
	}
	return index
}
