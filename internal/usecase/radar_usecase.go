package usecase

import (
	"context"
	"sync"

	"github.com/NasaVasa/radarbot/internal/domain"
	"go.uber.org/zap"
)

// RadarService drives one full radar pass: fetch the three feed snapshots
// and hand them to the selector. A feed that fails to fetch degrades to its
// empty value; the pass continues with whatever the other feeds returned.
type RadarService struct {
	feeds    domain.FeedClient
	selector *Selector
	logger   *zap.Logger

	runMu   sync.Mutex
	mu      sync.Mutex
	lastRun *domain.RunReport
}

func NewRadarService(feeds domain.FeedClient, selector *Selector, logger *zap.Logger) *RadarService {
	return &RadarService{feeds: feeds, selector: selector, logger: logger}
}

// RunOnce executes one radar pass. Passes are serialized; a manual trigger
// overlapping a scheduled one simply waits its turn.
func (s *RadarService) RunOnce(ctx context.Context) error {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	s.logger.Info("radar pass start")

	snap := domain.Snapshot{Usage: map[string]domain.UsageEntry{}}

	protocols, err := s.feeds.Protocols(ctx)
	if err != nil {
		s.logger.Warn("protocols fetch failed, continuing without", zap.Error(err))
	} else {
		snap.Protocols = protocols
	}

	usage, err := s.feeds.ActiveUsers(ctx)
	if err != nil {
		s.logger.Warn("active users fetch failed, continuing without", zap.Error(err))
	} else {
		snap.Usage = usage
	}

	raises, err := s.feeds.Raises(ctx)
	if err != nil {
		s.logger.Warn("raises fetch failed, continuing without", zap.Error(err))
	} else {
		snap.Raises = raises
	}

	report, err := s.selector.Run(ctx, snap)
	if err != nil {
		s.logger.Error("radar pass failed", zap.Error(err))
		return err
	}

	s.mu.Lock()
	s.lastRun = &report
	s.mu.Unlock()

	s.logger.Info("radar pass complete",
		zap.String("state", string(report.State)),
		zap.Int("sent", report.Sent),
		zap.Int("raise", report.RaiseSent),
		zap.Int("quality", report.QualitySent),
		zap.Int("usage", report.UsageSent),
	)
	return nil
}

// LastRun returns the most recent finished pass, if any.
func (s *RadarService) LastRun() (domain.RunReport, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastRun == nil {
		return domain.RunReport{}, false
	}
	return *s.lastRun, true
}
