package service

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/sarisense/sarisense-api/internal/analytics"
	"github.com/sarisense/sarisense-api/internal/config"
	"github.com/sarisense/sarisense-api/internal/domain/repository"
	"github.com/sarisense/sarisense-api/internal/events"
)

// topProfitableCount caps the profit leaderboard on the dashboard
const topProfitableCount = 5

// DashboardSnapshot is one consistent output of a full analytics pass
type DashboardSnapshot struct {
	Summaries       analytics.Summaries        `json:"summaries"`
	TopProfitable   []analytics.ProductProfit  `json:"top_profitable"`
	Recommendations []analytics.Recommendation `json:"recommendations"`
	CreditRisks     []analytics.CreditRisk     `json:"credit_risks"`
	GeneratedAt     time.Time                  `json:"generated_at"`
}

// AnalyticsService runs the pure analytics engines over the live data and
// caches the latest snapshot. Recomputes triggered by sale events run one at
// a time in notification order.
type AnalyticsService struct {
	analyticsRepo repository.AnalyticsRepository
	settingsRepo  repository.SettingsRepository
	cfg           config.AnalyticsConfig

	mu       sync.RWMutex
	snapshot *DashboardSnapshot
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(
	analyticsRepo repository.AnalyticsRepository,
	settingsRepo repository.SettingsRepository,
	cfg config.AnalyticsConfig,
) *AnalyticsService {
	return &AnalyticsService{
		analyticsRepo: analyticsRepo,
		settingsRepo:  settingsRepo,
		cfg:           cfg,
	}
}

// bucketLocation resolves the timezone for calendar-day bucketing. Store
// settings win over config; an unparseable name falls back to UTC.
func (s *AnalyticsService) bucketLocation(ctx context.Context) *time.Location {
	name := s.cfg.Timezone

	settings, err := s.settingsRepo.Get(ctx)
	if err == nil && settings != nil && settings.Timezone != "" {
		name = settings.Timezone
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("Warning: unknown timezone %q, using UTC", name)
		return time.UTC
	}
	return loc
}

// Refresh runs a full analytics pass and replaces the cached snapshot
func (s *AnalyticsService) Refresh(ctx context.Context) (*DashboardSnapshot, error) {
	loc := s.bucketLocation(ctx)

	rows, err := s.analyticsRepo.FetchSaleRows(ctx, s.cfg.SaleFetchLimit)
	if err != nil {
		return nil, err
	}
	stocks, err := s.analyticsRepo.FetchProductStocks(ctx)
	if err != nil {
		return nil, err
	}
	histories, err := s.analyticsRepo.FetchAccountHistories(ctx)
	if err != nil {
		return nil, err
	}

	summaries := analytics.Aggregate(rows, loc)
	recommendations := analytics.Recommend(summaries, stocks)

	now := time.Now()
	risks := make([]analytics.CreditRisk, 0, len(histories))
	for _, h := range histories {
		risks = append(risks, analytics.ClassifyRisk(h.Account, h.Credits, now))
	}

	snapshot := &DashboardSnapshot{
		Summaries:       summaries,
		TopProfitable:   analytics.TopProfitable(summaries, topProfitableCount),
		Recommendations: recommendations,
		CreditRisks:     risks,
		GeneratedAt:     now,
	}

	s.mu.Lock()
	s.snapshot = snapshot
	s.mu.Unlock()

	return snapshot, nil
}

// Dashboard returns the latest snapshot, computing one on first use
func (s *AnalyticsService) Dashboard(ctx context.Context) (*DashboardSnapshot, error) {
	s.mu.RLock()
	snapshot := s.snapshot
	s.mu.RUnlock()

	if snapshot != nil {
		return snapshot, nil
	}
	return s.Refresh(ctx)
}

// Insights returns the current recommendations
func (s *AnalyticsService) Insights(ctx context.Context) ([]analytics.Recommendation, error) {
	snapshot, err := s.Dashboard(ctx)
	if err != nil {
		return nil, err
	}
	return snapshot.Recommendations, nil
}

// CreditRisks returns the current per-customer risk tiers
func (s *AnalyticsService) CreditRisks(ctx context.Context) ([]analytics.CreditRisk, error) {
	snapshot, err := s.Dashboard(ctx)
	if err != nil {
		return nil, err
	}
	return snapshot.CreditRisks, nil
}

// Listen consumes sale events and recomputes the snapshot after each one.
// Each event triggers a full pass, so a dropped notification is harmless as
// long as a later one arrives. Blocks until the channel closes or the
// context is cancelled; run it in its own goroutine.
func (s *AnalyticsService) Listen(ctx context.Context, feed <-chan events.SaleCreated) {
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-feed:
			if !ok {
				return
			}
			if _, err := s.Refresh(ctx); err != nil {
				log.Printf("analytics recompute failed: %v", err)
			}
		}
	}
}
