package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"mealcrate/internal/domain"
	"mealcrate/internal/logger"
)

var ErrOrderNotFound = errors.New("order not found")

// AnalyticsService wraps the pure aggregators with fetching and caching.
// Reports are computed on demand from a date-windowed fetch and cached in
// Redis until the TTL expires or the event consumer invalidates them.
type AnalyticsService struct {
	repo  AnalyticsRepository
	cache ReportCache
	qr    QRGenerator
	log   *logger.Logger
}

func NewAnalyticsService(repo AnalyticsRepository, cache ReportCache, qr QRGenerator, log *logger.Logger) *AnalyticsService {
	return &AnalyticsService{
		repo:  repo,
		cache: cache,
		qr:    qr,
		log:   log,
	}
}

func (s *AnalyticsService) CustomerBehavior(ctx context.Context, from, to time.Time) (domain.BehaviorReport, error) {
	var report domain.BehaviorReport
	key := s.cache.ReportKey("behavior", from, to)
	if hit, err := s.cache.GetReport(ctx, key, &report); err == nil && hit {
		return report, nil
	}

	orders, err := s.repo.OrdersInRange(ctx, from, to)
	if err != nil {
		return domain.BehaviorReport{}, fmt.Errorf("failed to fetch orders: %w", err)
	}

	report = AggregateBehavior(orders)
	s.cacheReport(ctx, key, report)
	return report, nil
}

func (s *AnalyticsService) CustomerPreferences(ctx context.Context, from, to time.Time) (domain.PreferenceReport, error) {
	var report domain.PreferenceReport
	key := s.cache.ReportKey("preferences", from, to)
	if hit, err := s.cache.GetReport(ctx, key, &report); err == nil && hit {
		return report, nil
	}

	orders, err := s.repo.OrdersInRange(ctx, from, to)
	if err != nil {
		return domain.PreferenceReport{}, fmt.Errorf("failed to fetch orders: %w", err)
	}

	report = AggregatePreferences(orders)
	s.cacheReport(ctx, key, report)
	return report, nil
}

func (s *AnalyticsService) CustomerFeedback(ctx context.Context, from, to time.Time) (domain.FeedbackReport, error) {
	var report domain.FeedbackReport
	key := s.cache.ReportKey("feedback", from, to)
	if hit, err := s.cache.GetReport(ctx, key, &report); err == nil && hit {
		return report, nil
	}

	feedback, err := s.repo.FeedbackInRange(ctx, from, to)
	if err != nil {
		return domain.FeedbackReport{}, fmt.Errorf("failed to fetch feedback: %w", err)
	}

	report = AggregateFeedback(feedback)
	s.cacheReport(ctx, key, report)
	return report, nil
}

// CustomerSummary bundles all three reports for one window. The rollups are
// independent and read their own fetched slices, so they run concurrently.
func (s *AnalyticsService) CustomerSummary(ctx context.Context, from, to time.Time) (domain.SummaryReport, error) {
	var (
		summary domain.SummaryReport
		wg      sync.WaitGroup
		errs    [3]error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		summary.Behavior, errs[0] = s.CustomerBehavior(ctx, from, to)
	}()
	go func() {
		defer wg.Done()
		summary.Preferences, errs[1] = s.CustomerPreferences(ctx, from, to)
	}()
	go func() {
		defer wg.Done()
		summary.Feedback, errs[2] = s.CustomerFeedback(ctx, from, to)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return domain.SummaryReport{}, err
		}
	}
	return summary, nil
}

// OrderFeedbackQR returns a PNG QR code pointing at the feedback page for a
// delivered order, printed on the meal-box insert.
func (s *AnalyticsService) OrderFeedbackQR(ctx context.Context, orderID int) ([]byte, error) {
	exists, err := s.repo.OrderExists(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up order: %w", err)
	}
	if !exists {
		return nil, ErrOrderNotFound
	}
	return s.qr.Generate(orderID)
}

func (s *AnalyticsService) cacheReport(ctx context.Context, key string, report interface{}) {
	if err := s.cache.SetReport(ctx, key, report); err != nil {
		s.log.WithError(err).WithField("key", key).Warn("failed to cache report")
	}
}
