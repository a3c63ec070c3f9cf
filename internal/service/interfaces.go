package service

import (
	"context"
	"time"

	"mealcrate/internal/domain"
	"mealcrate/internal/storage"
)

type AnalyticsInterface interface {
	CustomerBehavior(ctx context.Context, from, to time.Time) (domain.BehaviorReport, error)
	CustomerPreferences(ctx context.Context, from, to time.Time) (domain.PreferenceReport, error)
	CustomerFeedback(ctx context.Context, from, to time.Time) (domain.FeedbackReport, error)
	CustomerSummary(ctx context.Context, from, to time.Time) (domain.SummaryReport, error)
	OrderFeedbackQR(ctx context.Context, orderID int) ([]byte, error)
}

type AnalyticsRepository interface {
	OrdersInRange(ctx context.Context, from, to time.Time) ([]domain.Order, error)
	FeedbackInRange(ctx context.Context, from, to time.Time) ([]domain.FeedbackRecord, error)
	OrderExists(ctx context.Context, orderID int) (bool, error)
}

type ReportCache interface {
	ReportKey(kind string, from, to time.Time) string
	GetReport(ctx context.Context, key string, dest interface{}) (bool, error)
	SetReport(ctx context.Context, key string, report interface{}) error
	InvalidateReports(ctx context.Context) error
}

var _ AnalyticsInterface = (*AnalyticsService)(nil)
var _ AnalyticsRepository = (*storage.PostgresRepository)(nil)
var _ ReportCache = (*storage.RedisCache)(nil)
