package service

import (
	"context"
	"encoding/json"

	"mealcrate/internal/domain"
	"mealcrate/internal/logger"

	"github.com/segmentio/kafka-go"
)

// Consumer listens for order and feedback events and drops cached reports so
// the next request recomputes over fresh data.
type Consumer struct {
	Reader *kafka.Reader
	Cache  ReportCache
	Log    *logger.Logger
}

func NewConsumer(reader *kafka.Reader, cache ReportCache, log *logger.Logger) *Consumer {
	return &Consumer{
		Reader: reader,
		Cache:  cache,
		Log:    log,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	c.Log.Info("starting analytics event consumer")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			c.Log.WithError(err).Error("error reading message")
			continue
		}

		var event domain.AnalyticsEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			c.Log.WithError(err).Error("error unmarshaling message")
			continue
		}

		c.ProcessEvent(ctx, event)
	}
}

func (c *Consumer) ProcessEvent(ctx context.Context, event domain.AnalyticsEvent) {
	switch event.Type {
	case domain.EventNewOrder, domain.EventNewFeedback:
	default:
		return
	}

	c.Log.WithField("type", event.Type).WithField("customer_id", event.CustomerID).
		Info("invalidating cached reports")

	if err := c.Cache.InvalidateReports(ctx); err != nil {
		c.Log.WithError(err).Error("error invalidating cached reports")
	}
}
