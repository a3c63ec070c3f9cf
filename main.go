package main

import (
	"context"
	"time"

	"mealcrate/config"
	httpapi "mealcrate/internal/api/http"
	"mealcrate/internal/logger"
	"mealcrate/internal/service"
	"mealcrate/internal/storage"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	log := logger.New()

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	repo := storage.NewPostgresRepository(db)
	cache := storage.NewRedisCache(rdb, 10*time.Minute)
	qr := service.DefaultQRGenerator{
		BaseURL: config.Getenv("PUBLIC_BASE_URL", "http://localhost:8084"),
	}
	analytics := service.NewAnalyticsService(repo, cache, qr, log)

	reader := config.NewKafkaReader("orders", "customer-analytics")
	defer reader.Close()
	consumer := service.NewConsumer(reader, cache, log)
	go consumer.Start(context.Background())

	handler := httpapi.NewHandler(analytics, log)
	router := httpapi.NewRouter(handler)
	httpapi.StartServer(":"+config.Getenv("PORT", "8084"), router, log)
}
