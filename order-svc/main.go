package main

import (
	"time"

	"foodbites/config"

	httpapi "foodbites/order-svc/internal/api/http"
	"foodbites/order-svc/internal/service"
	"foodbites/order-svc/internal/storage"
)

func main() {
	config.LoadEnv()

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	writer := config.NewKafkaWriter(config.GetEnv("KAFKA_ORDERS_TOPIC", "orders"))
	defer writer.Close()

	repository := storage.NewPostgresRepository(db)
	cache := storage.NewRedisCache(rdb, 24*time.Hour)
	publisher := storage.NewKafkaPublisher(writer)
	qr := service.DefaultQRGenerator{BaseURL: config.GetEnv("CLIENT_URL", "http://localhost:3000")}
	orders := service.NewOrderService(repository, cache, publisher, qr)

	handler := httpapi.NewHandler(orders, config.GetEnv("JWT_SECRET", "dev-secret"))
	router := httpapi.NewRouter(handler)

	httpapi.StartServer(":"+config.GetEnv("ORDER_SVC_PORT", "8083"), router)
}
