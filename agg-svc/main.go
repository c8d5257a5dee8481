package main

import (
	"context"

	"foodbites/config"

	"foodbites/agg-svc/internal/service"
	"foodbites/agg-svc/internal/storage"
)

func main() {
	config.LoadEnv()

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	reader := config.NewKafkaReader(config.GetEnv("KAFKA_ORDERS_TOPIC", "orders"), "agg-svc-consumer")
	defer reader.Close()

	store := storage.NewStore(db, rdb)
	consumer := service.NewConsumer(reader, store)
	consumer.Start(context.Background())
}
