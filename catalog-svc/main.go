package main

import (
	"time"

	"foodbites/config"

	httpapi "foodbites/catalog-svc/internal/api/http"
	"foodbites/catalog-svc/internal/service"
	"foodbites/catalog-svc/internal/storage"
)

func main() {
	config.LoadEnv()

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	repository := storage.NewPostgresRepository(db)
	cache := storage.NewRedisCache(rdb, 5*time.Minute)
	foods := service.NewFoodService(repository, cache)

	handler := httpapi.NewHandler(foods)
	router := httpapi.NewRouter(handler)

	httpapi.StartServer(":"+config.GetEnv("CATALOG_SVC_PORT", "8081"), router)
}
