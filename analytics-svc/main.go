package main

import (
	"foodbites/config"

	httpapi "foodbites/analytics-svc/internal/api/http"
	"foodbites/analytics-svc/internal/service"
)

func main() {
	config.LoadEnv()

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	analytics := service.NewAnalyticsService(db, rdb)

	handler := httpapi.NewHandler(analytics)
	router := httpapi.NewRouter(handler)

	httpapi.StartServer(":"+config.GetEnv("ANALYTICS_SVC_PORT", "8084"), router)
}
