package main

import (
	"log"
	"net/http"

	"foodbites/api-gateway/internal/gateway"
	"foodbites/config"

	"github.com/rs/cors"
)

func main() {
	config.LoadEnv()

	gw := gateway.NewGateway(gateway.Config{
		AuthSvcURL:      config.GetEnv("AUTH_SVC_URL", "http://localhost:8085"),
		CatalogSvcURL:   config.GetEnv("CATALOG_SVC_URL", "http://localhost:8081"),
		CartSvcURL:      config.GetEnv("CART_SVC_URL", "http://localhost:8082"),
		OrderSvcURL:     config.GetEnv("ORDER_SVC_URL", "http://localhost:8083"),
		AnalyticsSvcURL: config.GetEnv("ANALYTICS_SVC_URL", "http://localhost:8084"),
	}, &http.Client{})

	r := gw.SetupRoutes()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	handler := c.Handler(r)

	addr := ":" + config.GetEnv("GATEWAY_PORT", "8080")
	log.Printf("API Gateway starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
