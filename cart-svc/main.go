package main

import (
	"net/http"
	"time"

	"foodbites/config"

	httpapi "foodbites/cart-svc/internal/api/http"
	"foodbites/cart-svc/internal/client"
	"foodbites/cart-svc/internal/service"
)

func main() {
	config.LoadEnv()

	orders := client.NewOrderClient(
		config.GetEnv("ORDER_SVC_URL", "http://localhost:8083"),
		&http.Client{Timeout: 10 * time.Second},
	)
	carts := service.NewCartService(orders)

	handler := httpapi.NewHandler(carts)
	router := httpapi.NewRouter(handler)

	httpapi.StartServer(":"+config.GetEnv("CART_SVC_PORT", "8082"), router)
}
