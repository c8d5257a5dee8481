package main

import (
	"foodbites/config"

	httpapi "foodbites/auth-svc/internal/api/http"
	"foodbites/auth-svc/internal/service"
	"foodbites/auth-svc/internal/storage"
)

func main() {
	config.LoadEnv()

	db := config.MustInitPostgres()
	defer db.Close()

	repository := storage.NewPostgresRepository(db)
	jwtSecret := config.GetEnv("JWT_SECRET", "dev-secret")
	auth := service.NewAuthService(repository, jwtSecret)

	google := httpapi.NewGoogleOAuth(
		config.GetEnv("GOOGLE_CLIENT_ID", ""),
		config.GetEnv("GOOGLE_CLIENT_SECRET", ""),
		config.GetEnv("GOOGLE_REDIRECT_URL", "http://localhost:8085/api/auth/google/callback"),
	)

	handler := httpapi.NewHandler(auth, google, config.GetEnv("CLIENT_URL", "http://localhost:3000"), jwtSecret)
	router := httpapi.NewRouter(handler)

	httpapi.StartServer(":"+config.GetEnv("AUTH_SVC_PORT", "8085"), router)
}
