package main

import (
	"log"
	"os"
	"strings"

	"github.com/lmasumbuku/backend/internal/auth"
	"github.com/lmasumbuku/backend/internal/db"
	"github.com/lmasumbuku/backend/internal/menu"
	"github.com/lmasumbuku/backend/internal/order"
	"github.com/lmasumbuku/backend/internal/restaurant"
	"github.com/lmasumbuku/backend/internal/router"
	"github.com/lmasumbuku/backend/internal/voice"

	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"VOICE_API_KEY",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── REPOS ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	restaurantRepo := restaurant.NewPostgresRepository(pgDB)
	menuRepo := menu.NewPostgresRepository(pgDB)
	orderRepo := order.NewPostgresRepository(pgDB)

	// ───────────────────────── SERVICES ─────────────────────────
	authService := auth.NewService(userRepo)
	restaurantService := restaurant.NewService(restaurantRepo)
	menuService := menu.NewService(menuRepo, restaurantRepo)
	orderService := order.NewService(orderRepo, restaurantRepo)

	// The voice pipeline reads menus and restaurants, writes orders.
	voiceService := voice.NewService(restaurantRepo, menuRepo, orderRepo)

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.New(
		router.Config{
			VoiceAPIKey:  os.Getenv("VOICE_API_KEY"),
			AllowOrigins: allowedOrigins(),
		},
		router.Handlers{
			Auth:       auth.NewHandler(authService),
			Restaurant: restaurant.NewHandler(restaurantService),
			Menu:       menu.NewHandler(menuService),
			Order:      order.NewHandler(orderService),
			Voice:      voice.NewHandler(voiceService),
			DB:         pgDB,
		},
	)

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Printf("🚀 API running at http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

func allowedOrigins() []string {
	if raw := os.Getenv("CORS_ORIGINS"); raw != "" {
		return strings.Split(raw, ",")
	}
	return []string{"http://localhost:3000", "http://localhost:5173"}
}
