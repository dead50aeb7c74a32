// Command mealtoken prints a bearer token for the meal service.
//
//	JWT_SECRET=... mealtoken -subject kitchen-tablet -ttl 720h
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/mmynk/mealtracker/internal/auth"
	"github.com/mmynk/mealtracker/pkg/logging"
)

func main() {
	subject := flag.String("subject", "", "client name written into the token")
	ttl := flag.Duration("ttl", 30*24*time.Hour, "token lifetime")
	flag.Parse()

	logging.Setup(os.Getenv("LOG_LEVEL"))

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		slog.Error("JWT_SECRET must be set")
		os.Exit(1)
	}
	if *subject == "" {
		slog.Error("-subject is required")
		os.Exit(2)
	}

	token, err := auth.NewJWTManager(secret, *ttl).Generate(*subject)
	if err != nil {
		slog.Error("Failed to generate token", "error", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
