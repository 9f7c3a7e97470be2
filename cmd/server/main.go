package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/localseolabs/seo-audit-agent/internal/api"
	"github.com/localseolabs/seo-audit-agent/internal/oracle"
	"github.com/localseolabs/seo-audit-agent/internal/ratelimit"
)

func main() {
	// .env is optional; deployments set the environment directly.
	_ = godotenv.Load()

	client := newOracle()
	if closer, ok := client.(interface{ Close() }); ok {
		defer closer.Close()
	}

	limit := envInt("RATE_LIMIT", 5)
	window := time.Duration(envInt("RATE_WINDOW_MINUTES", 60)) * time.Minute
	limiter := ratelimit.New(limit, window)
	go func() {
		for range time.Tick(window) {
			limiter.PurgeIdle(window)
		}
	}()

	handler := api.NewHandler(client, limiter)
	router := api.NewRouter(handler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("SEO audit agent starting on port %s", port)
	log.Printf("Report endpoint: http://localhost:%s/api/generate-report", port)
	log.Printf("Health endpoint: http://localhost:%s/health", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}

// newOracle selects the generation provider from the environment. A
// missing credential is fatal here, before any request is accepted.
func newOracle() oracle.Oracle {
	provider := os.Getenv("ORACLE_PROVIDER")
	if provider == "" {
		provider = "gemini"
	}

	switch provider {
	case "gemini":
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY environment variable is required")
		}
		client, err := oracle.NewGeminiClient(context.Background(), apiKey)
		if err != nil {
			log.Fatalf("Failed to create Gemini client: %v", err)
		}
		return client
	case "claude":
		apiKey := os.Getenv("ANTHROPIC_API_KEY")
		if apiKey == "" {
			log.Fatal("ANTHROPIC_API_KEY environment variable is required")
		}
		return oracle.NewClaudeClient(apiKey)
	default:
		log.Fatalf("Unknown ORACLE_PROVIDER %q (want gemini or claude)", provider)
		return nil
	}
}

func envInt(name string, fallback int) int {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Fatalf("%s must be a positive integer, got %q", name, v)
	}
	return n
}
