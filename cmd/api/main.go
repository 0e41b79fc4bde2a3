package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"countryapi/internal/boundary"
	"countryapi/internal/cache"
	"countryapi/internal/country"
	"countryapi/internal/detail"
	"countryapi/internal/export"
	"countryapi/internal/httpx"
	"countryapi/internal/indicator"
	"countryapi/internal/institution"
	"countryapi/internal/platform/fetch"
	"countryapi/internal/platform/geodata"
	"countryapi/internal/platform/hipolabs"
	"countryapi/internal/platform/restcountries"
	"countryapi/internal/platform/worldbank"
)

func main() {
	_ = godotenv.Load(".env.local")

	serverAddress := getEnv("APP_ADDR", ":8080")
	redisURL := getEnv("REDIS_URL", "")
	cacheTTL := getDurationEnv("CACHE_TTL", cache.DefaultTTL)
	corsOrigins := splitList(getEnv("CORS_ORIGINS", "http://localhost:3000"))
	rateLimitRPS := getFloatEnv("RATE_LIMIT_RPS", 10)
	rateLimitBurst := getIntEnv("RATE_LIMIT_BURST", 20)
	upstreamRPS := getIntEnv("UPSTREAM_RPS", 5)

	store := mustOpenStore(redisURL, cacheTTL)

	httpClient := fetch.NewClient("countryapi/1.0", upstreamRPS)
	countriesAPI := restcountries.NewClient(httpClient, getEnv("RESTCOUNTRIES_URL", ""))
	worldbankAPI := worldbank.NewClient(httpClient, getEnv("WORLDBANK_URL", ""))
	directoryAPI := hipolabs.NewClient(httpClient, getEnv("HIPOLABS_URL", ""))
	geodataAPI := geodata.NewClient(httpClient, getEnv("GEODATA_URL", ""))

	countryService := country.NewService(countriesAPI, store)
	indicatorResolver := indicator.NewResolver(worldbankAPI)
	institutionService := institution.NewService(directoryAPI)
	boundaryService := boundary.NewService(geodataAPI, countriesAPI, store)
	aggregator := detail.NewAggregator(indicatorResolver, institutionService, boundaryService)

	countryHandler := country.NewHTTPHandler(countryService)
	institutionHandler := institution.NewHTTPHandler(institutionService, countryService)
	detailHandler := detail.NewHTTPHandler(aggregator, countryService)
	exportHandler := export.NewHTTPHandler(countryService)

	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if redisStore, ok := store.(*cache.Redis); ok {
			ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
			defer cancel()
			if err := redisStore.Health(ctx); err != nil {
				http.Error(w, "cache not ready", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.HandleFunc("GET /countries", countryHandler.List)
	router.HandleFunc("POST /countries/refresh", countryHandler.Refresh)
	router.HandleFunc("GET /countries/{code}", countryHandler.Get)
	router.HandleFunc("GET /countries/{code}/details", detailHandler.Get)
	router.HandleFunc("GET /countries/{code}/institutions", institutionHandler.List)
	router.HandleFunc("GET /countries/{code}/export.csv", exportHandler.Country)
	router.HandleFunc("GET /export.csv", exportHandler.Bulk)

	rateLimit := httpx.NewRateLimitMiddleware(rateLimitRPS, rateLimitBurst)

	var handler http.Handler = router
	handler = rateLimit.Middleware(handler)
	handler = httpx.CORSMiddleware(corsOrigins)(handler)
	handler = httpx.SecurityHeadersMiddleware(handler)
	handler = httpx.RecoveryMiddleware(handler)
	handler = httpx.AccessLogMiddleware(handler)
	handler = httpx.RequestIDMiddleware(handler)

	httpServer := &http.Server{
		Addr:         serverAddress,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("Starting server on %s", serverAddress)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}

// mustOpenStore connects to redis when a URL is configured and falls
// back to the in-process cache otherwise.
func mustOpenStore(redisURL string, ttl time.Duration) cache.Store {
	redisStore, err := cache.NewRedis(redisURL, ttl)
	if err != nil {
		log.Fatalf("cannot connect to redis: %v", err)
	}
	if redisStore == nil {
		log.Println("REDIS_URL not set, using in-memory cache")
		return cache.NewMemory(ttl)
	}
	log.Println("redis connection OK")
	return redisStore
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getIntEnv(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("invalid %s=%q, using %d", key, v, def)
	}
	return def
}

func getFloatEnv(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Printf("invalid %s=%q, using %g", key, v, def)
	}
	return def
}

func getDurationEnv(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("invalid %s=%q, using %s", key, v, def)
	}
	return def
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
