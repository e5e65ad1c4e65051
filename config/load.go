package config

import (
	"os"
)

// Load reads the app config from env. DATABASE_URL is optional: when empty
// the service runs on in-memory stores seeded from CATALOG_SEED.
func Load() App {
	cfg := App{
		Port:        getenv("APP_PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   getenv("JWT_SECRET", "local_dev_secret"),
		CatalogSeed: getenv("CATALOG_SEED", "catalog.json"),
		Env:         getenv("APP_ENV", "dev"),
	}
	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
