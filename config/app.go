package config

type App struct {
	Port        string `env:"APP_PORT" default:"8080"`
	DatabaseURL string `env:"DATABASE_URL"`
	JWTSecret   string `env:"JWT_SECRET"`
	CatalogSeed string `env:"CATALOG_SEED" default:"catalog.json"`
	Env         string `env:"APP_ENV" default:"dev"`
}
