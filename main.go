// Package main lendshelf API.
//
// @title           lendshelf API
// @version         1.0
// @description     lending catalog and borrow-request service (items, requests).
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import (
	"context"
	"log/slog"
	"os"

	"lendshelf/app/echoServer"
	catalogctrl "lendshelf/app/echoServer/controller/catalog"
	requestctrl "lendshelf/app/echoServer/controller/request"
	"lendshelf/app/echoServer/validation"
	"lendshelf/config"
	catalogrepo "lendshelf/repository/catalog"
	requestrepo "lendshelf/repository/request"
	catalogsvc "lendshelf/service/catalog"
	requestsvc "lendshelf/service/request"
	"lendshelf/util/database"
	"lendshelf/util/metrics"
	"lendshelf/util/seed"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// stores: Postgres when DATABASE_URL is set, seeded memory otherwise
	var (
		cr catalogrepo.Repo
		rr requestrepo.Repo
	)
	if cfg.DatabaseURL != "" {
		db, err := database.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Error("db connect failed", "err", err)
			os.Exit(1)
		}
		defer db.Close()
		cr = catalogrepo.New(db)
		rr = requestrepo.New(db)
	} else {
		items, err := seed.Load(cfg.CatalogSeed)
		if err != nil {
			log.Error("catalog seed load failed", "path", cfg.CatalogSeed, "err", err)
			os.Exit(1)
		}
		cr = catalogrepo.NewMemory(items)
		rr = requestrepo.NewMemory()
		log.Info("running on in-memory stores", "items", len(items))
	}

	// services
	cs := catalogsvc.New(cr)
	rs := requestsvc.New(cr, rr, log)

	// controllers
	v := validator.New()
	catalogC := &catalogctrl.Controller{Svc: cs, V: v, Log: log}
	requestC := &requestctrl.Controller{Svc: rs, V: v, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Catalog: catalogC,
		Request: requestC,

		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	slog.Info("starting server", "env", cfg.Env, "port", port)

	e.Logger.Fatal(e.Start(":" + port))
}
