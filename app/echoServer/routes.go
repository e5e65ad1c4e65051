package echoServer

import (
	"net/http"

	"lendshelf/app/echoServer/controller/catalog"
	"lendshelf/app/echoServer/controller/request"
	"lendshelf/app/echoServer/jwtx"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

type C struct {
	Catalog *catalog.Controller
	Request *request.Controller

	JWTSecret string
}

func Register(e *echo.Echo, c C) {
	auth := e.Group("/v1")
	auth.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(c.JWTSecret),

		NewClaimsFunc: func(c echo.Context) jwt.Claims { return jwt.MapClaims{} },
		TokenLookup:   "header:Authorization",
	}))
	// requester_id / role extraction from verified claims
	auth.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			uid, err := jwtx.RequesterIDFromContext(ctx)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
			}
			ctx.Set("requester_id", uid)
			if role, err := jwtx.RoleFromContext(ctx); err == nil {
				ctx.Set("role", role)
			}
			return next(ctx)
		}
	})

	// Catalog
	auth.GET("/items", c.Catalog.List)
	auth.GET("/items/:id", c.Catalog.Detail)
	// Librarian endpoint: return/maintenance hook
	auth.PUT("/items/:id/availability", c.Catalog.SetAvailability)

	// Requests
	auth.GET("/requests/my", c.Request.My)
	auth.POST("/requests", c.Request.Create)
	auth.DELETE("/requests/:id", c.Request.Cancel)
	// Librarian endpoints
	auth.POST("/requests/:id/approve", c.Request.Approve)
	auth.POST("/requests/:id/reject", c.Request.Reject)
}
