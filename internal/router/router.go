// Package router wires handlers and middleware onto an Echo instance.
package router

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/iliyamo/cinema-seat-suggest/internal/config"
	"github.com/iliyamo/cinema-seat-suggest/internal/handler"
	"github.com/iliyamo/cinema-seat-suggest/internal/middleware"
)

// Deps is everything the routes need. A nil Redis disables both the
// response cache and the rate limiter. Show-backed routes are mounted only
// when Seats.Layouts is set.
type Deps struct {
	Seats     *handler.SeatHandler
	Redis     *redis.Client
	Cache     config.CacheConfig
	RateLimit config.RateLimitConfig
	Checks    map[string]handler.Check
	Logger    *zap.Logger
}

// New builds the Echo server with the global middleware chain and all routes.
func New(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.RequestLogger(d.Logger))

	RegisterRoutes(e, d.Checks)
	RegisterSeating(e, d)
	return e
}

// RegisterRoutes registers the unauthenticated probes.
func RegisterRoutes(e *echo.Echo, checks map[string]handler.Check) {
	e.GET("/healthz", handler.Health)
	e.GET("/readyz", handler.Ready(checks))
}

// RegisterSeating registers the /v1 seat routes.
func RegisterSeating(e *echo.Echo, d Deps) {
	// A typed nil *redis.Client must not reach the middleware as a non-nil
	// interface.
	var limiter redis.Scripter
	var cache redis.Cmdable
	if d.Redis != nil {
		limiter, cache = d.Redis, d.Redis
	}

	v1 := e.Group("/v1", middleware.NewTokenBucket(d.RateLimit, limiter, d.Logger))
	v1.POST("/seats/recommend", d.Seats.Recommend)
	v1.GET("/seats/map", d.Seats.Map)

	if d.Seats.Layouts == nil {
		return
	}
	shows := v1.Group("/shows/:id", middleware.NewRedisCache(d.Cache, cache, d.Logger))
	shows.GET("/seats/map", d.Seats.ShowMap)
	shows.GET("/seats/recommend", d.Seats.ShowRecommend)
}
