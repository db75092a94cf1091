// Package router maps the domain operations onto HTTP routes.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-booking/internal/handler"
	"github.com/iliyamo/event-booking/internal/middleware"
)

// RegisterRoutes wires every endpoint. Signup, login and the event
// listing are reachable without credentials; every mutating route and
// the booking listing sit behind the JWT guard so the caller identity
// is resolved exactly once and passed into the handlers. The cache
// middleware applies only to the public event listing.
func RegisterRoutes(e *echo.Echo, a *handler.AuthHandler, ev *handler.EventHandler, b *handler.BookingHandler, jwtSecret string, cache echo.MiddlewareFunc) {
	e.GET("/healthz", handler.Health)

	g := e.Group("/v1/auth")
	g.POST("/signup", a.Signup)
	g.POST("/login", a.Login)

	e.GET("/v1/events", ev.List, cache)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.GET("/me", a.Me)
	auth.POST("/events", ev.Create)
	auth.POST("/events/:id/bookings", b.Create)
	auth.GET("/bookings", b.List)
	auth.DELETE("/bookings/:id", b.Cancel)
}
