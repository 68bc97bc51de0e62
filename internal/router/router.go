package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // Echo web framework used for routing

	"github.com/iliyamo/flight-booking/internal/handler"    // handlers implementing the endpoints
	"github.com/iliyamo/flight-booking/internal/middleware" // JWT authentication middleware
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance. Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the unauthenticated identity endpoints. Register
// and login both return a signed bearer token on success.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	e.POST("/register", a.Register)
	e.POST("/login", a.Login)
}

// RegisterAPI registers every endpoint that requires a valid bearer
// token. All handlers in this group run behind the JWTAuth middleware: a
// request without a token is rejected with 401 and a request with an
// invalid or expired token with 403, before any handler executes.
func RegisterAPI(e *echo.Echo, a *handler.AuthHandler, f *handler.FlightHandler, b *handler.BookingHandler, jwtSecret string) {
	g := e.Group("")
	g.Use(middleware.JWTAuth(jwtSecret))

	g.GET("/flights", f.List)
	g.POST("/bookings", b.Create)
	g.GET("/my-bookings", b.ListMy)
	g.POST("/bookings/:id/cancel", b.Cancel)
	g.GET("/me", a.Me)
}
