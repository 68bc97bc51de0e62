package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/flight-booking/internal/cache"
	"github.com/iliyamo/flight-booking/internal/repository"
)

// FlightHandler serves the flight catalog. Listings are served from the
// optional Redis cache when warm; the cache is filled on a miss and
// invalidated by the booking handlers whenever seat counts change, so
// responses always reflect current availability.
type FlightHandler struct {
	Flights *repository.FlightRepo
	Cache   *cache.FlightCache
}

func NewFlightHandler(f *repository.FlightRepo, fc *cache.FlightCache) *FlightHandler {
	if f == nil {
		panic("nil repository passed to NewFlightHandler")
	}
	return &FlightHandler{Flights: f, Cache: fc}
}

// List handles GET /flights. It returns the full catalog in seed order
// with live seat counts.
func (h *FlightHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	if cached, err := h.Cache.Get(ctx); err == nil && cached != nil {
		return c.JSON(http.StatusOK, cached)
	}
	flights, err := h.Flights.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load flights failed"})
	}
	_ = h.Cache.Set(ctx, flights)
	return c.JSON(http.StatusOK, flights)
}
