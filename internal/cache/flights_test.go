package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/flight-booking/internal/model"
)

// Without Redis the cache must act as a permanent miss, never an error.
func TestFlightCache_NilClient(t *testing.T) {
	ctx := context.Background()
	flights := []model.Flight{{ID: 1, FlightNumber: "AI101", Seats: 120}}

	for name, c := range map[string]*FlightCache{
		"nil cache":  nil,
		"nil client": NewFlightCache(nil, time.Minute),
	} {
		t.Run(name, func(t *testing.T) {
			got, err := c.Get(ctx)
			assert.NoError(t, err)
			assert.Nil(t, got)

			assert.NoError(t, c.Set(ctx, flights))
			assert.NoError(t, c.Invalidate(ctx))

			got, err = c.Get(ctx)
			assert.NoError(t, err)
			assert.Nil(t, got)
		})
	}
}
