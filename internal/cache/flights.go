// Package cache provides an optional Redis-backed cache for the flight
// catalog listing. Bookings change seat counts, so the cached entry is
// explicitly invalidated on every ledger mutation instead of relying on
// the TTL alone; listed availability therefore stays live.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/flight-booking/internal/model"
)

const flightsKey = "cache:flights"

// FlightCache caches the flight listing in Redis. A FlightCache built
// from a nil client is valid and behaves as a permanent miss, so the
// service runs unchanged when Redis is unavailable.
type FlightCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewFlightCache(client *redis.Client, ttl time.Duration) *FlightCache {
	return &FlightCache{client: client, ttl: ttl}
}

// Get returns the cached flight list, or nil on a miss.
func (c *FlightCache) Get(ctx context.Context) ([]model.Flight, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}
	data, err := c.client.Get(ctx, flightsKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var flights []model.Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

// Set stores the flight list for the configured TTL.
func (c *FlightCache) Set(ctx context.Context, flights []model.Flight) error {
	if c == nil || c.client == nil {
		return nil
	}
	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, flightsKey, payload, c.ttl).Err()
}

// Invalidate drops the cached listing. Called after every booking or
// cancellation so the next read reflects current seat counts.
func (c *FlightCache) Invalidate(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Del(ctx, flightsKey).Err()
}
