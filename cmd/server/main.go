package main // Entry point package

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/flight-booking/internal/cache"
	"github.com/iliyamo/flight-booking/internal/config"
	"github.com/iliyamo/flight-booking/internal/handler"
	"github.com/iliyamo/flight-booking/internal/queue"
	"github.com/iliyamo/flight-booking/internal/repository"
	"github.com/iliyamo/flight-booking/internal/router"
	"github.com/iliyamo/flight-booking/internal/store"
)

func main() {
	_ = godotenv.Load() // load .env when present; real env always wins
	cfg := config.Load()

	// One process-wide dataset: flights pre-seeded, users and bookings
	// empty. Nothing survives a restart.
	st := store.New()
	users := repository.NewUserRepo(st)
	flights := repository.NewFlightRepo(st)
	bookings := repository.NewBookingRepo(st)

	// Optional services. A nil redis client degrades the cache to a
	// permanent miss; the consumer only runs when a broker is configured.
	redisClient := config.NewRedisClient()
	if redisClient == nil {
		log.Println("redis unavailable, flight cache disabled")
	}
	flightCache := cache.NewFlightCache(redisClient, cfg.FlightsTTL)

	if os.Getenv("RABBITMQ_URL") != "" || os.Getenv("AMQP_URL") != "" {
		go func() {
			if err := queue.StartBookingConsumer(); err != nil {
				log.Printf("booking consumer stopped: %v", err)
			}
		}()
	}

	authHandler := handler.NewAuthHandler(cfg, users)
	flightHandler := handler.NewFlightHandler(flights, flightCache)
	bookingHandler := handler.NewBookingHandler(bookings, flights, flightCache)

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, authHandler)
	router.RegisterAPI(e, authHandler, flightHandler, bookingHandler, cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
