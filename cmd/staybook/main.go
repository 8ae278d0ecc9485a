package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	bookingapp "staybook/internal/app/handlers/booking"
	venueapp "staybook/internal/app/handlers/venues"
	"staybook/internal/app/queries"
	"staybook/internal/infra/config"
	ginserver "staybook/internal/infra/http/gin"
	"staybook/internal/infra/obs"
	"staybook/internal/infra/storage/memory"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration invalid", "error", err)
		os.Exit(1)
	}
	logger := obs.NewLogger(cfg.Env)

	venuesRepo := memory.NewVenueRepository()
	loaded, err := venuesRepo.LoadFixtures(cfg.VenueFixtures)
	if err != nil {
		logger.Warn("venue fixtures load failed", "error", err, "path", cfg.VenueFixtures)
	} else {
		logger.Info("venue fixtures loaded", "count", loaded, "path", cfg.VenueFixtures)
	}

	handlers := buildHandlers(venuesRepo)
	server := ginserver.NewServer(cfg, obs.Middleware{Logger: logger}, obs.HealthHandlers{
		Ready: func() error { return nil },
	}, handlers)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown failed", "error", err)
		}
	}()

	logger.Info("HTTP server starting", "addr", cfg.HTTPAddr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("HTTP server stopped")
}

func buildHandlers(venuesRepo *memory.VenueRepository) ginserver.Handlers {
	bus := queries.NewInMemoryBus()
	queries.RegisterHandler(bus, venueapp.SearchVenuesQuery{}.Key(), &venueapp.SearchVenuesHandler{Venues: venuesRepo})
	queries.RegisterHandler(bus, venueapp.GetVenueQuery{}.Key(), &venueapp.GetVenueHandler{Venues: venuesRepo})
	queries.RegisterHandler(bus, venueapp.GetCalendarQuery{}.Key(), &venueapp.GetCalendarHandler{Venues: venuesRepo})
	queries.RegisterHandler(bus, bookingapp.ValidateBookingQuery{}.Key(), &bookingapp.ValidateBookingHandler{Venues: venuesRepo})

	return ginserver.Handlers{
		Venue:   ginserver.VenueHandler{Queries: bus},
		Booking: ginserver.BookingHandler{Queries: bus},
	}
}
