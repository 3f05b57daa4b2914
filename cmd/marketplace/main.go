package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/and161185/marketplace/internal/bookings"
	"github.com/and161185/marketplace/internal/config"
	"github.com/and161185/marketplace/internal/deps"
	"github.com/and161185/marketplace/internal/fetchcache"
	"github.com/and161185/marketplace/internal/files"
	"github.com/and161185/marketplace/internal/orders"
	"github.com/and161185/marketplace/internal/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	config := config.NewConfig()
	deps := deps.NewDependencies(config.AuthSecret)

	client := bookings.NewClient(config.BookingServiceAddress)
	cache := fetchcache.New(config.CacheTTL)
	transformer := orders.NewTransformer(files.Policy{}, deps.Logger)

	srv := server.NewServer(client, cache, transformer, config, deps)
	if err := srv.Run(ctx); err != nil {
		config.Logger.Fatal(err)
	}
}
