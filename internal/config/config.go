package config

import (
	"flag"
	"os"
	"time"

	"go.uber.org/zap"
)

type Config struct {
	RunAddress            string
	BookingServiceAddress string
	AuthSecret            string
	CacheTTL              time.Duration
	Logger                *zap.SugaredLogger
}

func NewConfig() *Config {
	logCfg := zap.NewProductionConfig()
	logCfg.OutputPaths = []string{"stdout", "server.log"}

	logger := zap.Must(logCfg.Build())

	cfg := &Config{}
	flag.StringVar(&cfg.RunAddress, "a", "localhost:8080", "HTTP server address")
	flag.StringVar(&cfg.BookingServiceAddress, "b", "", "Booking service address")
	flag.StringVar(&cfg.AuthSecret, "s", "", "Auth provider JWT secret")
	flag.DurationVar(&cfg.CacheTTL, "t", 5*time.Second, "Fetch cache TTL")
	flag.Parse()

	cfg.Logger = logger.Sugar()

	ReadServerEnvironment(cfg)

	return cfg
}

func ReadServerEnvironment(cfg *Config) {
	if runAddress := os.Getenv("RUN_ADDRESS"); runAddress != "" {
		cfg.RunAddress = runAddress
	}

	if bookingAddress := os.Getenv("BOOKING_SERVICE_ADDRESS"); bookingAddress != "" {
		cfg.BookingServiceAddress = bookingAddress
	}

	if authSecret := os.Getenv("AUTH_SECRET"); authSecret != "" {
		cfg.AuthSecret = authSecret
	}

	if ttl := os.Getenv("CACHE_TTL"); ttl != "" {
		if d, err := time.ParseDuration(ttl); err == nil && d > 0 {
			cfg.CacheTTL = d
		}
	}
}
