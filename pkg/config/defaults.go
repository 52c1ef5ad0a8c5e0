package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "barkeep"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultRateLimitRequests = 10
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	// A hold keeps a table out of other customers' checkouts for this long.
	DefaultHoldTTL   = 5 * time.Minute
	DefaultHoldStore = "memory"
	DefaultRedisAddr = "localhost:6379"

	// Customers may cancel a pending booking up to this long before the slot.
	DefaultCancelCutoff = 2 * time.Hour

	DefaultPaymentBaseURL = "http://localhost:9090"

	DefaultTicketDir     = "./tickets"
	DefaultTicketBaseURL = "http://localhost:8081/tickets"

	DefaultBookingsBaseURL     = "http://localhost:8081"
	DefaultHoldsBaseURL        = "http://localhost:8082"
	DefaultBarsBaseURL         = "http://localhost:8083"
	DefaultAvailabilityBaseURL = "http://localhost:8084"
)
