package config

const (
	EnvMongoURI          = "MONGO_URI"
	EnvMongoDatabaseName = "MONGO_DATABASE_NAME"
	EnvMongoConnTimeout  = "MONGO_CONN_TIMEOUT"

	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvJWTSecret = "JWT_SECRET"

	EnvRateLimitRequests = "RATE_LIMIT_REQUESTS"
	EnvRateLimitWindow   = "RATE_LIMIT_WINDOW"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvIdempotencyTTL = "IDEMPOTENCY_TTL"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvHoldTTL       = "HOLD_TTL"
	EnvHoldStore     = "HOLD_STORE"
	EnvRedisAddr     = "REDIS_ADDR"
	EnvRedisPassword = "REDIS_PASSWORD"

	EnvCancelCutoff = "CANCEL_CUTOFF"

	EnvPaymentBaseURL = "PAYMENT_BASE_URL"

	EnvTicketSecret  = "TICKET_SECRET"
	EnvTicketDir     = "TICKET_DIR"
	EnvTicketBaseURL = "TICKET_BASE_URL"

	EnvSlotTokenKey = "SLOT_TOKEN_KEY"

	EnvBookingsBaseURL     = "BOOKINGS_BASE_URL"
	EnvHoldsBaseURL        = "HOLDS_BASE_URL"
	EnvBarsBaseURL         = "BARS_BASE_URL"
	EnvAvailabilityBaseURL = "AVAILABILITY_BASE_URL"
)
