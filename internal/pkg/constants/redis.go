package constants

// Redis key formats
const (
	// Auth Service
	KeyOTPRateLimit = "auth:ratelimit:%s" // Format: auth:ratelimit:{email}

	// Middleware Rate Limiting
	KeyRateLimit = "rate:limit:%s:%s" // Format: rate:limit:{resource}:{ip}
)
