package constants

// NATS subjects published by the auth service
const (
	SubjectUserVerified = "auth.user.verified"
)
