package service

// Outcome labels passed to RecordAuthentication.
const (
	AuthResultSuccess = "success"
	AuthResultFailure = "failure"
)

// AuthMetrics records the outcome of each authentication attempt.
type AuthMetrics interface {
	RecordAuthentication(strategy, result string)
}
