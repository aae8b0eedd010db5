package oauthflow

import "time"

// Query parameter names the callback credential is accepted under.
const (
	ParamToken = "token"
	// ParamTokenAlias is the legacy parameter name still emitted by
	// older backend deployments.
	ParamTokenAlias = "api_token"
)

// Config holds OAuth completion configuration.
type Config struct {
	// SuccessURL is the authenticated entry point to redirect to after
	// a completed login.
	SuccessURL string `env:"OAUTH_COMPLETE_SUCCESS_URL" envDefault:"/dashboard"`

	// FailureURL is the unauthenticated entry point to return to when
	// completion fails.
	FailureURL string `env:"OAUTH_COMPLETE_FAILURE_URL" envDefault:"/auth"`

	// RetryAttempts is how many extra identity-exchange attempts to make
	// after the first failure (0 disables retrying).
	RetryAttempts uint64 `env:"OAUTH_COMPLETE_RETRY_ATTEMPTS" envDefault:"1"`

	// RetryDelay is the fixed pause between attempts.
	RetryDelay time.Duration `env:"OAUTH_COMPLETE_RETRY_DELAY" envDefault:"500ms"`
}

// DefaultConfig returns default OAuth completion configuration.
func DefaultConfig() Config {
	return Config{
		SuccessURL:    "/dashboard",
		FailureURL:    "/auth",
		RetryAttempts: 1,
		RetryDelay:    500 * time.Millisecond,
	}
}
