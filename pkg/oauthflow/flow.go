package oauthflow

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/dmitrymomot/sessionkit/pkg/logger"
	"github.com/dmitrymomot/sessionkit/pkg/session"
)

// SessionCompleter is the slice of the session manager the flow needs.
// *session.Manager satisfies it.
type SessionCompleter interface {
	CompleteOAuthLogin(ctx context.Context, credential string) error
}

// Result is the outcome of a completion run.
type Result int

const (
	// ResultSuccess means the credential resolved to a valid session.
	ResultSuccess Result = iota
	// ResultMissingToken means the navigation carried no credential;
	// no exchange was attempted.
	ResultMissingToken
	// ResultFailed means the exchange ran and the credential was
	// rejected and discarded.
	ResultFailed
)

func (r Result) String() string {
	switch r {
	case ResultSuccess:
		return "success"
	case ResultMissingToken:
		return "missing_token"
	default:
		return "failed"
	}
}

// ExtractToken pulls the callback credential out of query parameters,
// preferring the current parameter name over the legacy alias.
func ExtractToken(query url.Values) (string, bool) {
	if token := query.Get(ParamToken); token != "" {
		return token, true
	}
	if token := query.Get(ParamTokenAlias); token != "" {
		return token, true
	}
	return "", false
}

// Completer executes the OAuth completion exchange exactly once.
type Completer struct {
	complete SessionCompleter
	attempts uint64
	delay    time.Duration
	logger   *slog.Logger

	mu     sync.Mutex
	ran    bool
	result Result
}

// Option configures a Completer during construction.
type Option func(*Completer)

// WithLogger configures the logger for the completer.
func WithLogger(l *slog.Logger) Option {
	return func(c *Completer) {
		c.logger = l
	}
}

// WithRetry configures the bounded retry policy: attempts extra tries
// separated by the fixed delay. Zero attempts disables retrying.
func WithRetry(attempts uint64, delay time.Duration) Option {
	return func(c *Completer) {
		c.attempts = attempts
		if delay > 0 {
			c.delay = delay
		}
	}
}

// New creates a one-shot completer over the session manager.
// Defaults: one retry after 500ms, logger discards.
func New(sess SessionCompleter, opts ...Option) *Completer {
	c := &Completer{
		complete: sess,
		attempts: 1,
		delay:    500 * time.Millisecond,
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run extracts the credential from the navigation's query parameters and
// exchanges it for a session. Repeated calls on the same instance do not
// repeat the exchange; they return the first run's result.
func (c *Completer) Run(ctx context.Context, query url.Values) Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ran {
		return c.result
	}
	c.ran = true
	c.result = c.runOnce(ctx, query)
	return c.result
}

func (c *Completer) runOnce(ctx context.Context, query url.Values) Result {
	token, ok := ExtractToken(query)
	if !ok {
		c.logger.DebugContext(ctx, "oauth completion without token",
			logger.Component("oauthflow"),
		)
		return ResultMissingToken
	}

	if err := c.exchange(ctx, token); err != nil {
		c.logger.DebugContext(ctx, "oauth completion failed",
			logger.Error(err),
			logger.Component("oauthflow"),
		)
		return ResultFailed
	}
	return ResultSuccess
}

// exchange calls the session manager, optionally retrying rejected
// exchanges to tolerate backends that lag right after token issuance.
// The session manager has already discarded the credential on each
// failed attempt; a retry persists it again from scratch.
func (c *Completer) exchange(ctx context.Context, token string) error {
	if c.attempts == 0 {
		return c.complete.CompleteOAuthLogin(ctx, token)
	}

	backoff := retry.WithMaxRetries(c.attempts, retry.NewConstant(c.delay))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := c.complete.CompleteOAuthLogin(ctx, token)
		if errors.Is(err, session.ErrOAuthCompletionFailed) {
			return retry.RetryableError(err)
		}
		return err
	})
}
