package apiclient

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrymomot/sessionkit/pkg/logger"
	"github.com/dmitrymomot/sessionkit/pkg/tokenstore"
)

// Provider identifies a supported OAuth identity provider.
type Provider string

const (
	ProviderGoogle Provider = "google"
	ProviderGithub Provider = "github"
)

// maxResponseBytes bounds how much of a response body is read.
const maxResponseBytes = 1 << 20

// Config holds API client configuration.
type Config struct {
	BaseURL string        `env:"API_BASE_URL,required"`
	Timeout time.Duration `env:"API_TIMEOUT" envDefault:"15s"`
}

// Client talks to the backend REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client during construction.
type Option func(*Client)

// WithLogger configures the logger for the client.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// WithHTTPClient replaces the underlying HTTP client. Its transport is
// still wrapped with bearer injection.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the per-request timeout on the underlying HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// New constructs a client for the API at baseURL. Credentials are read
// from store on every request; requests without a persisted credential go
// out unauthenticated.
func New(baseURL string, store tokenstore.Store, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, ErrEmptyBaseURL
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.httpClient.Transport = &transport{
		base:   c.httpClient.Transport,
		source: TokenSource(store),
	}
	return c, nil
}

// NewFromConfig constructs a client from an environment-backed Config.
func NewFromConfig(cfg Config, store tokenstore.Store, opts ...Option) (*Client, error) {
	c, err := New(cfg.BaseURL, store, opts...)
	if err != nil {
		return nil, err
	}
	if cfg.Timeout > 0 {
		c.httpClient.Timeout = cfg.Timeout
	}
	return c, nil
}

// OAuthRedirectURL returns the provider entry point that starts the
// backend-driven OAuth flow.
func (c *Client) OAuthRedirectURL(provider Provider) string {
	return fmt.Sprintf("%s/auth/%s/redirect", c.baseURL, provider)
}

// HashPassword digests a password with SHA-256 before it leaves the
// client, matching what the backend expects in password_hash fields.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// RegisterParams collects the fields of a registration request.
type RegisterParams struct {
	Username  string
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// Register creates a new account. On success the envelope data carries
// the issued token and the raw user payload.
func (c *Client) Register(ctx context.Context, params RegisterParams) (*Envelope, error) {
	hash := HashPassword(params.Password)
	return c.do(ctx, http.MethodPost, "/auth/register", map[string]string{
		"username":                   params.Username,
		"first_name":                 params.FirstName,
		"last_name":                  params.LastName,
		"email":                      params.Email,
		"password_hash":              hash,
		"password_hash_confirmation": hash,
	})
}

// Login authenticates with email and password. On success the envelope
// data carries the issued token and the raw user payload.
func (c *Client) Login(ctx context.Context, email, password string) (*Envelope, error) {
	return c.do(ctx, http.MethodPost, "/auth/login", map[string]string{
		"email":         email,
		"password_hash": HashPassword(password),
	})
}

// Logout invalidates the current credential on the backend. Local
// credential cleanup is the session layer's job, not the client's.
func (c *Client) Logout(ctx context.Context) (*Envelope, error) {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil)
}

// CurrentUser fetches the identity behind the current credential.
func (c *Client) CurrentUser(ctx context.Context) (*Envelope, error) {
	return c.do(ctx, http.MethodGet, "/user", nil)
}

// ProfileUpdate collects the mutable profile fields; empty fields are
// omitted from the request.
type ProfileUpdate struct {
	Username  string
	FirstName string
	LastName  string
	Email     string
}

// UpdateProfile applies a partial profile update and returns the envelope
// carrying the updated raw user payload.
func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (*Envelope, error) {
	body := map[string]string{}
	if update.Username != "" {
		body["username"] = update.Username
	}
	if update.FirstName != "" {
		body["first_name"] = update.FirstName
	}
	if update.LastName != "" {
		body["last_name"] = update.LastName
	}
	if update.Email != "" {
		body["email"] = update.Email
	}
	return c.do(ctx, http.MethodPut, "/user", body)
}

// ChangePassword rotates the account password.
func (c *Client) ChangePassword(ctx context.Context, currentPassword, newPassword string) (*Envelope, error) {
	newHash := HashPassword(newPassword)
	return c.do(ctx, http.MethodPost, "/auth/password/change", map[string]string{
		"current_password_hash":          HashPassword(currentPassword),
		"new_password_hash":              newHash,
		"new_password_hash_confirmation": newHash,
	})
}

// ForgotPassword triggers the password recovery email.
func (c *Client) ForgotPassword(ctx context.Context, email string) (*Envelope, error) {
	return c.do(ctx, http.MethodPost, "/auth/password/forgot", map[string]string{
		"email": email,
	})
}

// SendVerificationEmail re-sends the address verification email for the
// current account.
func (c *Client) SendVerificationEmail(ctx context.Context) (*Envelope, error) {
	return c.do(ctx, http.MethodPost, "/auth/verify/send", nil)
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*Envelope, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%w: encode request: %w", ErrRequestFailed, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", ErrRequestFailed, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.DebugContext(ctx, "api request failed",
			slog.String("method", method),
			slog.String("path", path),
			logger.Error(err),
			logger.Component("apiclient"),
		)
		return nil, fmt.Errorf("%w: %s %s: %w", ErrRequestFailed, method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %w", ErrRequestFailed, err)
	}

	// The backend uses the envelope status, not the HTTP status, to signal
	// failure; the body is decoded regardless of the response code.
	return Decode(raw)
}
