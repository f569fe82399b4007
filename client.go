package sahha

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultBaseURL is the production Sahha API origin.
	DefaultBaseURL = "https://pharmacy-med17-production.up.railway.app"
	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second
	// defaultUserAgent identifies the SDK on the wire.
	defaultUserAgent = "sahha-go/1.0.0"
)

// Client is the Sahha API client.
//
// Use NewClient to create a client backed by a credential store:
//
//	creds := sahha.NewMemStore()
//	client := sahha.NewClient(sahha.WithCredentials(creds))
//	doctors, err := client.Doctors.Nearby(ctx, 36.75, 3.05, 10)
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	creds      *CredentialStore
	logger     *slog.Logger

	// Services
	Auth         *AuthService
	Doctors      *DoctorsService
	Pharmacies   *PharmaciesService
	Reservations *ReservationsService
	Profile      *ProfileService
}

// Option configures the client.
type Option func(*Client)

// WithBaseURL sets a custom API base URL.
//
// Example:
//
//	client := sahha.NewClient(sahha.WithBaseURL("https://staging.sahha.dz"))
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if c.httpClient == nil {
			c.httpClient = &http.Client{}
		}
		c.httpClient.Timeout = timeout
	}
}

// WithCredentials sets the credential store the client reads bearer tokens
// from. Without one the client runs unauthenticated.
func WithCredentials(creds *CredentialStore) Option {
	return func(c *Client) {
		c.creds = creds
	}
}

// WithLogger sets the logger used for request-level debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// NewClient creates a new Sahha API client.
//
// Example:
//
//	client := sahha.NewClient(
//	    sahha.WithBaseURL("https://staging.sahha.dz"),
//	    sahha.WithCredentials(store),
//	)
//	pharmacies, err := client.Pharmacies.Open24Hours(ctx)
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:   DefaultBaseURL,
		userAgent: defaultUserAgent,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.creds == nil {
		c.creds = NewMemStore()
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}

	// Initialize services
	c.Auth = &AuthService{client: c}
	c.Doctors = &DoctorsService{client: c}
	c.Pharmacies = &PharmaciesService{client: c}
	c.Reservations = &ReservationsService{client: c}
	c.Profile = &ProfileService{client: c}

	return c
}

// BaseURL returns the current base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Credentials returns the credential store backing this client.
func (c *Client) Credentials() *CredentialStore {
	return c.creds
}

// newRequestID mints the per-request correlation ID.
func (c *Client) newRequestID() string {
	return uuid.NewString()
}
