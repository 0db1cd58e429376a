package google

import (
	"crypto/rsa"
	"fmt"
	"net/http"
	"net/url"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"thde.io/porter"
)

const (
	// APIURL is the Google Wallet REST endpoint.
	APIURL = "https://walletobjects.googleapis.com/walletobjects/v1/"
	// TokenURL is the Google OAuth2 token endpoint. It is also the audience of the token assertion.
	TokenURL = "https://oauth2.googleapis.com/token"
	// Scope is the OAuth2 scope needed to issue wallet objects.
	Scope = "https://www.googleapis.com/auth/wallet_object.issuer"

	modulePath = "thde.io/porter"
)

// Client calls the Google Wallet API on behalf of a service account.
// Use [New] to create a new client.
//
// Token refresh is serialized internally; everything else is a single
// request without retries.
type Client struct {
	baseURL  *url.URL
	tokenURL string

	issuerID   string
	email      string
	key        *rsa.PrivateKey
	origins    []string
	httpClient *http.Client
	userAgent  string
	now        func() time.Time

	auth *tokenStore
}

var _ porter.PassClient = (*Client)(nil)

// ClientOption configures a Client before use.
type ClientOption func(*Client)

// WithBaseURL sets a custom API base URL.
func WithBaseURL(baseURL *url.URL) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTokenURL sets a custom OAuth2 token endpoint.
func WithTokenURL(tokenURL string) ClientOption {
	return func(c *Client) {
		c.tokenURL = tokenURL
	}
}

// WithHTTPClient sets a custom HTTP client.
// Timeouts are whatever the HTTP client enforces.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithUserAgent sets a custom User-Agent header for API requests.
func WithUserAgent(userAgent string) ClientOption {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithOrigins sets the origins allowed to open save links.
func WithOrigins(origins ...string) ClientOption {
	return func(c *Client) {
		c.origins = origins
	}
}

// WithClock sets the time source used for token expiry and JWT timestamps.
// Not recommended for production use.
func WithClock(now func() time.Time) ClientOption {
	return func(c *Client) {
		c.now = now
	}
}

// New creates a Google Wallet client for the given service account.
// It fails if cfg is incomplete or the private key cannot be parsed.
// No request is made until the first API call.
func New(cfg Config, opts ...ClientOption) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(cfg.PrivateKey))
	if err != nil {
		return nil, fmt.Errorf("%w: parse private key: %w", porter.ErrSigning, err)
	}

	apiURL, _ := url.Parse(APIURL)

	c := &Client{
		baseURL:  apiURL,
		tokenURL: TokenURL,
		issuerID: cfg.IssuerID,
		email:    cfg.ServiceAccountEmail,
		key:      key,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		now:  time.Now,
		auth: &tokenStore{},
	}

	for _, opt := range opts {
		opt(c)
	}

	if !strings.HasSuffix(c.baseURL.Path, "/") {
		u := *c.baseURL
		u.Path += "/"
		c.baseURL = &u
	}

	if c.userAgent == "" {
		c.userAgent = userAgent()
	}

	return c, nil
}

// IssuerID returns the issuer the client was configured with.
func (c *Client) IssuerID() string {
	return c.issuerID
}

// ResourceID qualifies suffix with the issuer ID, as required for class and object IDs.
func (c *Client) ResourceID(suffix string) string {
	return c.issuerID + "." + suffix
}

// version returns the module version of the porter package.
// It returns "devel" if built without module version information.
func version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "devel"
	}

	for _, dep := range info.Deps {
		if dep.Path == modulePath {
			if dep.Version == "(devel)" {
				return "devel"
			}

			return dep.Version
		}
	}

	if info.Main.Path == modulePath {
		if info.Main.Version != "(devel)" {
			return info.Main.Version
		}
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" && len(setting.Value) >= 7 {
				return "devel+" + setting.Value[:7]
			}
		}
	}

	return "devel"
}

// userAgent returns the default User-Agent string for this package.
func userAgent() string {
	return fmt.Sprintf("go-porter/%s (%s; %s/%s)", version(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
