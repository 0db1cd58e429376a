package google

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/go-querystring/query"

	"thde.io/porter"
)

const (
	jwtBearerGrant = "urn:ietf:params:oauth:grant-type:jwt-bearer"
	// assertionTTL is the lifetime of the assertion exchanged for an access token.
	assertionTTL = time.Hour
	// refreshMargin is how long before expiry a cached token is replaced.
	refreshMargin = 300 * time.Second
)

// signingMethod is used for every JWT signed with the service account key.
var signingMethod = jwt.SigningMethodRS256

type tokenStore struct {
	sync.Mutex

	token     string
	expiresAt time.Time
}

// assertionClaims are the claims of the JWT-bearer assertion.
type assertionClaims struct {
	Scope    string `json:"scope"`
	Audience string `json:"aud"`
	jwt.RegisteredClaims
}

type tokenRequest struct {
	GrantType string `url:"grant_type"`
	Assertion string `url:"assertion"`
}

// TokenResponse is the answer of the OAuth2 token endpoint.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

// Token returns a bearer token, fetching a new one when none is cached or the
// cached one expires within five minutes.
func (c *Client) Token(ctx context.Context) (string, error) {
	c.auth.Lock()
	defer c.auth.Unlock()

	if !c.auth.shouldRefresh(c.now()) {
		return c.auth.token, nil
	}

	// Drop the stale token first so a failed exchange leaves no token behind.
	c.auth.token = ""
	c.auth.expiresAt = time.Time{}

	resp, err := c.TokenCreate(ctx)
	if err != nil {
		return "", err
	}

	c.auth.update(resp, c.now())

	return c.auth.token, nil
}

// TokenCreate exchanges a freshly signed assertion for an access token.
// It does not touch the cached token.
func (c *Client) TokenCreate(ctx context.Context) (*TokenResponse, error) {
	assertion, err := c.signAssertion()
	if err != nil {
		return nil, err
	}

	form, err := query.Values(tokenRequest{GrantType: jwtBearerGrant, Assertion: assertion})
	if err != nil {
		return nil, fmt.Errorf("%w: encode token request: %w", porter.ErrAuth, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%w: create token request: %w", porter.ErrAuth, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %w", porter.ErrAuth, porter.ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: read token response: %w", porter.ErrAuth, porter.ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf(
			"%w: token exchange failed: %w",
			porter.ErrAuth,
			&porter.APIError{StatusCode: resp.StatusCode, Body: string(body)},
		)
	}

	var tokenResp TokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return nil, fmt.Errorf("%w: %w: decode token response: %w", porter.ErrAuth, porter.ErrSerialization, err)
	}

	if tokenResp.AccessToken == "" {
		return nil, fmt.Errorf("%w: token response without access_token", porter.ErrAuth)
	}

	return &tokenResp, nil
}

// signAssertion builds the JWT-bearer assertion for the token endpoint.
func (c *Client) signAssertion() (string, error) {
	now := c.now()

	claims := assertionClaims{
		Scope:    Scope,
		Audience: c.tokenURL,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(assertionTTL)),
		},
	}

	return c.sign(claims)
}

// sign signs claims with the service account key.
func (c *Client) sign(claims jwt.Claims) (string, error) {
	signed, err := jwt.NewWithClaims(signingMethod, claims).SignedString(c.key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", porter.ErrSigning, err)
	}

	return signed, nil
}

// shouldRefresh checks if the token needs refreshing at now.
func (ts *tokenStore) shouldRefresh(now time.Time) bool {
	if ts == nil {
		return true
	}

	if ts.token == "" {
		return true
	}

	return !now.Before(ts.expiresAt.Add(-refreshMargin))
}

// update stores a token obtained at now.
func (ts *tokenStore) update(resp *TokenResponse, now time.Time) {
	ts.token = resp.AccessToken
	ts.expiresAt = now.Add(time.Duration(resp.ExpiresIn) * time.Second)
}
