package google

import (
	"context"
	"errors"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
)

const (
	saveAudience = "google"
	saveType     = "savetowallet"

	// SaveLinkPrefix turns a signed save JWT into a link, see [SaveLink].
	SaveLinkPrefix = "https://pay.google.com/gp/v/save/"
)

// ErrNoSaveURI is returned when the JWT insert call answers without a save URI.
var ErrNoSaveURI = errors.New("no save URI returned")

// SaveClaims is the payload of a "save to wallet" JWT.
type SaveClaims struct {
	Audience string      `json:"aud"`
	Type     string      `json:"typ"`
	Origins  []string    `json:"origins,omitempty"`
	Payload  SavePayload `json:"payload"`
	jwt.RegisteredClaims
}

// SavePayload lists the objects offered for saving.
type SavePayload struct {
	GenericObjects     []GenericObject     `json:"genericObjects,omitempty"`
	EventTicketObjects []EventTicketObject `json:"eventTicketObjects,omitempty"`
	LoyaltyObjects     []LoyaltyObject     `json:"loyaltyObjects,omitempty"`
}

// JWTResource is the body of the JWT insert call.
type JWTResource struct {
	JWT string `json:"jwt"`
}

// JWTInsertResponse is the answer of the JWT insert call.
type JWTInsertResponse struct {
	SaveURI string `json:"saveUri,omitempty"`
}

// SignSaveJWT signs a "save to wallet" JWT for payload with the service account key.
func (c *Client) SignSaveJWT(payload SavePayload) (string, error) {
	claims := SaveClaims{
		Audience: saveAudience,
		Type:     saveType,
		Origins:  c.origins,
		Payload:  payload,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   c.email,
			IssuedAt: jwt.NewNumericDate(c.now()),
		},
	}

	return c.sign(claims)
}

// SaveURLForPayload registers a signed save JWT with the API and returns the
// URL that prompts a user to add the objects to their wallet.
func (c *Client) SaveURLForPayload(ctx context.Context, payload SavePayload) (string, error) {
	signed, err := c.SignSaveJWT(payload)
	if err != nil {
		return "", err
	}

	resp, err := send[JWTInsertResponse](ctx, c, http.MethodPost, "jwt", nil, JWTResource{JWT: signed})
	if err != nil {
		return "", err
	}

	if resp.SaveURI == "" {
		return "", ErrNoSaveURI
	}

	return resp.SaveURI, nil
}

// SaveURL returns a save URL for generic objects.
func (c *Client) SaveURL(ctx context.Context, objects ...GenericObject) (string, error) {
	return c.SaveURLForPayload(ctx, SavePayload{GenericObjects: objects})
}

// SaveLink builds a save link from a JWT signed with [Client.SignSaveJWT]
// without calling the API. Long payloads may exceed URL length limits.
func SaveLink(signedJWT string) string {
	return SaveLinkPrefix + signedJWT
}
