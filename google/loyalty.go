package google

import (
	"context"
	"net/http"
	"net/url"
)

// CreateLoyaltyObject creates a loyalty object.
func (c *Client) CreateLoyaltyObject(ctx context.Context, loyalty LoyaltyObject) (*LoyaltyObject, error) {
	return send[LoyaltyObject](ctx, c, http.MethodPost, "loyaltyObject", nil, loyalty)
}

// LoyaltyObject retrieves a loyalty object by ID.
func (c *Client) LoyaltyObject(ctx context.Context, objectID string) (*LoyaltyObject, error) {
	return send[LoyaltyObject](ctx, c, http.MethodGet, "loyaltyObject/"+url.PathEscape(objectID), nil, nil)
}

// UpdateLoyaltyObject replaces a loyalty object.
func (c *Client) UpdateLoyaltyObject(ctx context.Context, objectID string, loyalty LoyaltyObject) (*LoyaltyObject, error) {
	return send[LoyaltyObject](ctx, c, http.MethodPut, "loyaltyObject/"+url.PathEscape(objectID), nil, loyalty)
}
