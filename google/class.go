package google

import (
	"context"
	"net/http"
	"net/url"
)

// CreateGenericClass creates a class. Objects can only be created for existing classes.
func (c *Client) CreateGenericClass(ctx context.Context, class GenericClass) (*GenericClass, error) {
	return send[GenericClass](ctx, c, http.MethodPost, "genericClass", nil, class)
}

// GenericClass retrieves a class by ID.
func (c *Client) GenericClass(ctx context.Context, classID string) (*GenericClass, error) {
	return send[GenericClass](ctx, c, http.MethodGet, "genericClass/"+url.PathEscape(classID), nil, nil)
}

// UpdateGenericClass replaces a class.
func (c *Client) UpdateGenericClass(ctx context.Context, classID string, class GenericClass) (*GenericClass, error) {
	return send[GenericClass](ctx, c, http.MethodPut, "genericClass/"+url.PathEscape(classID), nil, class)
}
