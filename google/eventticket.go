package google

import (
	"context"
	"net/http"
	"net/url"
)

// CreateEventTicket creates an event ticket object.
func (c *Client) CreateEventTicket(ctx context.Context, ticket EventTicketObject) (*EventTicketObject, error) {
	return send[EventTicketObject](ctx, c, http.MethodPost, "eventTicketObject", nil, ticket)
}

// EventTicket retrieves an event ticket object by ID.
func (c *Client) EventTicket(ctx context.Context, objectID string) (*EventTicketObject, error) {
	return send[EventTicketObject](ctx, c, http.MethodGet, "eventTicketObject/"+url.PathEscape(objectID), nil, nil)
}

// UpdateEventTicket replaces an event ticket object.
func (c *Client) UpdateEventTicket(ctx context.Context, objectID string, ticket EventTicketObject) (*EventTicketObject, error) {
	return send[EventTicketObject](ctx, c, http.MethodPut, "eventTicketObject/"+url.PathEscape(objectID), nil, ticket)
}
