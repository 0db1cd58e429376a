package google

import (
	"context"
	"iter"
	"net/http"
	"net/url"

	"github.com/google/go-querystring/query"
)

// CreateGenericObject creates a pass object.
func (c *Client) CreateGenericObject(ctx context.Context, obj GenericObject) (*GenericObject, error) {
	return send[GenericObject](ctx, c, http.MethodPost, "genericObject", nil, obj)
}

// GenericObject retrieves a pass object by ID.
func (c *Client) GenericObject(ctx context.Context, objectID string) (*GenericObject, error) {
	return send[GenericObject](ctx, c, http.MethodGet, "genericObject/"+url.PathEscape(objectID), nil, nil)
}

// UpdateGenericObject replaces a pass object. Fields missing from obj are cleared.
func (c *Client) UpdateGenericObject(ctx context.Context, objectID string, obj GenericObject) (*GenericObject, error) {
	return send[GenericObject](ctx, c, http.MethodPut, "genericObject/"+url.PathEscape(objectID), nil, obj)
}

// PatchGenericObject updates only the fields set in obj.
func (c *Client) PatchGenericObject(ctx context.Context, objectID string, obj GenericObject) (*GenericObject, error) {
	return send[GenericObject](ctx, c, http.MethodPatch, "genericObject/"+url.PathEscape(objectID), nil, obj)
}

// AddMessage shows a message to the holders of a pass object.
func (c *Client) AddMessage(ctx context.Context, objectID string, msg Message) (*GenericObject, error) {
	resp, err := send[AddMessageResponse](
		ctx, c,
		http.MethodPost,
		"genericObject/"+url.PathEscape(objectID)+"/addMessage",
		nil,
		AddMessageRequest{Message: msg},
	)
	if err != nil {
		return nil, err
	}

	return &resp.Resource, nil
}

// ListParams filters and pages generic object listings.
type ListParams struct {
	// ClassID restricts the listing to objects of one class.
	ClassID string `url:"classId,omitempty"`
	// Token is the NextPageToken of the previous page.
	Token      string `url:"token,omitempty"`
	MaxResults int    `url:"maxResults,omitempty"`
}

// GenericObjects retrieves one page of pass objects.
func (c *Client) GenericObjects(ctx context.Context, params ListParams) (*GenericObjectList, error) {
	v, err := query.Values(params)
	if err != nil {
		return nil, err
	}

	return send[GenericObjectList](ctx, c, http.MethodGet, "genericObject", v, nil)
}

// GenericObjectsIter returns an iterator over all pass objects matching params.
func (c *Client) GenericObjectsIter(ctx context.Context, params ListParams) iter.Seq2[GenericObject, error] {
	return iterate(ctx, params, func(ctx context.Context, p ListParams) ([]GenericObject, string, error) {
		list, err := c.GenericObjects(ctx, p)
		if err != nil {
			return nil, "", err
		}

		next := ""
		if list.Pagination != nil {
			next = list.Pagination.NextPageToken
		}

		return list.Resources, next, nil
	})
}
