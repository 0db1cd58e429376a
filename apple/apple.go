// Package apple is a placeholder for Apple Wallet passes.
//
// Apple Wallet uses signed PKPass bundles (pass.json, images, manifest.json and
// a manifest signature) instead of a REST API. Generating them is not
// implemented yet; every operation fails with [porter.ErrUnsupportedPlatform].
package apple

import (
	"context"
	"fmt"

	"thde.io/porter"
)

// Pass mirrors the top-level keys of pass.json.
type Pass struct {
	FormatVersion      int    `json:"formatVersion"`
	PassTypeIdentifier string `json:"passTypeIdentifier"`
	SerialNumber       string `json:"serialNumber"`
	TeamIdentifier     string `json:"teamIdentifier"`
	OrganizationName   string `json:"organizationName"`
	Description        string `json:"description"`
}

// Client is the Apple Wallet counterpart of the Google client.
type Client struct{}

var _ porter.PassClient = (*Client)(nil)

// New creates an Apple Wallet client.
func New() *Client {
	return &Client{}
}

func unsupported(op string) error {
	return fmt.Errorf("apple: %s: %w", op, porter.ErrUnsupportedPlatform)
}

func (c *Client) CreatePass(context.Context, porter.Pass) (porter.Pass, error) {
	return porter.Pass{}, unsupported("create pass")
}

func (c *Client) GetPass(context.Context, string) (porter.Pass, error) {
	return porter.Pass{}, unsupported("get pass")
}

func (c *Client) UpdatePass(context.Context, string, porter.Pass) (porter.Pass, error) {
	return porter.Pass{}, unsupported("update pass")
}

func (c *Client) DeletePass(context.Context, string) error {
	return unsupported("delete pass")
}
