package google

import (
	"context"

	"thde.io/porter"
)

// CreatePass converts pass and creates it as a generic object.
func (c *Client) CreatePass(ctx context.Context, pass porter.Pass) (porter.Pass, error) {
	obj, err := c.CreateGenericObject(ctx, FromPass(pass))
	if err != nil {
		return porter.Pass{}, err
	}

	return ToPass(*obj), nil
}

// GetPass retrieves a generic object as a unified pass.
func (c *Client) GetPass(ctx context.Context, id string) (porter.Pass, error) {
	obj, err := c.GenericObject(ctx, id)
	if err != nil {
		return porter.Pass{}, err
	}

	return ToPass(*obj), nil
}

// UpdatePass replaces a generic object with the converted pass.
func (c *Client) UpdatePass(ctx context.Context, id string, pass porter.Pass) (porter.Pass, error) {
	obj, err := c.UpdateGenericObject(ctx, id, FromPass(pass))
	if err != nil {
		return porter.Pass{}, err
	}

	return ToPass(*obj), nil
}

// DeletePass expires a generic object. Google Wallet cannot delete objects, so
// the object is fetched, marked EXPIRED and written back in full.
func (c *Client) DeletePass(ctx context.Context, id string) error {
	obj, err := c.GenericObject(ctx, id)
	if err != nil {
		return err
	}

	obj.State = stateExpired

	_, err = c.UpdateGenericObject(ctx, id, *obj)
	return err
}

// CreatePassClass converts class and creates it as a generic class.
func (c *Client) CreatePassClass(ctx context.Context, class porter.PassClass) (porter.PassClass, error) {
	created, err := c.CreateGenericClass(ctx, FromPassClass(class))
	if err != nil {
		return porter.PassClass{}, err
	}

	return ToPassClass(*created), nil
}

// AddPassMessage shows msg to the holders of the pass with the given ID.
func (c *Client) AddPassMessage(ctx context.Context, id string, msg porter.PassMessage) (porter.Pass, error) {
	obj, err := c.AddMessage(ctx, id, FromPassMessage(msg))
	if err != nil {
		return porter.Pass{}, err
	}

	return ToPass(*obj), nil
}

// PassSaveURL converts passes and returns a save URL for them.
func (c *Client) PassSaveURL(ctx context.Context, passes ...porter.Pass) (string, error) {
	objects := make([]GenericObject, 0, len(passes))
	for _, p := range passes {
		objects = append(objects, FromPass(p))
	}

	return c.SaveURL(ctx, objects...)
}
