package porter

import (
	"context"
	"fmt"
)

// PassClient is implemented by every wallet platform.
type PassClient interface {
	CreatePass(ctx context.Context, pass Pass) (Pass, error)
	GetPass(ctx context.Context, id string) (Pass, error)
	UpdatePass(ctx context.Context, id string, pass Pass) (Pass, error)
	// DeletePass removes a pass from use. Platforms without real deletion
	// expire the pass instead.
	DeletePass(ctx context.Context, id string) error
}

// Platform identifies a wallet platform.
type Platform int

const (
	PlatformGoogle Platform = iota
	PlatformApple
)

// String implements the [fmt.Stringer] interface.
func (p Platform) String() string {
	switch p {
	case PlatformGoogle:
		return "google"
	case PlatformApple:
		return "apple"
	}

	return "unknown"
}

// ParsePlatform parses a platform name as returned by [Platform.String].
func ParsePlatform(name string) (Platform, error) {
	switch name {
	case "google":
		return PlatformGoogle, nil
	case "apple":
		return PlatformApple, nil
	}

	return 0, fmt.Errorf("%q: %w", name, ErrUnsupportedPlatform)
}
