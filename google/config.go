package google

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"thde.io/porter"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config holds the credentials of a Google Cloud service account that is
// allowed to issue passes for IssuerID.
type Config struct {
	IssuerID            string `validate:"required"`
	ServiceAccountEmail string `validate:"required,email"`
	// PrivateKey is the PEM encoded RSA key of the service account.
	PrivateKey string `validate:"required"`
}

// Validate reports missing or malformed credentials as [porter.ErrConfig].
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", porter.ErrConfig, err)
	}

	return nil
}

// serviceAccountKey is the subset of a service account key file we need.
type serviceAccountKey struct {
	Type        string `json:"type"`
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
}

// ConfigFromServiceAccountJSON builds a Config from a service account key file
// as downloaded from the Google Cloud console.
func ConfigFromServiceAccountJSON(issuerID string, data []byte) (Config, error) {
	var key serviceAccountKey
	if err := json.Unmarshal(data, &key); err != nil {
		return Config{}, fmt.Errorf("%w: service account key: %w", porter.ErrConfig, err)
	}

	if key.Type != "" && key.Type != "service_account" {
		return Config{}, fmt.Errorf("%w: unexpected key type %q", porter.ErrConfig, key.Type)
	}

	cfg := Config{
		IssuerID:            issuerID,
		ServiceAccountEmail: key.ClientEmail,
		PrivateKey:          key.PrivateKey,
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
