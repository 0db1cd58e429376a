package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"

	"thde.io/porter/google"
)

// environment holds the settings read from the process environment and .env.
type environment struct {
	IssuerID            string   `env:"PORTER_ISSUER_ID"`
	ServiceAccountEmail string   `env:"PORTER_SERVICE_ACCOUNT_EMAIL"`
	PrivateKeyFile      string   `env:"PORTER_PRIVATE_KEY_FILE"`
	ServiceAccountFile  string   `env:"PORTER_SERVICE_ACCOUNT_FILE"`
	Origins             []string `env:"PORTER_ORIGINS,separator=|"`
	LogLevel            string   `env:"LOG_LEVEL,default=info"`
}

// loadEnvironment decodes environ. Variables missing there are taken from the
// dotenv file, which may not exist.
func loadEnvironment(environ []string, dotenv string) (*environment, error) {
	es, err := env.EnvironToEnvSet(environ)
	if err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if dotenv != "" {
		vars, err := godotenv.Read(dotenv)
		switch {
		case err == nil:
			for k, v := range vars {
				if _, ok := es[k]; !ok {
					es[k] = v
				}
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("failed to read %s: %w", dotenv, err)
		}
	}

	var cfg environment
	if err := env.Unmarshal(es, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal environment variables: %w", err)
	}

	return &cfg, nil
}

// googleConfig assembles the service account credentials. A key file wins
// over the separate email and PEM key settings.
func (e *environment) googleConfig() (google.Config, error) {
	if e.ServiceAccountFile != "" {
		data, err := os.ReadFile(e.ServiceAccountFile)
		if err != nil {
			return google.Config{}, fmt.Errorf("failed to read service account file: %w", err)
		}

		return google.ConfigFromServiceAccountJSON(e.IssuerID, data)
	}

	cfg := google.Config{
		IssuerID:            e.IssuerID,
		ServiceAccountEmail: e.ServiceAccountEmail,
	}

	if e.PrivateKeyFile != "" {
		data, err := os.ReadFile(e.PrivateKeyFile)
		if err != nil {
			return google.Config{}, fmt.Errorf("failed to read private key: %w", err)
		}
		cfg.PrivateKey = string(data)
	}

	return cfg, cfg.Validate()
}
