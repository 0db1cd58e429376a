// Package cli implements the porter command line interface.
package cli

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"thde.io/porter"
	"thde.io/porter/apple"
	"thde.io/porter/google"
)

// app carries the state shared by all commands of one invocation.
type app struct {
	env    *environment
	logger *slog.Logger

	platform string
	dotenv   string
	apiURL   string
	tokenURL string
	noColor  bool

	environ func() []string
}

// NewRootCmd returns the porter command tree.
func NewRootCmd() *cobra.Command {
	a := &app{environ: os.Environ}

	root := &cobra.Command{
		Use:               "porter",
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		Short:             "Issue and manage wallet passes",
		Long:              `porter creates pass classes and objects, sends messages to pass holders and builds save-to-wallet links`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			a.env, err = loadEnvironment(a.environ(), a.dotenv)
			if err != nil {
				return err
			}

			a.logger = newLogger(cmd.ErrOrStderr(), parseLogLevel(a.env.LogLevel), a.noColor)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.platform, "platform", porter.PlatformGoogle.String(), "Wallet platform (google, apple)")
	flags.StringVar(&a.dotenv, "env-file", ".env", "Read missing environment variables from this file")
	flags.BoolVar(&a.noColor, "no-color", false, "Disable colored log output")
	flags.StringVar(&a.apiURL, "api-url", google.APIURL, "Google Wallet API base URL")
	flags.StringVar(&a.tokenURL, "token-url", google.TokenURL, "OAuth2 token endpoint")
	_ = flags.MarkHidden("api-url")
	_ = flags.MarkHidden("token-url")

	root.AddCommand(
		newClassCmd(a),
		newObjectCmd(a),
		newSaveURLCmd(a),
	)

	return root
}

// Execute runs the root command and prints any error to stderr.
func Execute() error {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	return nil
}

// googleClient creates a Google Wallet client from the loaded environment.
func (a *app) googleClient() (*google.Client, error) {
	cfg, err := a.env.googleConfig()
	if err != nil {
		return nil, err
	}

	baseURL, err := url.Parse(a.apiURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API URL: %w", err)
	}

	c, err := google.New(cfg,
		google.WithBaseURL(baseURL),
		google.WithTokenURL(a.tokenURL),
		google.WithOrigins(a.env.Origins...),
	)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("Google Wallet client ready",
		slog.String("issuer_id", c.IssuerID()),
		slog.String("api_url", baseURL.String()),
	)

	return c, nil
}

// passClient returns the client of the selected platform.
func (a *app) passClient() (porter.PassClient, error) {
	p, err := porter.ParsePlatform(a.platform)
	if err != nil {
		return nil, err
	}

	switch p {
	case porter.PlatformApple:
		return apple.New(), nil
	default:
		return a.googleClient()
	}
}

// requireGoogle fails for commands that only exist on Google Wallet.
func (a *app) requireGoogle(cmd *cobra.Command) (*google.Client, error) {
	p, err := porter.ParsePlatform(a.platform)
	if err != nil {
		return nil, err
	}
	if p != porter.PlatformGoogle {
		return nil, fmt.Errorf("%s: %s: %w", cmd.CommandPath(), p, porter.ErrUnsupportedPlatform)
	}

	return a.googleClient()
}

// qualify prefixes id with the issuer ID unless it already carries it.
func (a *app) qualify(id string) string {
	issuer := a.env.IssuerID
	if issuer == "" || strings.HasPrefix(id, issuer+".") {
		return id
	}

	return issuer + "." + id
}
