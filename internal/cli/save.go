package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"thde.io/porter/google"
)

func newSaveURLCmd(a *app) *cobra.Command {
	var offline bool

	cmd := &cobra.Command{
		Use:   "save-url <pass-id>...",
		Short: "Print a link that adds passes to a wallet",
		Long: `Print a link that adds the given passes to the user's Google Wallet.

By default the signed JWT is registered with the API and the returned save URL is
printed. With --offline the JWT is embedded in the link directly.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.requireGoogle(cmd)
			if err != nil {
				return err
			}

			objects := make([]google.GenericObject, 0, len(args))
			for _, id := range args {
				obj, err := c.GenericObject(cmd.Context(), a.qualify(id))
				if err != nil {
					return err
				}
				objects = append(objects, *obj)
			}

			var link string
			if offline {
				signed, err := c.SignSaveJWT(google.SavePayload{GenericObjects: objects})
				if err != nil {
					return err
				}
				link = google.SaveLink(signed)
			} else {
				link, err = c.SaveURL(cmd.Context(), objects...)
				if err != nil {
					return err
				}
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), link)
			return err
		},
	}

	cmd.Flags().BoolVar(&offline, "offline", false, "Embed the JWT in the link instead of registering it")
	return cmd
}
