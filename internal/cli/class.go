package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"thde.io/porter"
	"thde.io/porter/google"
)

func newClassCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "class",
		Short: "Manage pass classes",
	}

	cmd.AddCommand(newClassCreateCmd(a), newClassGetCmd(a))
	return cmd
}

func newClassCreateCmd(a *app) *cobra.Command {
	var (
		id           string
		issuerName   string
		reviewStatus string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a generic pass class",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.requireGoogle(cmd)
			if err != nil {
				return err
			}

			status, err := parseReviewStatus(reviewStatus)
			if err != nil {
				return err
			}

			class, err := c.CreatePassClass(cmd.Context(), porter.PassClass{
				ID:           a.qualify(id),
				IssuerName:   issuerName,
				ReviewStatus: status,
			})
			if err != nil {
				return err
			}

			a.logger.Info("Class created", slog.String("class_id", class.ID))
			return printJSON(cmd.OutOrStdout(), newClassView(class))
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Class ID suffix")
	cmd.Flags().StringVar(&issuerName, "issuer-name", "", "Issuer name shown on passes")
	cmd.Flags().StringVar(&reviewStatus, "review-status", porter.ReviewStatusUnderReview.String(), "Review status (draft, under_review)")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func newClassGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <class-id>",
		Short: "Show a pass class",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.requireGoogle(cmd)
			if err != nil {
				return err
			}

			class, err := c.GenericClass(cmd.Context(), a.qualify(args[0]))
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), newClassView(google.ToPassClass(*class)))
		},
	}
}
