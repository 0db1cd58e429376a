package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"thde.io/porter"
	"thde.io/porter/google"
)

func newObjectCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "object",
		Aliases: []string{"pass"},
		Short:   "Manage pass objects",
	}

	cmd.AddCommand(
		newObjectCreateCmd(a),
		newObjectUpdateCmd(a),
		newObjectGetCmd(a),
		newObjectExpireCmd(a),
		newObjectListCmd(a),
		newObjectMessageCmd(a),
	)
	return cmd
}

func newObjectCreateCmd(a *app) *cobra.Command {
	var opts passOptions

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a pass",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pass, err := opts.build(a.qualify, uuid.NewString)
			if err != nil {
				return err
			}

			c, err := a.passClient()
			if err != nil {
				return err
			}

			created, err := c.CreatePass(cmd.Context(), pass)
			if err != nil {
				return err
			}

			a.logger.Info("Pass created",
				slog.String("pass_id", created.ID),
				slog.String("class_id", created.ClassID),
			)
			return printJSON(cmd.OutOrStdout(), newPassView(created))
		},
	}

	opts.register(cmd.Flags())
	return cmd
}

func newObjectUpdateCmd(a *app) *cobra.Command {
	var opts passOptions

	cmd := &cobra.Command{
		Use:   "update <pass-id>",
		Short: "Replace a pass",
		Long:  `Replace a pass with the one described by the flags. Parts not given are cleared.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.id = args[0]
			pass, err := opts.build(a.qualify, uuid.NewString)
			if err != nil {
				return err
			}

			c, err := a.passClient()
			if err != nil {
				return err
			}

			updated, err := c.UpdatePass(cmd.Context(), pass.ID, pass)
			if err != nil {
				return err
			}

			a.logger.Info("Pass updated", slog.String("pass_id", updated.ID))
			return printJSON(cmd.OutOrStdout(), newPassView(updated))
		},
	}

	opts.register(cmd.Flags())
	_ = cmd.Flags().MarkHidden("id")
	return cmd
}

func newObjectGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <pass-id>",
		Short: "Show a pass",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.passClient()
			if err != nil {
				return err
			}

			pass, err := c.GetPass(cmd.Context(), a.qualify(args[0]))
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), newPassView(pass))
		},
	}
}

func newObjectExpireCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "expire <pass-id>",
		Aliases: []string{"delete"},
		Short:   "Expire a pass",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.passClient()
			if err != nil {
				return err
			}

			id := a.qualify(args[0])
			if err := c.DeletePass(cmd.Context(), id); err != nil {
				return err
			}

			a.logger.Info("Pass expired", slog.String("pass_id", id))
			return nil
		},
	}
}

func newObjectListCmd(a *app) *cobra.Command {
	var (
		classID    string
		maxResults int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the passes of a class",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.requireGoogle(cmd)
			if err != nil {
				return err
			}

			params := google.ListParams{
				ClassID:    a.qualify(classID),
				MaxResults: maxResults,
			}

			table := newPassTable(cmd.OutOrStdout())
			count := 0
			for obj, err := range c.GenericObjectsIter(cmd.Context(), params) {
				if err != nil {
					return err
				}
				table.add(google.ToPass(obj))
				count++
			}

			a.logger.Debug("Listed passes", slog.String("class_id", params.ClassID), slog.Int("count", count))
			return table.flush()
		},
	}

	cmd.Flags().StringVar(&classID, "class", "", "Class ID suffix")
	cmd.Flags().IntVar(&maxResults, "page-size", 0, "Passes fetched per request")
	_ = cmd.MarkFlagRequired("class")

	return cmd
}

func newObjectMessageCmd(a *app) *cobra.Command {
	var (
		header   string
		body     string
		duration time.Duration
	)

	cmd := &cobra.Command{
		Use:   "message <pass-id>",
		Short: "Show a message to the holder of a pass",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if body == "" {
				return fmt.Errorf("--body is required")
			}

			c, err := a.requireGoogle(cmd)
			if err != nil {
				return err
			}

			msg := porter.PassMessage{Body: body}
			if header != "" {
				msg.Header = &header
			}
			if duration > 0 {
				start := time.Now()
				end := start.Add(duration)
				msg.StartTime = &start
				msg.EndTime = &end
			}

			pass, err := c.AddPassMessage(cmd.Context(), a.qualify(args[0]), msg)
			if err != nil {
				return err
			}

			a.logger.Info("Message sent", slog.String("pass_id", pass.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&header, "header", "", "Message header")
	cmd.Flags().StringVar(&body, "body", "", "Message body")
	cmd.Flags().DurationVar(&duration, "for", 0, "Show the message for this long, from now")

	return cmd
}
