package commands

import (
	"context"

	"github.com/spf13/cobra"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Generate the Elm modules and regenerate them on change",
		Long: "Generate the Elm modules, then watch the Symfony sources and regenerate " +
			"whenever routes or translations change. Stops on interrupt.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			ctx := cmd.Context()

			if err := c.load(ctx, true); err != nil {
				return err
			}
			defer func() {
				if closeErr := c.app.Close(context.WithoutCancel(ctx)); err == nil {
					err = closeErr
				}
			}()

			// A failed first run is reported and the next change retries it.
			if _, err := c.app.OnBeforeBuild(ctx); err != nil {
				c.logger.Error(err)
			}

			return c.app.Watch(ctx)
		},
	}
}
