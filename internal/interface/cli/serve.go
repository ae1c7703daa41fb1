package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newServeCommand(factory Factory) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := factory()
			if err != nil {
				return fmt.Errorf("initialize application: %w", err)
			}
			return app.Run(cmd.Context())
		},
	}
}
