package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHistoryCommand(factory Factory) *cobra.Command {
	var (
		limit  int
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List saved outfits, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return fmt.Errorf("limit must be non-negative, got %d", limit)
			}
			advisor, err := advisorFrom(factory)
			if err != nil {
				return err
			}
			records, err := advisor.History(cmd.Context(), limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				outfits := make([]map[string]string, 0, len(records))
				for _, r := range records {
					outfits = append(outfits, r.Map())
				}
				return writeJSON(out, map[string]any{"outfits": outfits})
			}
			if len(records) == 0 {
				fmt.Fprintln(out, "No saved outfits.")
				return nil
			}
			fmt.Fprintf(out, "Saved outfits (%d):\n", len(records))
			for i, r := range records {
				fmt.Fprintf(out, "\n#%d\n", i+1)
				for _, f := range r.Fields() {
					if f.Value == "" {
						continue
					}
					fmt.Fprintf(out, "  %s: %s\n", f.Name, f.Value)
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum outfits to list (0 uses the configured default)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}
