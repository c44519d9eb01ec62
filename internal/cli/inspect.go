package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInspectCmd() *cobra.Command {
	var sampling string

	cmd := &cobra.Command{
		Use:   "inspect <paints.toml>",
		Short: "Print the paint texture layout without writing an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := layoutPaintFile(cmd.Context(), args[0], sampling)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n",
				layoutTable(res.pal, res.built), layoutSummary(res.pal, res.built))
			return err
		},
	}

	cmd.Flags().StringVar(&sampling, "sampling", "", "gradient sampling: wrap or linear (overrides the paint file)")

	return cmd
}
