package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ukpath/pathfinder"
)

func newCompareCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "compare FROM TO",
		Short: "Run all four searches and tabulate them",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, _, err := g.engine()
			if err != nil {
				return err
			}
			from, to, err := resolve(e, args[0], args[1])
			if err != nil {
				return err
			}

			results, err := e.Compare(from, to)
			if errors.Is(err, pathfinder.ErrInvalidQuery) {
				fmt.Fprintln(cmd.OutOrStdout(), pathfinder.MsgSameLocation)

				return nil
			}
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ALGORITHM\tHOPS\tCOST\tEXPANDED\tPATH")
			for _, r := range results {
				if !r.Found {
					fmt.Fprintf(tw, "%s\t-\t-\t%d\t%s\n", r.Algorithm, r.Expanded, pathfinder.MsgNoPath)

					continue
				}
				fmt.Fprintf(tw, "%s\t%d\t%g\t%d\t%s\n", r.Algorithm, r.Path.Hops(), r.Cost, r.Expanded, r.Path)
			}

			return tw.Flush()
		},
	}
}
