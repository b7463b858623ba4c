package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newLocationsCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "locations",
		Short: "List the cities of the map",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds, err := g.load()
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tLAT,LON\tCONNECTIONS")
			for _, name := range ds.Graph.Locations() {
				deg, err := ds.Graph.Degree(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "%s\t%s\t%d\n", name, ds.Coords[name], deg)
			}

			return tw.Flush()
		},
	}
}
