package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ukpath/geo"
)

func newNearestCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "nearest LAT LON",
		Short: "Find the city closest to a coordinate",
		Long: `Prints the nearest location by great-circle distance.

$ ukpath nearest 55.95 -3.19
Nearest location: Edinburgh (0.2 miles)
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lat, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid latitude %q: %w", args[0], err)
			}
			lon, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid longitude %q: %w", args[1], err)
			}
			ds, err := g.load()
			if err != nil {
				return err
			}

			name, miles, err := geo.NewIndex(ds.Coords).Nearest(geo.Coord{Lat: lat, Lon: lon})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Nearest location: %s (%.1f miles)\n", name, miles)

			return nil
		},
	}
}
