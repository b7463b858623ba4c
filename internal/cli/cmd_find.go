package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ukpath/pathfinder"
)

func newFindCmd(g *globals) *cobra.Command {
	var algoName string
	cmd := &cobra.Command{
		Use:   "find FROM TO",
		Short: "Find a route between two cities",
		Long: `Runs one search and prints the route with its total cost.

$ ukpath find Manchester Inverness --algorithm dijkstra
Dijkstra's Algorithm Path: Manchester -> Carlisle -> Glasgow -> Inverness
Total cost: 390
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			algo, err := pathfinder.ParseAlgorithm(algoName)
			if err != nil {
				return err
			}
			e, _, err := g.engine()
			if err != nil {
				return err
			}
			from, to, err := resolve(e, args[0], args[1])
			if err != nil {
				return err
			}

			res, err := e.Find(from, to, algo)
			out := cmd.OutOrStdout()
			if errors.Is(err, pathfinder.ErrInvalidQuery) {
				fmt.Fprintln(out, pathfinder.MsgSameLocation)

				return nil
			}
			if err != nil {
				return err
			}
			printResult(out, res)

			return nil
		},
	}
	cmd.Flags().StringVarP(&algoName, "algorithm", "a", pathfinder.AStar.Key(), "dfs, bfs, dijkstra or astar")

	return cmd
}

// printResult writes the route and its cost, or the no-route notice.
func printResult(w io.Writer, res *pathfinder.Result) {
	if !res.Found {
		fmt.Fprintln(w, pathfinder.MsgNoPath)

		return
	}
	route := res.Path.String()
	if colorize(w) {
		route = ansiGreen + route + ansiReset
	}
	fmt.Fprintf(w, "%s Path: %s\n", res.Algorithm, route)
	fmt.Fprintf(w, "Total cost: %g\n", res.Cost)
}
