package cli

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ukpath/pathfinder"
	"github.com/katalvlaran/ukpath/render"
)

func newRenderCmd(g *globals) *cobra.Command {
	var (
		algoName      string
		out           string
		width, height int
	)
	cmd := &cobra.Command{
		Use:   "render FROM TO",
		Short: "Draw the map with a route as PNG",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			algo, err := pathfinder.ParseAlgorithm(algoName)
			if err != nil {
				return err
			}
			e, ds, err := g.engine()
			if err != nil {
				return err
			}
			from, to, err := resolve(e, args[0], args[1])
			if err != nil {
				return err
			}

			res, err := e.Find(from, to, algo)
			if errors.Is(err, pathfinder.ErrInvalidQuery) {
				fmt.Fprintln(cmd.OutOrStdout(), pathfinder.MsgSameLocation)

				return nil
			}
			if err != nil {
				return err
			}
			title := algo.String() + " Path"
			if !res.Found {
				title = pathfinder.MsgNoPath
			}

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := render.Render(f, ds, res.Path, render.WithSize(width, height), render.WithTitle(title)); err != nil {
				f.Close()

				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			if g.verbose {
				log.Printf("wrote %s (%dx%d)", out, width, height)
			}
			printResult(cmd.OutOrStdout(), res)

			return nil
		},
	}
	cmd.Flags().StringVarP(&algoName, "algorithm", "a", pathfinder.AStar.Key(), "dfs, bfs, dijkstra or astar")
	cmd.Flags().StringVarP(&out, "out", "o", "route.png", "output PNG file")
	cmd.Flags().IntVar(&width, "width", 800, "image width in pixels")
	cmd.Flags().IntVar(&height, "height", 800, "image height in pixels")

	return cmd
}
