package cli

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ukpath/server"
)

func newServeCmd(g *globals) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the route finder over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ds, err := g.load()
			if err != nil {
				return err
			}
			s, err := server.New(ds)
			if err != nil {
				return err
			}
			log.Printf("serving %q on %s", ds.Name, addr)

			return s.Run(addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "localhost:8080", "listen address")

	return cmd
}
