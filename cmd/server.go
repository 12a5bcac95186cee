package cmd

import (
	"os"
	"os/signal"

	"github.com/odit-bit/bizclock/biz"
	"github.com/odit-bit/bizclock/biz/config"
	"github.com/spf13/cobra"
)

func init() {
	ServerCMD.Flags().AddFlagSet(config.FlagSet)
}

var ServerCMD = cobra.Command{
	Use:   "server",
	Short: "serve the tools over MCP (streamable http + sse) and rest",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		cfg, err := config.LoadAndValidate(cmd.Flags())
		if err != nil {
			return err
		}

		srv, err := biz.NewServer(ctx, cfg)
		if err != nil {
			return err
		}

		return srv.Start(ctx)
	},
}
