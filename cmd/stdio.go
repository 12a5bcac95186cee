package cmd

import (
	"github.com/odit-bit/bizclock/biz"
	"github.com/odit-bit/bizclock/biz/config"
	"github.com/spf13/cobra"
)

func init() {
	StdioCMD.Flags().AddFlagSet(config.FlagSet)
}

// StdioCMD speaks MCP over stdin/stdout so a local agent can embed the
// tools without a network listener.
var StdioCMD = cobra.Command{
	Use:   "stdio",
	Short: "serve the tools over MCP stdio",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate(cmd.Flags())
		if err != nil {
			return err
		}

		svc, err := biz.New(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		return biz.ServeStdio(svc)
	},
}
