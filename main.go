package main

import (
	"github.com/odit-bit/bizclock/cmd"
	"github.com/spf13/cobra"
)

func main() {
	rootCMD := cobra.Command{
		Use:   "bizclock",
		Short: "business-hours and local-time tool server for voice agents",
	}
	rootCMD.AddCommand(
		&cmd.ServerCMD,
		&cmd.StdioCMD,
		&cmd.CallCMD,
	)
	rootCMD.Execute()
}
