package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/odit-bit/bizclock/api"
	"github.com/spf13/cobra"
)

func init() {
	CallCMD.Flags().StringVar(&globEndpoint, "addr", "http://localhost:8080", "rest server endpoint")
}

var globEndpoint = ""

// CallCMD invokes one tool on a running server, for poking at a
// deployment from the shell.
var CallCMD = cobra.Command{
	Use:   "call [tool] [json-args]",
	Short: "invoke a tool on a running bizclock server",
	Args:  cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := api.NewClient(globEndpoint)

		if len(args) == 0 {
			tools, err := c.Tools(cmd.Context())
			if err != nil {
				return err
			}
			for _, t := range tools {
				fmt.Printf("%s\t%s\n", t.Name, t.Description)
			}
			return nil
		}

		toolArgs := map[string]any{}
		if len(args) == 2 {
			if err := json.Unmarshal([]byte(args[1]), &toolArgs); err != nil {
				return fmt.Errorf("args must be a json object: %w", err)
			}
		}

		res, err := c.Call(cmd.Context(), args[0], toolArgs)
		if err != nil {
			return err
		}
		fmt.Println(res.Text)
		if res.Data != nil {
			fmt.Println(string(res.Data))
		}
		return nil
	},
}
