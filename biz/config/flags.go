package config

import "github.com/spf13/pflag"

const (
	FLAG_REST_ADDRESS = "addr"
	FLAG_MCP_ADDRESS  = "mcp-addr"
	FLAG_SSE_ADDRESS  = "sse-addr"
	FLAG_DEBUG        = "debug"
	FLAG_CONFIG_FILE  = "config"
	FLAG_OBSERVE      = "observe"
)

// Defined set of flags for bizclock configuration use.
var FlagSet = pflag.NewFlagSet("Bizclock_Flags", pflag.PanicOnError)

var flagToConfigKeyMap = map[string]string{
	FLAG_REST_ADDRESS: "server.rest",
	FLAG_MCP_ADDRESS:  "server.mcp",
	FLAG_SSE_ADDRESS:  "server.sse",
	FLAG_DEBUG:        "server.debug",
	FLAG_OBSERVE:      "observability.enable",
}

func init() {
	defineFlags()
}

func defineFlags() {
	FlagSet.String(FLAG_REST_ADDRESS, "", "rest server address")
	FlagSet.String(FLAG_MCP_ADDRESS, "", "mcp streamable-http server address")
	FlagSet.String(FLAG_SSE_ADDRESS, "", "mcp sse server address")
	FlagSet.Bool(FLAG_DEBUG, false, "debug log")
	FlagSet.String(FLAG_CONFIG_FILE, "", "path to config file")
	FlagSet.Bool(FLAG_OBSERVE, false, "enable otel exporters")
}
