package config

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"strings"

	"github.com/odit-bit/bizclock/biz/observability"
	"github.com/odit-bit/bizclock/biz/tool"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

//go:embed config.yaml
var defaultConfig embed.FS

// Config aggregates configuration across the bizclock environment.
type Config struct {
	Server        ServerConfig         `yaml:"server"`
	Observability observability.Config `yaml:"observability"`
	Tools         []tool.Config        `yaml:"tools"`
}

// ServerConfig holds the listen addresses of the three transports.
type ServerConfig struct {
	Rest  string `yaml:"rest"`
	MCP   string `yaml:"mcp"`
	SSE   string `yaml:"sse"`
	Debug bool   `yaml:"debug"`
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	for name, addr := range map[string]string{
		"rest": c.Server.Rest,
		"mcp":  c.Server.MCP,
		"sse":  c.Server.SSE,
	} {
		if addr == "" {
			return fmt.Errorf("%s server address is required", name)
		}
		if _, _, err := net.SplitHostPort(addr); err != nil {
			return fmt.Errorf("invalid %s server address format: %w", name, err)
		}
	}

	if len(c.Tools) == 0 {
		return errors.New("at least one tools entry is required")
	}
	return nil
}

// LoadAndValidate layers configuration from the embedded config.yaml,
// an optional provided config file, env and flags before validation.
func LoadAndValidate(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	// Bind env variable
	v.SetEnvPrefix("BIZCLOCK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bind pflags
	for flagName, configKey := range flagToConfigKeyMap {
		v.BindPFlag(configKey, flags.Lookup(flagName))
	}

	// Set default value by reading from the embedded config.yaml
	defaultBytes, _ := defaultConfig.ReadFile("config.yaml")
	if err := v.ReadConfig(bytes.NewReader(defaultBytes)); err != nil {
		return nil, fmt.Errorf("failed to read default config: %w", err)
	}

	// Merge the external config file if provided
	configFile, _ := flags.GetString(FLAG_CONFIG_FILE)
	if configFile != "" {
		f, err := os.Open(configFile)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		defer f.Close()
		providedBytes, _ := io.ReadAll(f)
		if err := v.MergeConfig(bytes.NewReader(providedBytes)); err != nil {
			return nil, fmt.Errorf("failed to read provided config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
