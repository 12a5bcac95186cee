// Package biz assembles the tool set and serves it over the MCP and
// rest transports.
package biz

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/odit-bit/bizclock/biz/config"
	"github.com/odit-bit/bizclock/biz/tool"
	_ "github.com/odit-bit/bizclock/biz/tool/provider"
)

const (
	serviceName = "bizclock-server"
	version     = "0.1.0"
)

// Service is the assembled tool set shared by every transport.
type Service struct {
	tools []*tool.Tool
}

func New(ctx context.Context, cfg *config.Config) (*Service, error) {
	if cfg.Server.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
		slog.Debug("configuration", "config", cfg)
	}

	ts, err := tool.Build(cfg.Tools)
	if err != nil {
		slog.Error(err.Error())
		return nil, fmt.Errorf("bizclock init tools: %w", err)
	}
	if cfg.Server.Debug {
		slog.Debug("tool providers", "registered", tool.Registered())
	}

	return &Service{tools: ts}, nil
}

func (s *Service) Tools() []*tool.Tool {
	return s.tools
}

// Lookup finds a built tool by its wire name.
func (s *Service) Lookup(name string) (*tool.Tool, bool) {
	for _, t := range s.tools {
		if t.Name == name {
			return t, true
		}
	}
	return nil, false
}
