package biz

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/odit-bit/bizclock/biz/config"
	"github.com/odit-bit/bizclock/biz/observability"
	mcp "trpc.group/trpc-go/trpc-mcp-go"
)

// Server runs the three transports: MCP streamable-http, MCP sse and
// the rest facade.
type Server struct {
	e   *echo.Echo
	mcp *mcp.Server
	sse *mcp.SSEServer
	cfg *config.Config
}

func NewServer(ctx context.Context, cfg *config.Config) (*Server, error) {
	svc, err := New(ctx, cfg)
	if err != nil {
		return nil, err
	}

	// rest facade
	e := echo.New()
	e.HideBanner = true
	RestHandler(svc, e)

	// mcp servers share one tool set
	m := mcp.NewServer(serviceName, version, mcp.WithServerAddress(cfg.Server.MCP))
	sse := mcp.NewSSEServer(serviceName, version)
	for _, t := range svc.Tools() {
		m.RegisterTool(mcpTool(t), mcpHandler(t))
		sse.RegisterTool(mcpTool(t), mcpHandler(t))
	}

	return &Server{e: e, mcp: m, sse: sse, cfg: cfg}, nil
}

func (s *Server) Start(ctx context.Context) error {
	var err error

	// start observability
	shutdown := observability.Init(ctx, serviceName, s.cfg.Observability)

	go func() {
		slog.Info("mcp server listening", "address", s.cfg.Server.MCP)
		if xerr := s.mcp.Start(); xerr != nil {
			slog.Error("mcp server stopped", "error", xerr)
		}
	}()
	go func() {
		slog.Info("sse server listening", "address", s.cfg.Server.SSE)
		s.sse.Start(s.cfg.Server.SSE)
	}()

	go func() {
		<-ctx.Done()

		slog.Info("shutdown observability providers...")
		if xerr := shutdown(ctx); xerr != nil {
			err = errors.Join(err, xerr)
		}

		slog.Info("shutdown sse server...")
		s.sse.Shutdown(ctx)

		slog.Info("shutdown http server...")
		if xerr := s.e.Shutdown(ctx); xerr != nil {
			err = errors.Join(err, xerr)
		}
	}()

	if xerr := s.e.Start(s.cfg.Server.Rest); !errors.Is(xerr, http.ErrServerClosed) {
		err = errors.Join(err, xerr)
	}
	return err
}
