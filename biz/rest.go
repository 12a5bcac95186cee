package biz

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

type toolInfo struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"inputSchema"`
}

// RestHandler mounts the rest facade: tool catalog, tool invocation,
// health and metrics.
func RestHandler(svc *Service, e *echo.Echo) {
	if e == nil {
		panic("got nil parameter")
	}

	meter := otel.Meter("bizclock.rest")
	requestCounter, err := meter.Int64Counter(
		"bizclock.http.request_total",
		metric.WithDescription("total number of HTTP request"),
	)
	if err != nil {
		panic(err)
	}

	// otel middleware
	e.Use(otelecho.Middleware(serviceName))

	// tag every request with an id the voice platform can echo back
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rid := c.Request().Header.Get(echo.HeaderXRequestID)
			if rid == "" {
				rid = uuid.NewString()
			}
			c.Response().Header().Set(echo.HeaderXRequestID, rid)
			return next(c)
		}
	})

	// custom middleware to counter request
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			requestCounter.Add(c.Request().Context(), 1)
			return err
		}
	})

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.GET("/v1/tools", func(c echo.Context) error {
		infos := make([]toolInfo, 0, len(svc.Tools()))
		for _, t := range svc.Tools() {
			infos = append(infos, toolInfo{
				Name:        t.Name,
				Description: t.Description,
				InputSchema: t.Schema(),
			})
		}
		return c.JSON(http.StatusOK, echo.Map{"tools": infos})
	})

	e.POST("/v1/tools/:name", func(c echo.Context) error {
		slog.Debug("got request", "tool", c.Param("name"))
		if ok := IsJsonContentType(c.Request()); !ok {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "expecting json body"})
		}

		t, ok := svc.Lookup(c.Param("name"))
		if !ok {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "unknown tool"})
		}

		args := map[string]any{}
		if err := c.Bind(&args); err != nil {
			slog.Error("failed binding", "error", err)
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json format"})
		}

		res := t.Call(c.Request().Context(), args)
		return c.JSON(http.StatusOK, res)
	})
}

func IsJsonContentType(req *http.Request) bool {
	ct := req.Header.Get("Content-Type")
	return ct == "application/json"
}
