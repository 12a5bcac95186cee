package observability

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

type Config struct {
	Enable bool `yaml:"enable"`
	// stdout | http | prometheus. if not set but enable will use stdout.
	Exporter string `yaml:"exporter"`
	// http endpoint exporter
	TraceEndpoint   string `yaml:"traceEndpoint"`
	MetricsEndpoint string `yaml:"metricsEndpoint"`
	// secure endpoint (https)
	Secure bool `yaml:"secure"`
}

// Init initializes and configures OpenTelemetry for the application.
// It returns a shutdown function that must be called on application
// exit.
func Init(ctx context.Context, serviceName string, cfg Config) (shutdown func(context.Context) error) {
	noopShutdown := func(context.Context) error { return nil }
	if !cfg.Enable {
		slog.Info("Observability is disabled")
		return noopShutdown
	}

	res, err := resource.New(
		ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(serviceName),
		),
	)
	if err != nil {
		slog.Error("failed to create otel resource", "error", err)
		return noopShutdown
	}

	// --- TRACER PROVIDER ---
	var traceExporter trace.SpanExporter
	switch cfg.Exporter {
	case "http":
		slog.Info("Initializing otlp trace exporter", "endpoint", cfg.TraceEndpoint)

		otlpOpts := []otlptracehttp.Option{}
		otlpOpts = append(otlpOpts, otlptracehttp.WithEndpoint(cfg.TraceEndpoint))
		if !cfg.Secure {
			otlpOpts = append(otlpOpts, otlptracehttp.WithInsecure())
		}
		traceExporter, err = otlptracehttp.New(ctx, otlpOpts...)
		if err != nil {
			slog.Error("failed to create otlp http trace exporter", "error", err)
			return noopShutdown
		}

	default:
		slog.Info("Initializing stdout trace exporter")
		traceExporter, err = stdouttrace.New(stdouttrace.WithPrettyPrint())
		if err != nil {
			slog.Error("failed to create trace exporter", "error", err)
			return noopShutdown
		}
	}

	tracerProvider := trace.NewTracerProvider(
		trace.WithBatcher(traceExporter),
		trace.WithResource(res),
	)
	otel.SetTracerProvider(tracerProvider)

	// --- METER PROVIDER ---
	var reader metric.Reader
	switch cfg.Exporter {
	case "http":
		opts := []otlpmetrichttp.Option{}
		opts = append(opts, otlpmetrichttp.WithEndpoint(cfg.MetricsEndpoint))
		if !cfg.Secure {
			opts = append(opts, otlpmetrichttp.WithInsecure())
		}
		metricExporter, err := otlpmetrichttp.New(ctx, opts...)
		if err != nil {
			slog.Error("failed to create otlp http metric exporter", "error", err)
			return noopShutdown
		}
		reader = metric.NewPeriodicReader(metricExporter)

	case "prometheus":
		// scraped from the rest server's /metrics endpoint
		promExporter, err := prometheus.New()
		if err != nil {
			slog.Error("failed to create prometheus exporter", "error", err)
			return noopShutdown
		}
		reader = promExporter

	default:
		metricExporter, err := stdoutmetric.New()
		if err != nil {
			slog.Error("failed to create metric exporter", "error", err)
			return noopShutdown
		}
		reader = metric.NewPeriodicReader(metricExporter)
	}

	meterProvider := metric.NewMeterProvider(
		metric.WithReader(reader),
		metric.WithResource(res),
	)
	otel.SetMeterProvider(meterProvider)

	// Set the global propagator to tracecontext.
	otel.SetTextMapPropagator(propagation.TraceContext{})
	slog.Info("Observability initialized", "exporter", cfg.Exporter)

	return func(ctx context.Context) error {
		return errors.Join(
			tracerProvider.Shutdown(ctx),
			meterProvider.Shutdown(ctx),
		)
	}
}
