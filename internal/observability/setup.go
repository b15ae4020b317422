package observability

import (
	"context"
	"net/http"

	"github.com/Antontokarchuk0302/Travelsite/internal/infrastructure/observability"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Setup initializes logging, metrics and tracing for the process. It returns
// the tracer shutdown func and the handler serving /metrics.
func Setup(serviceName, logLevel, otlpEndpoint string) (func(context.Context) error, http.Handler) {
	observability.InitLogger(serviceName, logLevel)
	observability.InitMetrics()
	shutdown := observability.InitTracing(serviceName, otlpEndpoint)
	return shutdown, promhttp.Handler()
}
