package metrics

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	RegisterRequestsTotal  metric.Int64Counter
	LoginRequestsTotal     metric.Int64Counter
	AuthFailuresTotal      metric.Int64Counter
	UploadBytesTotal       metric.Int64Counter
	DbQueryDurationSeconds metric.Float64Histogram
}

var (
	appMetrics *AppMetrics
	once       sync.Once
	initErr    error
)

// SetupMeterProvider installs a Prometheus-backed otel MeterProvider globally
// and returns the scrape handler for the metrics server.
func SetupMeterProvider() (http.Handler, error) {
	exporter, err := prometheus.New()
	if err != nil {
		return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))
	otel.SetMeterProvider(mp)
	return promhttp.Handler(), nil
}

// InitAppMetrics initializes the global metric instruments once.
// SetupMeterProvider must have been called first.
func InitAppMetrics() (*AppMetrics, error) {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("movies-api")
		m := &AppMetrics{}

		if m.RegisterRequestsTotal, initErr = meter.Int64Counter(
			"register_requests_total",
			metric.WithDescription("Total number of register requests completed"),
			metric.WithUnit("{request}"),
		); initErr != nil {
			return
		}

		if m.LoginRequestsTotal, initErr = meter.Int64Counter(
			"login_requests_total",
			metric.WithDescription("Total number of login requests completed"),
			metric.WithUnit("{request}"),
		); initErr != nil {
			return
		}

		if m.AuthFailuresTotal, initErr = meter.Int64Counter(
			"auth_failures_total",
			metric.WithDescription("Total number of failed authentication attempts"),
			metric.WithUnit("{failure}"),
		); initErr != nil {
			return
		}

		if m.UploadBytesTotal, initErr = meter.Int64Counter(
			"upload_bytes_total",
			metric.WithDescription("Total bytes accepted by the upload endpoint"),
			metric.WithUnit("By"),
		); initErr != nil {
			return
		}

		if m.DbQueryDurationSeconds, initErr = meter.Float64Histogram(
			"db_query_duration_seconds",
			metric.WithDescription("Duration of database queries in seconds"),
			metric.WithUnit("s"),
		); initErr != nil {
			return
		}

		appMetrics = m
	})
	if initErr != nil {
		return nil, fmt.Errorf("failed to create metric instruments: %w", initErr)
	}
	return appMetrics, nil
}
