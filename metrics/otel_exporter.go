package metrics

import (
	"context"
	"fmt"
	"net/http"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// OTelExporter exposes catalog gauges in Prometheus format
type OTelExporter struct {
	meterProvider *sdkmetric.MeterProvider
	registry      *promclient.Registry
	collector     Collector

	meter             metric.Meter
	booksGauge        metric.Int64ObservableGauge
	patronsGauge      metric.Int64ObservableGauge
	transactionsGauge metric.Int64ObservableGauge
}

// NewOTelExporter creates the exporter with its own Prometheus registry
func NewOTelExporter(collector Collector) (*OTelExporter, error) {
	registry := promclient.NewRegistry()
	exporter, err := prometheus.New(prometheus.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("creating prometheus exporter: %w", err)
	}

	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)
	otel.SetMeterProvider(meterProvider)

	meter := meterProvider.Meter(
		"library-catalog",
		metric.WithInstrumentationVersion("1.0.0"),
	)

	oe := &OTelExporter{
		meterProvider: meterProvider,
		registry:      registry,
		collector:     collector,
		meter:         meter,
	}
	if err := oe.registerInstruments(); err != nil {
		return nil, fmt.Errorf("registering instruments: %w", err)
	}
	return oe, nil
}

func (oe *OTelExporter) registerInstruments() error {
	var err error

	oe.booksGauge, err = oe.meter.Int64ObservableGauge(
		"catalog.books",
		metric.WithDescription("Number of books in the catalog by state"),
		metric.WithUnit("{books}"),
		metric.WithInt64Callback(oe.observeBooks),
	)
	if err != nil {
		return fmt.Errorf("creating books gauge: %w", err)
	}

	oe.patronsGauge, err = oe.meter.Int64ObservableGauge(
		"catalog.patrons",
		metric.WithDescription("Number of patrons by fee state"),
		metric.WithUnit("{patrons}"),
		metric.WithInt64Callback(oe.observePatrons),
	)
	if err != nil {
		return fmt.Errorf("creating patrons gauge: %w", err)
	}

	oe.transactionsGauge, err = oe.meter.Int64ObservableGauge(
		"catalog.transactions",
		metric.WithDescription("Number of entries in the transaction log"),
		metric.WithUnit("{transactions}"),
		metric.WithInt64Callback(oe.observeTransactions),
	)
	if err != nil {
		return fmt.Errorf("creating transactions gauge: %w", err)
	}

	return nil
}

func (oe *OTelExporter) observeBooks(ctx context.Context, observer metric.Int64Observer) error {
	counts, err := oe.collector.GetBookCounts(ctx)
	if err != nil {
		return err
	}
	for state, n := range counts {
		observer.Observe(n, metric.WithAttributes(attribute.String("book.state", state)))
	}
	return nil
}

func (oe *OTelExporter) observePatrons(ctx context.Context, observer metric.Int64Observer) error {
	counts, err := oe.collector.GetPatronCounts(ctx)
	if err != nil {
		return err
	}
	for state, n := range counts {
		observer.Observe(n, metric.WithAttributes(attribute.String("patron.fees", state)))
	}
	return nil
}

func (oe *OTelExporter) observeTransactions(ctx context.Context, observer metric.Int64Observer) error {
	n, err := oe.collector.GetTransactionCount(ctx)
	if err != nil {
		return err
	}
	observer.Observe(n)
	return nil
}

// ServeHTTP returns the handler serving Prometheus-formatted metrics
func (oe *OTelExporter) ServeHTTP() http.Handler {
	return promhttp.HandlerFor(oe.registry, promhttp.HandlerOpts{})
}

// Shutdown gracefully shuts down the meter provider
func (oe *OTelExporter) Shutdown(ctx context.Context) error {
	if oe.meterProvider != nil {
		return oe.meterProvider.Shutdown(ctx)
	}
	return nil
}
