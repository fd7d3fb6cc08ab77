package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Setup configures OpenTelemetry metrics with a Prometheus exporter and
// optional OTLP exporter. It returns a Recorder, the Prometheus HTTP
// handler, and a shutdown function.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, http.Handler, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), nil, func(context.Context) error { return nil }, nil
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = "gridiron"
	}

	promReader, promHandler, err := promReaderFactory()
	if err != nil {
		return nil, nil, nil, err
	}

	opts := []sdkmetric.Option{sdkmetric.WithReader(promReader)}

	if cfg.OtlpEndpoint != "" {
		otlpReader, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
		if err != nil {
			return nil, nil, nil, err
		}
		opts = append(opts, sdkmetric.WithReader(otlpReader))
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, nil, nil, err
	}

	opts = append(opts, sdkmetric.WithResource(res))

	provider := sdkmetric.NewMeterProvider(opts...)

	otelInst, err := instrumentFactory(provider)
	if err != nil {
		return nil, nil, nil, err
	}

	rec := newRecorder(otelInst)
	shutdown := func(c context.Context) error {
		return provider.Shutdown(c)
	}

	return rec, promHandler, shutdown, nil
}

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	otlpOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		otlpOpts = append(otlpOpts, otlpmetrichttp.WithInsecure())
	}
	otlpExp, err := otlpmetrichttp.New(ctx, otlpOpts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(otlpExp, sdkmetric.WithInterval(15*time.Second)), nil
}

func prometheusComponents() (sdkmetric.Reader, http.Handler, error) {
	reg := prometheus.NewRegistry()
	promExp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return promExp, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), nil
}

type otelInstruments struct {
	ctx                  context.Context
	meter                metric.Meter
	generations          metric.Int64Counter
	generationErrors     metric.Int64Counter
	generationLatencyMs  metric.Float64Histogram
	validationRuns       metric.Int64Counter
	gateFailures         metric.Int64Counter
	gamesSimulated       metric.Int64Counter
	playoffAdvances      metric.Int64Counter
	playoffAdvanceErrors metric.Int64Counter
	draftOrders          metric.Int64Counter
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	meter := provider.Meter("gridiron")
	ctx := context.Background()

	generations, err := meter.Int64Counter("schedule_generations_total")
	if err != nil {
		return nil, err
	}
	generationErrors, err := meter.Int64Counter("schedule_generation_errors_total")
	if err != nil {
		return nil, err
	}
	generationLatency, err := meter.Float64Histogram("schedule_generation_duration_ms")
	if err != nil {
		return nil, err
	}
	validationRuns, err := meter.Int64Counter("schedule_validations_total")
	if err != nil {
		return nil, err
	}
	gateFailures, err := meter.Int64Counter("schedule_gate_failures_total")
	if err != nil {
		return nil, err
	}
	gamesSimulated, err := meter.Int64Counter("games_simulated_total")
	if err != nil {
		return nil, err
	}
	playoffAdvances, err := meter.Int64Counter("playoff_advances_total")
	if err != nil {
		return nil, err
	}
	playoffAdvanceErrors, err := meter.Int64Counter("playoff_advance_errors_total")
	if err != nil {
		return nil, err
	}
	draftOrders, err := meter.Int64Counter("draft_orders_total")
	if err != nil {
		return nil, err
	}

	return &otelInstruments{
		ctx:                  ctx,
		meter:                meter,
		generations:          generations,
		generationErrors:     generationErrors,
		generationLatencyMs:  generationLatency,
		validationRuns:       validationRuns,
		gateFailures:         gateFailures,
		gamesSimulated:       gamesSimulated,
		playoffAdvances:      playoffAdvances,
		playoffAdvanceErrors: playoffAdvanceErrors,
		draftOrders:          draftOrders,
	}, nil
}

func (o *otelInstruments) recordGeneration(year int, duration time.Duration, err error) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{attribute.Int(AttrYear, year)}
	o.recordCounter(o.generations, 1, attrs...)
	o.recordHistogram(o.generationLatencyMs, float64(duration.Milliseconds()), attrs...)
	if err != nil {
		o.recordCounter(o.generationErrors, 1, attrs...)
	}
}

func (o *otelInstruments) recordValidation(failedGates []string) {
	if o == nil {
		return
	}
	o.recordCounter(o.validationRuns, 1)
	for _, gate := range failedGates {
		o.recordCounter(o.gateFailures, 1, attribute.String(AttrGate, gate))
	}
}

func (o *otelInstruments) recordGamesSimulated(n int) {
	if o == nil {
		return
	}
	o.recordCounter(o.gamesSimulated, int64(n))
}

func (o *otelInstruments) recordPlayoffAdvance(round string, err error) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{attribute.String(AttrRound, round)}
	o.recordCounter(o.playoffAdvances, 1, attrs...)
	if err != nil {
		o.recordCounter(o.playoffAdvanceErrors, 1, attrs...)
	}
}

func (o *otelInstruments) recordDraftOrder() {
	if o == nil {
		return
	}
	o.recordCounter(o.draftOrders, 1)
}

func (o *otelInstruments) recordCounter(counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if o == nil {
		return
	}
	counter.Add(o.ctx, value, metric.WithAttributes(attrs...))
}

func (o *otelInstruments) recordHistogram(hist metric.Float64Histogram, value float64, attrs ...attribute.KeyValue) {
	if o == nil {
		return
	}
	hist.Record(o.ctx, value, metric.WithAttributes(attrs...))
}
