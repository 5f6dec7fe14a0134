package mapper

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "property-mapper/mapper"

// instruments holds the metric instruments of a Mapper.
type instruments struct {
	// calls counts mapping calls by outcome
	calls metric.Int64Counter

	// fields counts destination fields by resolution
	fields metric.Int64Counter

	// duration records call duration in milliseconds
	duration metric.Float64Histogram
}

func newInstruments(mp metric.MeterProvider) (*instruments, error) {
	meter := mp.Meter(instrumentationName)

	ins := &instruments{}

	var err error

	ins.calls, err = meter.Int64Counter(
		"propmap.calls",
		metric.WithDescription("Number of mapping calls"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create calls counter: %w", err)
	}

	ins.fields, err = meter.Int64Counter(
		"propmap.fields",
		metric.WithDescription("Number of destination fields processed, by resolution"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create fields counter: %w", err)
	}

	ins.duration, err = meter.Float64Histogram(
		"propmap.duration",
		metric.WithDescription("Mapping call duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("create duration histogram: %w", err)
	}

	return ins, nil
}

// record reports one finished call.
func (ins *instruments) record(ctx context.Context, typePair string, counts map[Resolution]int, elapsed time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}

	pair := attribute.String("propmap.type_pair", typePair)

	ins.calls.Add(ctx, 1, metric.WithAttributes(pair, attribute.String("propmap.outcome", outcome)))
	ins.duration.Record(ctx, float64(elapsed.Microseconds())/1000, metric.WithAttributes(pair))

	for r, n := range counts {
		ins.fields.Add(ctx, int64(n), metric.WithAttributes(pair, attribute.String("propmap.resolution", r.String())))
	}
}
