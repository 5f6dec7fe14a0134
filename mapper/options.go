package mapper

import (
	"log/slog"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"property-mapper/profile"
)

// NilPolicy decides what happens when an association pointer is nil.
type NilPolicy int

const (
	// FailOnNilAssociation aborts the call with ErrNilAssociation.
	FailOnNilAssociation NilPolicy = iota
	// SkipNilAssociations leaves the destination field unchanged.
	SkipNilAssociations
)

// Option configures a Mapper.
type Option func(*Mapper)

// WithCatalog sets the property catalog. Defaults to property.Default.
func WithCatalog(c Catalog) Option {
	return func(m *Mapper) {
		m.catalog = c
	}
}

// WithLogger sets the logger used for per-field debug records.
// If not provided, records are discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Mapper) {
		m.logger = logger
	}
}

// WithTracer sets an OpenTelemetry tracer. Each mapping call gets one span.
func WithTracer(tracer trace.Tracer) Option {
	return func(m *Mapper) {
		m.tracer = tracer
	}
}

// WithMeterProvider enables mapping metrics.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(m *Mapper) {
		m.meterProvider = mp
	}
}

// WithProfile applies the ignore lists of a mapping profile to every call
// whose type pair it configures.
func WithProfile(p *profile.File) Option {
	return func(m *Mapper) {
		m.profile = p
	}
}

// WithNilAssociations sets the nil association policy.
func WithNilAssociations(policy NilPolicy) Option {
	return func(m *Mapper) {
		m.nilPolicy = policy
	}
}
