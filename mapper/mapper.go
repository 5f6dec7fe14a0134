package mapper

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"property-mapper/internal/match"
	"property-mapper/profile"
	"property-mapper/property"
)

// Catalog enumerates the properties of struct types.
// *property.Catalog is the reflection based implementation.
type Catalog interface {
	// Readable returns the properties that can be read from outside the type.
	Readable(t reflect.Type) []property.Property
	// Writable returns the properties that can be both read and written.
	Writable(t reflect.Type) []property.Property
}

// Mapper copies values between structs. It is safe for concurrent use as long
// as concurrent calls do not share a destination.
type Mapper struct {
	catalog       Catalog
	logger        *slog.Logger
	tracer        trace.Tracer
	meterProvider metric.MeterProvider
	metrics       *instruments
	profile       *profile.File
	nilPolicy     NilPolicy
}

// New creates a Mapper.
func New(opts ...Option) (*Mapper, error) {
	m := &Mapper{}
	for _, opt := range opts {
		opt(m)
	}

	if m.catalog == nil {
		m.catalog = property.Default
	}

	if m.logger == nil {
		m.logger = slog.New(slog.DiscardHandler)
	}

	m.logger = m.logger.With("component", "propmap")

	if m.tracer == nil {
		m.tracer = tracenoop.NewTracerProvider().Tracer(instrumentationName)
	}

	if m.meterProvider == nil {
		m.meterProvider = metricnoop.NewMeterProvider()
	}

	metrics, err := newInstruments(m.meterProvider)
	if err != nil {
		return nil, err
	}

	m.metrics = metrics

	if m.profile != nil {
		if diags := profile.Validate(m.profile); !diags.IsValid() {
			return nil, fmt.Errorf("invalid profile: %w", diags.Error())
		}
	}

	return m, nil
}

// Map copies src into dst, which must be a pointer to a struct. Only the
// ignore lists of the configured profile apply.
func (m *Mapper) Map(ctx context.Context, src, dst any) error {
	srcV, dstV, err := values(src, dst)
	if err != nil {
		return err
	}

	cfg := newSelectors(m.catalog, srcV.Type(), dstV.Type())
	m.applyProfile(cfg)

	if err := cfg.err(); err != nil {
		return err
	}

	return m.run(ctx, srcV, dstV, &cfg.ignored)
}

// Plan resolves every writable field of dst against src without copying.
func (m *Mapper) Plan(src, dst reflect.Type) (*Plan, error) {
	src, dst = structType(src), structType(dst)
	if src == nil {
		return nil, ErrInvalidSource
	}

	if dst == nil {
		return nil, ErrInvalidDestination
	}

	cfg := newSelectors(m.catalog, src, dst)
	m.applyProfile(cfg)

	if err := cfg.err(); err != nil {
		return nil, err
	}

	return m.plan(src, dst, &cfg.ignored), nil
}

// applyProfile adds the profile ignores configured for the selectors' type pair.
func (m *Mapper) applyProfile(cfg *selectors) {
	src, dst := cfg.src, cfg.dst

	for _, mp := range m.profile.Find(src.PkgPath(), src.Name(), dst.PkgPath(), dst.Name()) {
		for _, name := range mp.Ignore {
			cfg.ignoreName(name, "profile "+mp.TypePair())
		}
	}
}

// plan resolves each writable destination property through the source analyzer.
func (m *Mapper) plan(src, dst reflect.Type, ignored *ignoreSet) *Plan {
	analyzer := match.SourceAnalyzer[property.Property, reflect.Type](m.catalog.Readable(src), m.catalog.Readable)

	targets := m.catalog.Writable(dst)

	p := &Plan{
		Source:      src,
		Destination: dst,
		Entries:     make([]Entry, 0, len(targets)),
	}

	for _, target := range targets {
		entry := Entry{
			Field: target.Name(),
			Type:  target.Type(),
		}

		if ignored.Contains(target.Name(), target.Type()) {
			entry.Resolution = Ignored
		} else if b, ok := analyzer.Resolve(target); ok {
			entry.Resolution = Direct
			if b.Kind == match.BridgeAssociation {
				entry.Resolution = Association
			}

			entry.Source = b.Path()
			entry.bridge = b
		}

		p.Entries = append(p.Entries, entry)
	}

	return p
}

// run plans and applies one mapping call.
func (m *Mapper) run(ctx context.Context, src, dst reflect.Value, ignored *ignoreSet) (err error) {
	tp := typePair(src.Type(), dst.Type())
	start := time.Now()

	ctx, span := m.tracer.Start(ctx, "propmap.Map", trace.WithAttributes(
		attribute.String("propmap.source", typeName(src.Type())),
		attribute.String("propmap.destination", typeName(dst.Type())),
	))
	defer span.End()

	p := m.plan(src.Type(), dst.Type(), ignored)
	counts := make(map[Resolution]int, len(p.Entries))

	defer func() {
		for r, n := range counts {
			span.SetAttributes(attribute.Int("propmap.fields."+strings.ToLower(r.String()), n))
		}

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			m.logger.DebugContext(ctx, "mapping failed", "type_pair", tp, "error", err)
		}

		m.metrics.record(ctx, tp, counts, time.Since(start), err)
	}()

	for _, e := range p.Entries {
		switch e.Resolution {
		case Ignored:
			m.logger.DebugContext(ctx, "field ignored", "type_pair", tp, "field", e.Field)
		case Unmapped:
			m.logger.DebugContext(ctx, "field unmapped", "type_pair", tp, "field", e.Field, "type", e.Type.String())
		default:
			applied, err := m.apply(e, src, dst)
			if err != nil {
				return err
			}

			if !applied {
				e.Resolution = Skipped
				m.logger.DebugContext(ctx, "nil association skipped", "type_pair", tp, "field", e.Field, "source", e.Source)

				break
			}

			m.logger.DebugContext(ctx, "field copied", "type_pair", tp, "field", e.Field,
				"source", e.Source, "resolution", e.Resolution.String())
		}

		counts[e.Resolution]++
	}

	return nil
}

// apply copies one bridged value. It returns false when a nil association was
// skipped.
func (m *Mapper) apply(e Entry, src, dst reflect.Value) (bool, error) {
	b := e.bridge
	from := src

	if b.Kind == match.BridgeAssociation {
		assoc, err := b.Association.Get(src)
		if err != nil {
			return false, &AccessorError{Field: e.Field, Path: b.Association.Name(), Op: OpGet, Err: err}
		}

		if assoc.Kind() == reflect.Pointer {
			if assoc.IsNil() {
				if m.nilPolicy == SkipNilAssociations {
					return false, nil
				}

				return false, &AccessorError{Field: e.Field, Path: b.Association.Name(), Op: OpGet, Err: ErrNilAssociation}
			}

			assoc = assoc.Elem()
		}

		from = assoc
	}

	value, err := b.Source.Get(from)
	if err != nil {
		return false, &AccessorError{Field: e.Field, Path: e.Source, Op: OpGet, Err: err}
	}

	value = detach(b.Destination, value)

	if err := b.Destination.Set(dst, value); err != nil {
		return false, &AccessorError{Field: e.Field, Path: e.Field, Op: OpSet, Err: err}
	}

	return true, nil
}

// detach copies the target of a pointer written into an embedded pointer
// field. Promoted fields written later go through that pointer, so it must not
// be shared with the source.
func detach(dst property.Property, value reflect.Value) reflect.Value {
	sf, ok := dst.(property.StructField)
	if !ok || !sf.StructField().Anonymous || value.Kind() != reflect.Pointer || value.IsNil() {
		return value
	}

	clone := reflect.New(value.Type().Elem())
	clone.Elem().Set(value.Elem())

	return clone
}

// values validates the call arguments and unwraps them to struct values.
// The destination value is addressable.
func values(src, dst any) (reflect.Value, reflect.Value, error) {
	dv := reflect.ValueOf(dst)
	if dv.Kind() != reflect.Pointer || dv.IsNil() || dv.Elem().Kind() != reflect.Struct {
		return reflect.Value{}, reflect.Value{}, fmt.Errorf("%w: got %T", ErrInvalidDestination, dst)
	}

	sv := reflect.ValueOf(src)
	if sv.Kind() == reflect.Pointer {
		if sv.IsNil() {
			return reflect.Value{}, reflect.Value{}, fmt.Errorf("%w: got nil %T", ErrInvalidSource, src)
		}

		sv = sv.Elem()
	}

	if sv.Kind() != reflect.Struct {
		return reflect.Value{}, reflect.Value{}, fmt.Errorf("%w: got %T", ErrInvalidSource, src)
	}

	return sv, dv.Elem(), nil
}

// structType dereferences one pointer level and returns nil for non-structs.
func structType(t reflect.Type) reflect.Type {
	if t == nil {
		return nil
	}

	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t.Kind() != reflect.Struct {
		return nil
	}

	return t
}
