package mapper

import (
	"context"
	"reflect"
)

// defaultMapper serves the package level functions.
var defaultMapper = mustNew()

func mustNew(opts ...Option) *Mapper {
	m, err := New(opts...)
	if err != nil {
		panic(err)
	}

	return m
}

// Map copies every matching field of src into dst.
func Map[S, D any](src S, dst *D) error {
	return MapContext[S, D](context.Background(), nil, src, dst, nil)
}

// MapWith copies src into dst after configure has declared ignored fields.
func MapWith[S, D any](src S, dst *D, configure func(c *Config[S, D])) error {
	return MapContext(context.Background(), nil, src, dst, configure)
}

// MapContext copies src into dst using m, or the default Mapper when m is nil.
// configure may be nil. The profile of m, if any, is applied after configure.
func MapContext[S, D any](ctx context.Context, m *Mapper, src S, dst *D, configure func(c *Config[S, D])) error {
	if m == nil {
		m = defaultMapper
	}

	srcV, dstV, err := values(src, dst)
	if err != nil {
		return err
	}

	cfg := newConfig[S, D](m.catalog)
	cfg.sel.src = srcV.Type()

	if configure != nil {
		configure(cfg)
	}

	m.applyProfile(cfg.sel)

	if err := cfg.sel.err(); err != nil {
		return err
	}

	return m.run(ctx, srcV, dstV, &cfg.sel.ignored)
}

// Explain returns the plan MapContext would follow for S and D without
// copying anything. m may be nil.
func Explain[S, D any](m *Mapper, configure func(c *Config[S, D])) (*Plan, error) {
	if m == nil {
		m = defaultMapper
	}

	src, dst := structType(reflect.TypeFor[S]()), reflect.TypeFor[D]()
	if src == nil {
		return nil, ErrInvalidSource
	}

	if dst.Kind() != reflect.Struct {
		return nil, ErrInvalidDestination
	}

	cfg := newConfig[S, D](m.catalog)
	cfg.sel.src = src

	if configure != nil {
		configure(cfg)
	}

	m.applyProfile(cfg.sel)

	if err := cfg.sel.err(); err != nil {
		return nil, err
	}

	return m.plan(src, dst, &cfg.sel.ignored), nil
}
