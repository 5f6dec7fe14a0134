package property

import (
	"reflect"
	"sync"
)

// properties is the cached enumeration of one struct type.
type properties struct {
	readable []Property
	writable []Property
}

// typeCache holds enumerations shared by every cached Catalog.
var typeCache sync.Map // key: reflect.Type, val: *properties

// Catalog enumerates properties of struct types.
type Catalog struct {
	uncached bool
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithoutCache makes the catalog enumerate types on every call instead of
// using the process-wide cache.
func WithoutCache() Option {
	return func(c *Catalog) {
		c.uncached = true
	}
}

// NewCatalog creates a Catalog.
func NewCatalog(opts ...Option) *Catalog {
	c := &Catalog{}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Default is the cached catalog used when none is configured.
var Default = NewCatalog()

// Readable returns every property of t that can be read from outside the
// type: exported fields first, in declaration order, then getters in method
// order. A pointer to struct is dereferenced; other kinds yield nil.
// The returned slice is shared and must not be modified.
func (c *Catalog) Readable(t reflect.Type) []Property {
	if p := c.lookup(t); p != nil {
		return p.readable
	}

	return nil
}

// Writable returns the properties of t that support both read and write.
func (c *Catalog) Writable(t reflect.Type) []Property {
	if p := c.lookup(t); p != nil {
		return p.writable
	}

	return nil
}

// Of returns the readable properties of an instance's dynamic type.
func (c *Catalog) Of(instance any) []Property {
	return c.Readable(reflect.TypeOf(instance))
}

// Lookup finds a readable property by name.
func (c *Catalog) Lookup(t reflect.Type, name string) (Property, bool) {
	for _, p := range c.Readable(t) {
		if p.Name() == name {
			return p, true
		}
	}

	return nil, false
}

func (c *Catalog) lookup(t reflect.Type) *properties {
	t = structType(t)
	if t == nil {
		return nil
	}

	if c.uncached {
		return enumerate(t)
	}

	if v, ok := typeCache.Load(t); ok {
		return v.(*properties)
	}

	// Concurrent callers may both enumerate; only one result is kept.
	v, _ := typeCache.LoadOrStore(t, enumerate(t))

	return v.(*properties)
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

func enumerate(t reflect.Type) *properties {
	readable := structFields(t)

	taken := make(map[string]bool, len(readable))
	for _, p := range readable {
		taken[p.Name()] = true
	}

	readable = append(readable, methodProperties(t, taken)...)

	writable := make([]Property, 0, len(readable))
	for _, p := range readable {
		if p.CanWrite() {
			writable = append(writable, p)
		}
	}

	return &properties{readable: readable, writable: writable}
}
