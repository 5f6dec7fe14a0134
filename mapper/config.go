package mapper

import (
	"fmt"
	"reflect"

	"property-mapper/internal/match"
	"property-mapper/property"
)

const (
	originConfig   = "config"
	maxSuggestions = 3
)

// selectors collects ignore declarations against one destination type.
type selectors struct {
	catalog  Catalog
	src, dst reflect.Type
	ignored  ignoreSet
	errs     []error
}

func newSelectors(catalog Catalog, src, dst reflect.Type) *selectors {
	return &selectors{catalog: catalog, src: structType(src), dst: structType(dst)}
}

// ignoreName resolves name against the writable destination properties.
func (s *selectors) ignoreName(name, origin string) {
	var found []property.Property

	for _, p := range s.catalog.Writable(s.dst) {
		if p.Name() == name {
			found = append(found, p)
		}
	}

	switch len(found) {
	case 1:
		s.ignored.Add(found[0].Name(), found[0].Type())
	case 0:
		s.errs = append(s.errs, &SelectorError{
			Selector:    fmt.Sprintf("%q", name),
			Origin:      origin,
			Suggestions: match.Suggest(name, s.writableNames(), maxSuggestions),
			Err:         ErrUnknownField,
		})
	default:
		s.errs = append(s.errs, &SelectorError{
			Selector: fmt.Sprintf("%q", name),
			Origin:   origin,
			Err:      ErrInvalidSelector,
		})
	}
}

// ignorePointer resolves a field pointer returned by a selector called on
// probe, a fresh *dst. It matches writable struct fields by address and type.
func (s *selectors) ignorePointer(probe reflect.Value, selected any, selector string) {
	fail := func(format string, args ...any) {
		s.errs = append(s.errs, &SelectorError{
			Selector: selector,
			Origin:   originConfig,
			Err:      fmt.Errorf("%w: "+format, append([]any{ErrInvalidSelector}, args...)...),
		})
	}

	pv := reflect.ValueOf(selected)
	if pv.Kind() != reflect.Pointer || pv.IsNil() {
		fail("got %T, want a pointer to a field", selected)
		return
	}

	var found []property.Property

	for _, p := range s.catalog.Writable(s.dst) {
		fv, ok := fieldOf(probe, p)
		if !ok {
			continue
		}

		if fv.Addr().Pointer() == pv.Pointer() && fv.Type() == pv.Type().Elem() {
			found = append(found, p)
		}
	}

	if len(found) != 1 {
		fail("matched %d fields of %s", len(found), s.dst)
		return
	}

	s.ignored.Add(found[0].Name(), found[0].Type())
}

// err returns the aggregated selector errors, or nil.
func (s *selectors) err() error {
	if len(s.errs) == 0 {
		return nil
	}

	return &ConfigError{TypePair: typePair(s.src, s.dst), Errs: s.errs}
}

func (s *selectors) writableNames() []string {
	props := s.catalog.Writable(s.dst)

	names := make([]string, len(props))
	for i, p := range props {
		names[i] = p.Name()
	}

	return names
}

// prepareProbe allocates the embedded pointers of a fresh destination value so
// that selectors can take the address of promoted fields.
func (s *selectors) prepareProbe(probe reflect.Value) {
	for _, p := range s.catalog.Writable(s.dst) {
		if _, ok := p.(property.StructField); ok {
			// Writing the zero value allocates nil embedded pointers on the way.
			_ = p.Set(probe, reflect.Zero(p.Type()))
		}
	}
}

// fieldOf returns the addressable storage of a struct field property.
func fieldOf(probe reflect.Value, p property.Property) (reflect.Value, bool) {
	sf, ok := p.(property.StructField)
	if !ok {
		return reflect.Value{}, false
	}

	fv, err := probe.Elem().FieldByIndexErr(sf.StructField().Index)
	if err != nil || !fv.CanAddr() {
		return reflect.Value{}, false
	}

	return fv, true
}

// Config declares which destination fields a mapping call leaves untouched.
// It is bound to the static source and destination types of the call.
type Config[S, D any] struct {
	sel *selectors
}

func newConfig[S, D any](catalog Catalog) *Config[S, D] {
	return &Config[S, D]{sel: newSelectors(catalog, reflect.TypeFor[S](), reflect.TypeFor[D]())}
}

// Ignore excludes destination fields by name. Each name must match exactly
// one writable field of D; otherwise the call fails before copying and the
// error suggests close names.
func (c *Config[S, D]) Ignore(names ...string) {
	for _, name := range names {
		c.sel.ignoreName(name, originConfig)
	}
}

// IgnoreField excludes the field whose address the selector returns:
//
//	c.IgnoreField(func(d *warehouse.Customer) any { return &d.PasswordHash })
//
// The selector runs once on a scratch value. It must return a pointer to a
// writable struct field of D, promoted fields included; getter/setter
// properties can only be ignored by name.
func (c *Config[S, D]) IgnoreField(selector func(d *D) any) {
	desc := fmt.Sprintf("func(*%s) any", reflect.TypeFor[D]())
	if selector == nil || reflect.TypeFor[D]().Kind() != reflect.Struct {
		c.sel.errs = append(c.sel.errs, &SelectorError{Selector: desc, Origin: originConfig, Err: ErrInvalidSelector})
		return
	}

	probe := reflect.New(c.sel.dst)
	c.sel.prepareProbe(probe)

	c.sel.ignorePointer(probe, selector(probe.Interface().(*D)), desc)
}
