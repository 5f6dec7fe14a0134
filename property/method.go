package property

import (
	"fmt"
	"reflect"
)

const setterPrefix = "Set"

var errorType = reflect.TypeFor[error]()

// methodProperty is a getter X() with an optional setter SetX(v).
// Method indexes refer to the method set of *owner.
type methodProperty struct {
	owner reflect.Type
	name  string
	typ   reflect.Type

	getter    int
	getterErr bool

	setter    int // -1 when read-only
	setterErr bool

	// embeds are the index paths of embedded pointers the getter or setter
	// may be promoted through.
	embeds [][]int
}

func (p *methodProperty) Name() string        { return p.name }
func (p *methodProperty) Type() reflect.Type  { return p.typ }
func (p *methodProperty) Owner() reflect.Type { return p.owner }
func (p *methodProperty) CanWrite() bool      { return p.setter >= 0 }

func (p *methodProperty) String() string {
	return p.owner.String() + "." + p.name + "()"
}

// Get calls the getter. A non-addressable instance is copied first so that
// pointer receivers work without touching the caller's value.
func (p *methodProperty) Get(instance reflect.Value) (reflect.Value, error) {
	v, err := receiver(p.owner, instance)
	if err != nil {
		return reflect.Value{}, err
	}

	var ptr reflect.Value
	if v.CanAddr() {
		ptr = v.Addr()
	} else {
		ptr = reflect.New(p.owner)
		ptr.Elem().Set(v)
	}

	out, err := p.call(ptr.Method(p.getter), nil, nilEmbedded(ptr.Elem(), p.embeds))
	if err != nil {
		return reflect.Value{}, err
	}

	if p.getterErr && !out[1].IsNil() {
		return reflect.Value{}, out[1].Interface().(error)
	}

	return out[0], nil
}

func (p *methodProperty) Set(instance, value reflect.Value) error {
	if p.setter < 0 {
		return ErrReadOnly
	}

	v, err := receiver(p.owner, instance)
	if err != nil {
		return err
	}

	if !v.CanAddr() {
		return ErrNotAddressable
	}

	if err := checkValue(p.typ, value); err != nil {
		return err
	}

	allocEmbedded(v, p.embeds)

	out, err := p.call(v.Addr().Method(p.setter), []reflect.Value{value}, nilEmbedded(v, p.embeds))
	if err != nil {
		return err
	}

	if p.setterErr && !out[0].IsNil() {
		return out[0].Interface().(error)
	}

	return nil
}

// call invokes an accessor method. When an embedded pointer the method may be
// promoted through is nil, a nil dereference is reported as ErrNilEmbedded.
// A method declared on the owner itself still runs normally.
func (p *methodProperty) call(m reflect.Value, args []reflect.Value, nilEmbed string) (out []reflect.Value, err error) {
	if nilEmbed != "" {
		defer func() {
			if r := recover(); r != nil {
				out, err = nil, fmt.Errorf("%w: %s through nil %s", ErrNilEmbedded, p, nilEmbed)
			}
		}()
	}

	return m.Call(args), nil
}

// nilEmbedded returns the name of the first nil embedded pointer among paths,
// or "".
func nilEmbedded(v reflect.Value, paths [][]int) string {
	for _, path := range paths {
		fv, err := v.FieldByIndexErr(path)
		if err != nil || fv.IsNil() {
			return v.Type().FieldByIndex(path).Type.String()
		}
	}

	return ""
}

// allocEmbedded allocates the nil embedded pointers among paths, outermost
// first. Unexported pointers are left nil.
func allocEmbedded(v reflect.Value, paths [][]int) {
	for _, path := range paths {
		fv, err := v.FieldByIndexErr(path)
		if err != nil {
			continue
		}

		if fv.IsNil() && fv.CanSet() {
			fv.Set(reflect.New(fv.Type().Elem()))
		}
	}
}

// embeddedPaths returns the index paths of the embedded pointer fields of t
// whose method set contains name, shallowest first.
func embeddedPaths(t reflect.Type, name string) [][]int {
	var paths [][]int

	for _, f := range reflect.VisibleFields(t) {
		if !f.Anonymous || f.Type.Kind() != reflect.Pointer {
			continue
		}

		if _, ok := f.Type.MethodByName(name); ok {
			paths = append(paths, f.Index)
		}
	}

	return paths
}

// parseGetter recognizes:
//   - func() T
//   - func() (T, error)
//
// A lone error result is not a value: Close() error and Err() error are
// never properties.
func parseGetter(m reflect.Method) (typ reflect.Type, hasErr, ok bool) {
	ft := m.Type
	if ft.NumIn() != 1 || ft.IsVariadic() {
		return nil, false, false
	}

	switch ft.NumOut() {
	case 1:
		if ft.Out(0) == errorType {
			return nil, false, false
		}

		return ft.Out(0), false, true
	case 2:
		if ft.Out(1) != errorType {
			return nil, false, false
		}

		return ft.Out(0), true, true
	default:
		return nil, false, false
	}
}

// parseSetter recognizes:
//   - func(T)
//   - func(T) error
func parseSetter(m reflect.Method, typ reflect.Type) (hasErr, ok bool) {
	ft := m.Type
	if ft.NumIn() != 2 || ft.IsVariadic() || ft.In(1) != typ {
		return false, false
	}

	switch ft.NumOut() {
	case 0:
		return false, true
	case 1:
		return ft.Out(0) == errorType, ft.Out(0) == errorType
	default:
		return false, false
	}
}

// methodProperties returns getter based properties of t in method order,
// skipping names already taken by fields.
func methodProperties(t reflect.Type, taken map[string]bool) []Property {
	pt := reflect.PointerTo(t)

	var props []Property

	for i := range pt.NumMethod() {
		m := pt.Method(i)
		if taken[m.Name] {
			continue
		}

		typ, getterErr, ok := parseGetter(m)
		if !ok {
			continue
		}

		prop := &methodProperty{
			owner:     t,
			name:      m.Name,
			typ:       typ,
			getter:    i,
			getterErr: getterErr,
			setter:    -1,
			embeds:    embeddedPaths(t, m.Name),
		}

		if sm, found := pt.MethodByName(setterPrefix + m.Name); found {
			if setterErr, ok := parseSetter(sm, typ); ok {
				prop.setter = sm.Index
				prop.setterErr = setterErr
				prop.embeds = append(prop.embeds, embeddedPaths(t, sm.Name)...)
			}
		}

		props = append(props, prop)
	}

	return props
}
