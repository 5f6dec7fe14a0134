package property

import (
	"fmt"
	"reflect"
)

// fieldProperty is an exported struct field, possibly promoted.
type fieldProperty struct {
	owner reflect.Type
	field reflect.StructField
}

func (p *fieldProperty) Name() string        { return p.field.Name }
func (p *fieldProperty) Type() reflect.Type  { return p.field.Type }
func (p *fieldProperty) Owner() reflect.Type { return p.owner }
func (p *fieldProperty) CanWrite() bool      { return true }

func (p *fieldProperty) StructField() reflect.StructField { return p.field }

func (p *fieldProperty) String() string {
	return p.owner.String() + "." + p.field.Name
}

func (p *fieldProperty) Get(instance reflect.Value) (reflect.Value, error) {
	v, err := receiver(p.owner, instance)
	if err != nil {
		return reflect.Value{}, err
	}

	fv, err := v.FieldByIndexErr(p.field.Index)
	if err != nil {
		return reflect.Value{}, fmt.Errorf("%w: %w", ErrNilEmbedded, err)
	}

	return fv, nil
}

// Set allocates nil embedded pointers on the way to a promoted field.
func (p *fieldProperty) Set(instance, value reflect.Value) error {
	v, err := receiver(p.owner, instance)
	if err != nil {
		return err
	}

	if !v.CanAddr() {
		return ErrNotAddressable
	}

	if err := checkValue(p.field.Type, value); err != nil {
		return err
	}

	for i, x := range p.field.Index {
		if i > 0 && v.Kind() == reflect.Pointer {
			if v.IsNil() {
				if !v.CanSet() {
					return fmt.Errorf("%w: cannot allocate unexported %s", ErrNilEmbedded, v.Type())
				}

				v.Set(reflect.New(v.Type().Elem()))
			}

			v = v.Elem()
		}

		v = v.Field(x)
	}

	if !v.CanSet() {
		return fmt.Errorf("%w: %s", ErrNotAddressable, p)
	}

	v.Set(value)

	return nil
}

// structFields returns the exported fields visible on t, promoted ones included.
func structFields(t reflect.Type) []Property {
	var props []Property

	for _, f := range reflect.VisibleFields(t) {
		if !f.IsExported() {
			continue
		}

		props = append(props, &fieldProperty{owner: t, field: f})
	}

	return props
}
