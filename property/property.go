package property

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrWrongInstance  = errors.New("instance is not of the declaring type")
	ErrNilInstance    = errors.New("instance is a nil pointer")
	ErrNotAddressable = errors.New("instance is not addressable")
	ErrReadOnly       = errors.New("property is read-only")
	ErrTypeMismatch   = errors.New("value type does not match property type")
	ErrNilEmbedded    = errors.New("property is promoted through a nil embedded pointer")
)

// Property is a named, typed value exposed by a struct type.
type Property interface {
	// Name returns the property name, e.g. "LastName".
	Name() string
	// Type returns the property value type.
	Type() reflect.Type
	// Owner returns the struct type the property was enumerated from.
	Owner() reflect.Type
	// CanWrite reports whether Set is supported.
	CanWrite() bool
	// Get reads the property from an Owner value or a non-nil pointer to one.
	Get(instance reflect.Value) (reflect.Value, error)
	// Set writes value into an addressable Owner value or a non-nil pointer to one.
	Set(instance, value reflect.Value) error
}

// receiver unwraps instance into a value of owner type.
func receiver(owner reflect.Type, instance reflect.Value) (reflect.Value, error) {
	if !instance.IsValid() {
		return reflect.Value{}, fmt.Errorf("%w: got invalid value, want %s", ErrWrongInstance, owner)
	}

	if instance.Kind() == reflect.Pointer && instance.Type().Elem() == owner {
		if instance.IsNil() {
			return reflect.Value{}, ErrNilInstance
		}

		instance = instance.Elem()
	}

	if instance.Type() != owner {
		return reflect.Value{}, fmt.Errorf("%w: got %s, want %s", ErrWrongInstance, instance.Type(), owner)
	}

	return instance, nil
}

// checkValue verifies value can be stored in a property of type typ.
func checkValue(typ reflect.Type, value reflect.Value) error {
	if !value.IsValid() {
		return fmt.Errorf("%w: got invalid value, want %s", ErrTypeMismatch, typ)
	}

	if value.Type() != typ {
		return fmt.Errorf("%w: got %s, want %s", ErrTypeMismatch, value.Type(), typ)
	}

	return nil
}

// StructField is implemented by properties backed by a struct field.
type StructField interface {
	Property
	// StructField returns the field as seen from Owner, Index included.
	StructField() reflect.StructField
}
