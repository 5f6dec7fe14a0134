package match

// Field is a named, typed slot that strategies match on.
// T identifies the value type: reflect.Type at runtime, a qualified type
// string in static analysis. Two fields are equivalent when both their name
// and their type are equal, regardless of the type declaring them.
type Field[T comparable] interface {
	Name() string
	Type() T
}

// Members returns the fields reachable on a value of the given type.
// It returns nil for types without fields.
type Members[F Field[T], T comparable] func(T) []F

// Same reports whether two fields share the same name and type.
func Same[F Field[T], T comparable](a, b F) bool {
	return a.Name() == b.Name() && a.Type() == b.Type()
}

//go:generate go tool stringer -type=BridgeKind -trimprefix=Bridge -output=bridgekind_string.go

// BridgeKind tells how a bridge reads its source value.
type BridgeKind int

const (
	// BridgeDirect reads Source from the source object.
	BridgeDirect BridgeKind = iota
	// BridgeAssociation reads Association from the source object, then Source from that value.
	BridgeAssociation
)

// Bridge is a resolved copy plan for one destination field.
// Source always has the same type as Destination.
type Bridge[F Field[T], T comparable] struct {
	Kind BridgeKind
	// Association is set only for BridgeAssociation.
	Association F
	Source      F
	Destination F
}

// Path returns the dotted source path, e.g. "Customer.Name".
func (b Bridge[F, T]) Path() string {
	if b.Kind == BridgeAssociation {
		return b.Association.Name() + "." + b.Source.Name()
	}

	return b.Source.Name()
}
