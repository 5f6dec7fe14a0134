package match

// Strategy attempts to resolve one destination field.
// It returns false when it declines.
type Strategy[F Field[T], T comparable] func(dst F) (Bridge[F, T], bool)

// Direct matches the first source field whose name and type equal the
// destination's. Uniqueness is not enforced: enumeration order breaks ties.
func Direct[F Field[T], T comparable](sources []F) Strategy[F, T] {
	return func(dst F) (Bridge[F, T], bool) {
		for _, src := range sources {
			if Same[F, T](src, dst) {
				return Bridge[F, T]{
					Kind:        BridgeDirect,
					Source:      src,
					Destination: dst,
				}, true
			}
		}

		return Bridge[F, T]{}, false
	}
}

// Association flattens one level of the source graph.
//
// The destination name must split into exactly two words, e.g. "CustomerName".
// The first source field named "Customer" is the association, whatever its
// type; members must then expose a field "Name" with the destination's type.
// Any other shape declines.
func Association[F Field[T], T comparable](sources []F, members Members[F, T]) Strategy[F, T] {
	return func(dst F) (Bridge[F, T], bool) {
		words := SplitPascalCase(dst.Name())
		if len(words) != 2 {
			return Bridge[F, T]{}, false
		}

		head, tail := words[0], words[1]

		for _, assoc := range sources {
			if assoc.Name() != head {
				continue
			}

			for _, nested := range members(assoc.Type()) {
				if nested.Name() == tail && nested.Type() == dst.Type() {
					return Bridge[F, T]{
						Kind:        BridgeAssociation,
						Association: assoc,
						Source:      nested,
						Destination: dst,
					}, true
				}
			}

			break
		}

		return Bridge[F, T]{}, false
	}
}
