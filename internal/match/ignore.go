package match

type identity[T comparable] struct {
	name string
	typ  T
}

// IgnoreSet holds destination field identities excluded from copying.
// Membership is by name and type, never by reference, so a field introspected
// later still matches an entry added earlier. The zero value is ready to use.
type IgnoreSet[T comparable] struct {
	ids map[identity[T]]struct{}
}

// Add records a field identity.
func (s *IgnoreSet[T]) Add(name string, typ T) {
	if s.ids == nil {
		s.ids = make(map[identity[T]]struct{})
	}

	s.ids[identity[T]{name: name, typ: typ}] = struct{}{}
}

// Contains reports whether a field with this name and type was added.
func (s *IgnoreSet[T]) Contains(name string, typ T) bool {
	_, ok := s.ids[identity[T]{name: name, typ: typ}]
	return ok
}

// Len returns the number of recorded identities.
func (s *IgnoreSet[T]) Len() int {
	return len(s.ids)
}
