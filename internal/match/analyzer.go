package match

// Analyzer runs an ordered list of strategies against destination fields.
type Analyzer[F Field[T], T comparable] struct {
	strategies []Strategy[F, T]
}

// NewAnalyzer creates an Analyzer trying the strategies in the given order.
func NewAnalyzer[F Field[T], T comparable](strategies ...Strategy[F, T]) *Analyzer[F, T] {
	return &Analyzer[F, T]{strategies: strategies}
}

// SourceAnalyzer creates the standard pipeline over a set of source fields:
// Direct first, then Association. An exact match therefore always wins over
// a flattening one.
func SourceAnalyzer[F Field[T], T comparable](sources []F, members Members[F, T]) *Analyzer[F, T] {
	return NewAnalyzer(
		Direct[F, T](sources),
		Association[F, T](sources, members),
	)
}

// Resolve returns the bridge of the first strategy that does not decline.
// It returns false when the field stays unmapped, which is not an error.
func (a *Analyzer[F, T]) Resolve(dst F) (Bridge[F, T], bool) {
	for _, strategy := range a.strategies {
		if bridge, ok := strategy(dst); ok {
			return bridge, true
		}
	}

	return Bridge[F, T]{}, false
}
