package mapper

import (
	"fmt"
	"reflect"
	"strings"

	"property-mapper/internal/diagnostic"
	"property-mapper/internal/match"
	"property-mapper/property"
)

type (
	bridge    = match.Bridge[property.Property, reflect.Type]
	ignoreSet = match.IgnoreSet[reflect.Type]
)

//go:generate go tool stringer -type=Resolution -output=resolution_string.go

// Resolution tells how a destination field is handled.
type Resolution int

const (
	// Unmapped fields have no matching source and keep their value.
	Unmapped Resolution = iota
	// Direct fields are read from a source field of the same name and type.
	Direct
	// Association fields are read through one source association.
	Association
	// Ignored fields were excluded by configuration.
	Ignored
	// Skipped association fields met a nil association under SkipNilAssociations.
	Skipped
)

// Entry is the plan for one destination field.
type Entry struct {
	// Field is the destination property name.
	Field string
	// Type is the destination property type.
	Type       reflect.Type
	Resolution Resolution
	// Source is the dotted source path, set for Direct and Association.
	Source string

	bridge bridge
}

// Plan lists how every writable destination field of a type pair is handled,
// in destination catalog order.
type Plan struct {
	Source      reflect.Type
	Destination reflect.Type
	Entries     []Entry
}

// TypePair returns "source->destination".
func (p *Plan) TypePair() string {
	return typePair(p.Source, p.Destination)
}

// Lookup returns the entry of a destination field.
func (p *Plan) Lookup(field string) (Entry, bool) {
	for _, e := range p.Entries {
		if e.Field == field {
			return e, true
		}
	}

	return Entry{}, false
}

// Count returns the number of entries with the given resolution.
func (p *Plan) Count(r Resolution) int {
	n := 0

	for _, e := range p.Entries {
		if e.Resolution == r {
			n++
		}
	}

	return n
}

// Diagnostics explains the plan: one info per mapped or ignored field and a
// warning per unmapped field.
func (p *Plan) Diagnostics() *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	tp := p.TypePair()

	for _, e := range p.Entries {
		switch e.Resolution {
		case Direct:
			res.AddInfo("direct_match", fmt.Sprintf("copied from %s", e.Source), tp, e.Field)
		case Association:
			res.AddInfo("association_match", fmt.Sprintf("flattened from %s", e.Source), tp, e.Field)
		case Ignored:
			res.AddInfo("ignored_field", "excluded by configuration", tp, e.Field)
		default:
			res.AddWarning("unmapped_field",
				fmt.Sprintf("no source field matches %s %s", e.Field, e.Type), tp, e.Field)
		}
	}

	return res
}

// String renders the plan one field per line:
//
//	FirstName <- FirstName (Direct)
func (p *Plan) String() string {
	var b strings.Builder

	b.WriteString(p.TypePair())
	b.WriteByte('\n')

	width := 0
	for _, e := range p.Entries {
		width = max(width, len(e.Field))
	}

	for _, e := range p.Entries {
		switch e.Resolution {
		case Direct, Association:
			fmt.Fprintf(&b, "  %-*s <- %s (%s)\n", width, e.Field, e.Source, e.Resolution)
		default:
			fmt.Fprintf(&b, "  %-*s    (%s)\n", width, e.Field, e.Resolution)
		}
	}

	return b.String()
}

func typePair(src, dst reflect.Type) string {
	return typeName(src) + "->" + typeName(dst)
}

// typeName renders a type as "pkg.Type", dereferencing pointers.
func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return t.String()
}
