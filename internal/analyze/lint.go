package analyze

import (
	"fmt"
	"strings"

	"property-mapper/internal/diagnostic"
	"property-mapper/internal/match"
	"property-mapper/mapper"
	"property-mapper/profile"
)

const maxSuggestions = 3

// Entry is the static plan for one target field.
type Entry struct {
	Field      string
	Type       string
	Resolution mapper.Resolution
	// Source is the dotted source path, set for Direct and Association.
	Source string
}

// Plan is the static counterpart of mapper.Plan for one profile mapping.
type Plan struct {
	Mapping *profile.Mapping
	Source  TypeID
	Target  TypeID
	Entries []Entry
}

// String renders the plan in the same layout as mapper.Plan.
func (p *Plan) String() string {
	var b strings.Builder

	b.WriteString(p.Source.Short() + "->" + p.Target.Short())
	b.WriteByte('\n')

	width := 0
	for _, e := range p.Entries {
		width = max(width, len(e.Field))
	}

	for _, e := range p.Entries {
		switch e.Resolution {
		case mapper.Direct, mapper.Association:
			fmt.Fprintf(&b, "  %-*s <- %s (%s)\n", width, e.Field, e.Source, e.Resolution)
		default:
			fmt.Fprintf(&b, "  %-*s    (%s)\n", width, e.Field, e.Resolution)
		}
	}

	return b.String()
}

// Report is the outcome of linting a profile.
type Report struct {
	Plans       []*Plan
	Diagnostics *diagnostic.Diagnostics
}

// Lint checks a profile against the loaded packages: both types of each
// mapping must resolve to a struct and every ignore entry must name a
// writable target property. Mappings that resolve get a static plan.
func Lint(graph *TypeGraph, f *profile.File) *Report {
	report := &Report{Diagnostics: profile.Validate(f)}
	if f == nil {
		return report
	}

	for i := range f.Mappings {
		m := &f.Mappings[i]
		if m.Source == "" || m.Target == "" {
			continue
		}

		src := resolveType(graph, m.Source, m, report.Diagnostics)
		dst := resolveType(graph, m.Target, m, report.Diagnostics)

		if src == nil || dst == nil {
			continue
		}

		ignored := lintIgnores(dst, m, report.Diagnostics)
		plan := staticPlan(graph, src, dst, ignored)
		plan.Mapping = m

		for _, e := range plan.Entries {
			if e.Resolution == mapper.Unmapped {
				report.Diagnostics.AddWarning("unmapped_field",
					fmt.Sprintf("no source field matches %s %s", e.Field, e.Type), m.TypePair(), e.Field)
			}
		}

		report.Plans = append(report.Plans, plan)
	}

	return report
}

func resolveType(graph *TypeGraph, id string, m *profile.Mapping, diags *diagnostic.Diagnostics) *TypeInfo {
	if info := graph.Resolve(id); info != nil {
		return info
	}

	diags.Add(diagnostic.Diagnostic{
		Severity:    diagnostic.SeverityError,
		Code:        "unknown_type",
		Message:     fmt.Sprintf("type %q is not an exported struct of the loaded packages", id),
		TypePair:    m.TypePair(),
		Suggestions: match.Suggest(id, graph.ShortNames(), maxSuggestions),
	})

	return nil
}

func lintIgnores(dst *TypeInfo, m *profile.Mapping, diags *diagnostic.Diagnostics) *match.IgnoreSet[string] {
	ignored := &match.IgnoreSet[string]{}

	for _, name := range m.Ignore {
		if name == "" {
			continue
		}

		var found *Field

		for _, f := range dst.Writable {
			if f.Name() == name {
				found = f
				break
			}
		}

		if found == nil {
			diags.Add(diagnostic.Diagnostic{
				Severity:    diagnostic.SeverityError,
				Code:        "unknown_field",
				Message:     fmt.Sprintf("ignore %q: no writable field of %s", name, dst.ID.Short()),
				TypePair:    m.TypePair(),
				FieldPath:   name,
				Suggestions: match.Suggest(name, dst.WritableNames(), maxSuggestions),
			})

			continue
		}

		ignored.Add(found.Name(), found.Type())
	}

	return ignored
}

func staticPlan(graph *TypeGraph, src, dst *TypeInfo, ignored *match.IgnoreSet[string]) *Plan {
	analyzer := match.SourceAnalyzer[*Field, string](src.Readable, graph.Members)

	p := &Plan{
		Source:  src.ID,
		Target:  dst.ID,
		Entries: make([]Entry, 0, len(dst.Writable)),
	}

	for _, target := range dst.Writable {
		entry := Entry{Field: target.Name(), Type: target.Type()}

		if ignored.Contains(target.Name(), target.Type()) {
			entry.Resolution = mapper.Ignored
		} else if b, ok := analyzer.Resolve(target); ok {
			entry.Resolution = mapper.Direct
			if b.Kind == match.BridgeAssociation {
				entry.Resolution = mapper.Association
			}

			entry.Source = b.Path()
		}

		p.Entries = append(p.Entries, entry)
	}

	return p
}
