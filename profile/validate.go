package profile

import (
	"fmt"

	"property-mapper/internal/diagnostic"
)

// SupportedVersion is the only profile schema version understood.
const SupportedVersion = "1"

// Validate checks the structure of a profile without resolving any type.
// Field names are checked against real types by the mapper and by
// propmap-lint.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("profile_is_nil", "profile is nil", "", "")
		return res
	}

	if f.Version != SupportedVersion {
		res.AddError("unsupported_version",
			fmt.Sprintf("unsupported profile version %q (want %q)", f.Version, SupportedVersion), "", "")
	}

	seenPairs := map[string]struct{}{}

	for i := range f.Mappings {
		m := &f.Mappings[i]
		tp := m.TypePair()

		if m.Source == "" {
			res.AddError("missing_source", fmt.Sprintf("mapping #%d has no source type", i+1), tp, "")
		}

		if m.Target == "" {
			res.AddError("missing_target", fmt.Sprintf("mapping #%d has no target type", i+1), tp, "")
		}

		if _, ok := seenPairs[tp]; ok {
			res.AddWarning("duplicate_mapping", "type pair is configured more than once; ignore lists are merged", tp, "")
		}

		seenPairs[tp] = struct{}{}

		seenFields := map[string]struct{}{}

		for _, name := range m.Ignore {
			if name == "" {
				res.AddError("empty_ignore", "ignore entry is empty", tp, "")
				continue
			}

			if _, ok := seenFields[name]; ok {
				res.AddWarning("duplicate_ignore", fmt.Sprintf("field %q is ignored more than once", name), tp, name)
			}

			seenFields[name] = struct{}{}
		}
	}

	return res
}
