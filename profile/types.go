package profile

import (
	"slices"

	"property-mapper/internal/common"
)

// File is the root of a mapping profile.
type File struct {
	// Version of the profile schema.
	Version string `json:"version,omitempty" toml:"version,omitempty" yaml:"version,omitempty"`

	// Mappings lists the configured type pairs.
	Mappings []Mapping `json:"mappings" toml:"mappings" yaml:"mappings"`
}

// Mapping configures one source/target type pair.
type Mapping struct {
	// Source type identifier (e.g., "store.Order" or full path).
	Source string `json:"source" toml:"source" yaml:"source"`

	// Target type identifier (e.g., "warehouse.Order" or full path).
	Target string `json:"target" toml:"target" yaml:"target"`

	// Ignore lists target fields that are never copied.
	Ignore StringOrArray `json:"ignore,omitempty" toml:"ignore,omitempty" yaml:"ignore,omitempty"`
}

// TypePair returns "source->target", the label used in diagnostics.
func (m *Mapping) TypePair() string {
	return m.Source + "->" + m.Target
}

// StringOrArray is a list of strings that YAML may also spell as one scalar.
type StringOrArray []string

// First returns the first element or empty string if empty.
func (s StringOrArray) First() string {
	if v, ok := common.First(s); ok {
		return v
	}

	return ""
}

// IsEmpty returns true if the array is empty.
func (s StringOrArray) IsEmpty() bool {
	return common.IsEmpty(s)
}

// Contains returns true if the array contains the given string.
func (s StringOrArray) Contains(str string) bool {
	return slices.Contains(s, str)
}

// Find returns every mapping configured for the given type pair, in file
// order. Each side is given as an import path and a type name.
func (f *File) Find(srcPkg, srcName, dstPkg, dstName string) []*Mapping {
	if f == nil {
		return nil
	}

	var found []*Mapping

	for i := range f.Mappings {
		m := &f.Mappings[i]
		if MatchesType(m.Source, srcPkg, srcName) && MatchesType(m.Target, dstPkg, dstName) {
			found = append(found, m)
		}
	}

	return found
}
