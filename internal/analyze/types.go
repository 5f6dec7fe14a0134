package analyze

import (
	"go/types"
	"sort"
	"strings"

	"property-mapper/internal/common"
	"property-mapper/profile"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "property-mapper/store"
	Name    string // e.g., "Order"
}

// String returns the fully qualified name.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// Short returns "pkg.Name", the form used in profiles and messages.
func (t TypeID) Short() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return common.PkgAlias(t.PkgPath) + "." + t.Name
}

// FieldKind tells where a static property comes from.
type FieldKind int

const (
	FieldKindStruct FieldKind = iota // struct field, promoted ones included
	FieldKindMethod                  // getter, optionally paired with a setter
)

// Field is a static property. It satisfies match.Field[string].
type Field struct {
	name     string
	typ      types.Type
	kind     FieldKind
	writable bool
}

// Name returns the property name.
func (f *Field) Name() string { return f.name }

// Type returns the qualified type string, e.g. "property-mapper/store.OrderStatus".
func (f *Field) Type() string { return typeString(f.typ) }

// GoType returns the go/types type of the property.
func (f *Field) GoType() types.Type { return f.typ }

// Kind reports whether the property is a struct field or a method pair.
func (f *Field) Kind() FieldKind { return f.kind }

// CanWrite reports whether the property has write access.
func (f *Field) CanWrite() bool { return f.writable }

// TypeInfo describes an exported struct type.
type TypeInfo struct {
	ID     TypeID
	GoType *types.Named
	// Readable lists every property readable from outside the type.
	Readable []*Field
	// Writable lists the readable properties that can also be written.
	Writable []*Field
}

// WritableNames returns the names of the writable properties in order.
func (t *TypeInfo) WritableNames() []string {
	names := make([]string, len(t.Writable))
	for i, f := range t.Writable {
		names[i] = f.Name()
	}

	return names
}

// TypeGraph holds the struct types of the loaded packages.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all exported structs.
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo

	// members caches property lists of struct types reached through fields,
	// keyed by qualified type string.
	members map[string]*TypeInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
		members:  make(map[string]*TypeInfo),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// Resolve finds the struct a profile type identifier refers to. Identifiers
// may be a bare name, "pkg.Name" or a full import path. Ambiguous bare names
// resolve to the first match in import path order.
func (g *TypeGraph) Resolve(id string) *TypeInfo {
	for _, tid := range g.IDs() {
		if profile.MatchesType(id, tid.PkgPath, tid.Name) {
			return g.Types[tid]
		}
	}

	return nil
}

// IDs returns every type identifier sorted by import path and name.
func (g *TypeGraph) IDs() []TypeID {
	ids := make([]TypeID, 0, len(g.Types))
	for id := range g.Types {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool {
		if ids[i].PkgPath != ids[j].PkgPath {
			return ids[i].PkgPath < ids[j].PkgPath
		}

		return ids[i].Name < ids[j].Name
	})

	return ids
}

// ShortNames returns the "pkg.Name" form of every type, sorted.
func (g *TypeGraph) ShortNames() []string {
	ids := g.IDs()

	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = id.Short()
	}

	return names
}

// Members returns the readable properties of the struct behind typ, a
// qualified type string, dereferencing one pointer level. It is the
// match.Members function of the static catalog.
func (g *TypeGraph) Members(typ string) []*Field {
	info, ok := g.members[strings.TrimPrefix(typ, "*")]
	if !ok {
		return nil
	}

	return info.Readable
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Types []TypeID // Exported structs defined in this package
}

// typeString renders a type with full import paths.
func typeString(t types.Type) string {
	return types.TypeString(t, nil)
}
