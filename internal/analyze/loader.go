package analyze

import (
	"errors"
	"fmt"
	"go/types"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedTypes |
	packages.NeedImports |
	packages.NeedDeps

const setterPrefix = "Set"

var errorType = types.Universe.Lookup("error").Type()

// Loader loads Go packages and builds a type graph.
type Loader struct {
	// Dir is the directory patterns are resolved in. Empty means the
	// current directory.
	Dir string

	graph *TypeGraph
}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{graph: NewTypeGraph()}
}

// Load loads the packages matching patterns (e.g. "./...",
// "property-mapper/store") and adds their exported structs to the graph.
func (l *Loader) Load(patterns ...string) (*TypeGraph, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  l.Dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("load packages: %w", err)
	}

	var errs []error

	packages.Visit(pkgs, nil, func(pkg *packages.Package) {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	})

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	for _, pkg := range pkgs {
		l.processPackage(pkg)
	}

	return l.graph, nil
}

// Graph returns the current type graph.
func (l *Loader) Graph() *TypeGraph {
	return l.graph
}

// processPackage records the exported non-generic structs of pkg.
func (l *Loader) processPackage(pkg *packages.Package) {
	pkgInfo := &PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !typeName.Exported() || typeName.IsAlias() {
			continue
		}

		named, ok := structNamed(typeName.Type())
		if !ok {
			continue
		}

		info := l.structInfo(named)
		l.graph.Types[info.ID] = info
		pkgInfo.Types = append(pkgInfo.Types, info.ID)

		// Association targets are one hop away.
		for _, f := range info.Readable {
			if target, ok := structNamed(deref(f.typ)); ok {
				l.structInfo(target)
			}
		}
	}

	l.graph.Packages[pkg.PkgPath] = pkgInfo
}

// structInfo enumerates the properties of a named struct once.
func (l *Loader) structInfo(named *types.Named) *TypeInfo {
	key := typeString(named)
	if info, ok := l.graph.members[key]; ok {
		return info
	}

	obj := named.Obj()
	info := &TypeInfo{
		ID:     TypeID{PkgPath: obj.Pkg().Path(), Name: obj.Name()},
		GoType: named,
	}

	st := named.Underlying().(*types.Struct)

	taken := make(map[string]bool)

	for _, v := range visibleFields(st) {
		if !v.Exported() {
			continue
		}

		taken[v.Name()] = true
		info.Readable = append(info.Readable, &Field{name: v.Name(), typ: v.Type(), kind: FieldKindStruct, writable: true})
	}

	info.Readable = append(info.Readable, methodFields(named, taken)...)

	for _, f := range info.Readable {
		if f.writable {
			info.Writable = append(info.Writable, f)
		}
	}

	l.graph.members[key] = info

	return info
}

// visibleFields mirrors reflect.VisibleFields: every field of st including
// those promoted through embedding, minus fields shadowed by a shallower one
// or colliding at the same depth. Promoted fields follow their embedding
// field.
func visibleFields(st *types.Struct) []*types.Var {
	type candidate struct {
		v     *types.Var
		depth int
	}

	var all []candidate

	var walk func(st *types.Struct, depth int, path map[*types.Struct]bool)
	walk = func(st *types.Struct, depth int, path map[*types.Struct]bool) {
		for i := range st.NumFields() {
			f := st.Field(i)
			all = append(all, candidate{v: f, depth: depth})

			if !f.Embedded() {
				continue
			}

			est, ok := deref(f.Type()).Underlying().(*types.Struct)
			if !ok || path[est] {
				continue
			}

			path[est] = true
			walk(est, depth+1, path)
			delete(path, est)
		}
	}

	walk(st, 0, map[*types.Struct]bool{st: true})

	shallowest := make(map[string]int)
	count := make(map[string]int)

	for _, c := range all {
		d, seen := shallowest[c.v.Name()]

		switch {
		case !seen || c.depth < d:
			shallowest[c.v.Name()] = c.depth
			count[c.v.Name()] = 1
		case c.depth == d:
			count[c.v.Name()]++
		}
	}

	var res []*types.Var

	for _, c := range all {
		if shallowest[c.v.Name()] == c.depth && count[c.v.Name()] == 1 {
			res = append(res, c.v)
		}
	}

	return res
}

// methodFields returns the getter based properties in the method set of
// *named, skipping names already taken by fields. A getter is X() T or
// X() (T, error) where T is not error; it is writable when SetX(T) or
// SetX(T) error exists.
func methodFields(named *types.Named, taken map[string]bool) []*Field {
	ms := types.NewMethodSet(types.NewPointer(named))

	var res []*Field

	for i := range ms.Len() {
		fn, ok := ms.At(i).Obj().(*types.Func)
		if !ok || !fn.Exported() || taken[fn.Name()] {
			continue
		}

		typ, ok := getterType(fn.Type().(*types.Signature))
		if !ok {
			continue
		}

		f := &Field{name: fn.Name(), typ: typ, kind: FieldKindMethod}

		if sel := ms.Lookup(nil, setterPrefix+fn.Name()); sel != nil {
			f.writable = isSetter(sel.Obj().Type().(*types.Signature), typ)
		}

		res = append(res, f)
	}

	return res
}

func getterType(sig *types.Signature) (types.Type, bool) {
	if sig.Params().Len() != 0 || sig.Variadic() {
		return nil, false
	}

	res := sig.Results()

	switch res.Len() {
	case 1:
		if types.Identical(res.At(0).Type(), errorType) {
			return nil, false
		}

		return res.At(0).Type(), true
	case 2:
		if !types.Identical(res.At(1).Type(), errorType) {
			return nil, false
		}

		return res.At(0).Type(), true
	default:
		return nil, false
	}
}

func isSetter(sig *types.Signature, typ types.Type) bool {
	if sig.Params().Len() != 1 || sig.Variadic() || !types.Identical(sig.Params().At(0).Type(), typ) {
		return false
	}

	switch sig.Results().Len() {
	case 0:
		return true
	case 1:
		return types.Identical(sig.Results().At(0).Type(), errorType)
	default:
		return false
	}
}

// structNamed returns t as a non-generic named struct type.
func structNamed(t types.Type) (*types.Named, bool) {
	named, ok := t.(*types.Named)
	if !ok || named.TypeParams().Len() > 0 || named.Obj().Pkg() == nil {
		return nil, false
	}

	if _, ok := named.Underlying().(*types.Struct); !ok {
		return nil, false
	}

	return named, true
}

// deref strips one pointer level.
func deref(t types.Type) types.Type {
	if p, ok := t.(*types.Pointer); ok {
		return p.Elem()
	}

	return t
}
