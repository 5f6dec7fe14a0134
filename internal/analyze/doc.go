// Package analyze builds a static property catalog of Go packages.
//
// It loads packages with golang.org/x/tools/go/packages and enumerates the
// properties of every exported struct the same way the runtime catalog in
// package property does: visible exported fields first, then getter/setter
// method pairs. Field types are identified by their qualified type string,
// so the match pipeline runs unchanged over the result. propmap-lint uses it
// to check mapping profiles without running any code.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: readable and writable properties of a struct
//   - Field: a static property
package analyze
