// Package property enumerates the readable and writable properties of Go
// struct types and reads or writes them on instances.
//
// A property is either an exported struct field, promoted ones included, or a
// getter method X() paired with an optional setter SetX(v). Getters may return
// (T, error) and setters may return error. A getter without setter is
// read-only. Any exported method taking no argument and returning one value
// counts as a getter, String() included, except methods whose only result is
// an error, such as Close() error.
//
// Property lists are cached per type in a process-wide concurrent map. Entries
// are keyed by reflect.Type, built at most once per type and never evicted.
package property
