// Package profile loads mapping profiles: files that declare, per pair of
// source and target types, which target fields are never copied.
//
// # Schema
//
//	version: "1"
//	mappings:
//	  - source: store.Order
//	    target: warehouse.OrderView
//	    ignore:
//	      - Currency
//	      - PickerNote
//	  - source: store.Customer
//	    target: warehouse.CustomerView
//	    ignore: Status   # a single name is accepted too
//
// Type names are either short ("store.Order", package name and type name) or
// fully qualified ("property-mapper/store.Order"). A short name also matches
// any import path ending in "/store".
//
// # Formats
//
// The format is inferred from the file extension: .yaml/.yml, .toml or .json.
// YAML and JSON accept a single name for ignore; TOML profiles must spell
// ignore lists as arrays.
package profile
