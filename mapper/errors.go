package mapper

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidDestination = errors.New("destination must be a non-nil pointer to a struct")
	ErrInvalidSource      = errors.New("source must be a struct or a non-nil pointer to a struct")
	ErrNilAssociation     = errors.New("association is a nil pointer")
	ErrUnknownField       = errors.New("no writable destination field")
	ErrInvalidSelector    = errors.New("selector does not resolve to exactly one destination field")
)

// Accessor operations reported by AccessorError.
const (
	OpGet = "get"
	OpSet = "set"
)

// AccessorError reports a failed read or write while applying a bridge.
type AccessorError struct {
	// Field is the destination field being mapped.
	Field string
	// Path is the property that failed, e.g. "Customer" or "Customer.Name".
	Path string
	// Op is OpGet or OpSet.
	Op  string
	Err error
}

func (e *AccessorError) Error() string {
	return fmt.Sprintf("map %s: %s %s: %v", e.Field, e.Op, e.Path, e.Err)
}

func (e *AccessorError) Unwrap() error {
	return e.Err
}

// SelectorError reports an ignore selector that does not name exactly one
// writable destination field.
type SelectorError struct {
	// Selector describes what the caller passed, e.g. `"LastNme"`.
	Selector string
	// Origin is "config" or the profile mapping the selector came from.
	Origin      string
	Suggestions []string
	Err         error
}

func (e *SelectorError) Error() string {
	msg := fmt.Sprintf("ignore %s: %v", e.Selector, e.Err)
	if e.Origin != "" && e.Origin != originConfig {
		msg = e.Origin + ": " + msg
	}

	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}

	return msg
}

func (e *SelectorError) Unwrap() error {
	return e.Err
}

// ConfigError aggregates every invalid selector of one mapping call.
type ConfigError struct {
	// TypePair is "source->destination".
	TypePair string
	Errs     []error
}

func (e *ConfigError) Error() string {
	parts := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		parts[i] = err.Error()
	}

	return fmt.Sprintf("invalid configuration for %s: %s", e.TypePair, strings.Join(parts, "; "))
}

func (e *ConfigError) Unwrap() []error {
	return e.Errs
}
