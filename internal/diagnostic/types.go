package diagnostic

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Severity ranks a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Diagnostic is a single coded message.
type Diagnostic struct {
	Severity Severity
	// Code identifies the kind of diagnostic, e.g. "unmapped_field".
	Code    string
	Message string
	// TypePair is "source->target" when the diagnostic concerns a mapping.
	TypePair string
	// FieldPath names the destination field, if any.
	FieldPath string
	// Suggestions are close alternatives for a misspelled name.
	Suggestions []string
}

// Diagnostics holds diagnostics grouped by severity.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Add appends d to the group of its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	switch diag.Severity {
	case SeverityError:
		d.Errors = append(d.Errors, diag)
	case SeverityWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, typePair, fieldPath string) {
	d.Add(Diagnostic{Severity: SeverityError, Code: code, Message: message, TypePair: typePair, FieldPath: fieldPath})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, typePair, fieldPath string) {
	d.Add(Diagnostic{Severity: SeverityWarning, Code: code, Message: message, TypePair: typePair, FieldPath: fieldPath})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, typePair, fieldPath string) {
	d.Add(Diagnostic{Severity: SeverityInfo, Code: code, Message: message, TypePair: typePair, FieldPath: fieldPath})
}

// Merge appends every diagnostic of other.
func (d *Diagnostics) Merge(other *Diagnostics) {
	if other == nil {
		return
	}

	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// HasErrors reports whether any error was added.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return !d.HasErrors()
}

// All returns errors, then warnings, then infos.
func (d *Diagnostics) All() []Diagnostic {
	res := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	res = append(res, d.Errors...)
	res = append(res, d.Warnings...)

	return append(res, d.Infos...)
}

// Codes returns the codes of all diagnostics in All order.
func (d *Diagnostics) Codes() []string {
	all := d.All()

	res := make([]string, len(all))
	for i, diag := range all {
		res[i] = diag.Code
	}

	return res
}

// Error returns the error diagnostics joined in one error, or nil.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	parts := make([]string, len(d.Errors))
	for i, e := range d.Errors {
		parts[i] = e.String()
	}

	return errors.New(strings.Join(parts, "; "))
}

// WriteTo prints one line per diagnostic, at or above minimum severity.
func (d *Diagnostics) WriteTo(w io.Writer, minimum Severity) error {
	for _, diag := range d.All() {
		if diag.Severity < minimum {
			continue
		}

		if _, err := fmt.Fprintf(w, "%s: %s\n", diag.Severity, diag); err != nil {
			return err
		}
	}

	return nil
}

// String formats the diagnostic as "[pair] field: [code] message (did you mean ...?)".
func (d Diagnostic) String() string {
	var prefix []string
	if d.TypePair != "" {
		prefix = append(prefix, "["+d.TypePair+"]")
	}

	if d.FieldPath != "" {
		prefix = append(prefix, d.FieldPath)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
