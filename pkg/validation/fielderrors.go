package validation

import (
	"errors"
	"sort"
	"strings"
)

// FieldErrors aggregates validation failures per field. Every entity check
// runs all its rules and reports the complete map, so a caller fixing a form
// sees every problem at once.
type FieldErrors map[string]string

// Add records a failure for a field. The first message per field wins.
func (e FieldErrors) Add(field, message string) {
	if _, ok := e[field]; !ok {
		e[field] = message
	}
}

// AddErr records err.Error() for a field, ignoring nil errors.
func (e FieldErrors) AddErr(field string, err error) {
	if err != nil {
		e.Add(field, err.Error())
	}
}

// Error joins all messages in field order.
func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(f)
		b.WriteString(": ")
		b.WriteString(e[f])
	}
	return b.String()
}

// OrNil returns the map as an error, or nil when no rule failed.
func (e FieldErrors) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// AsFieldErrors unwraps err into a FieldErrors map when possible.
func AsFieldErrors(err error) (FieldErrors, bool) {
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
