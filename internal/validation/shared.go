package validation

import (
	"fmt"
	"strings"
)

// Error is a field-level validation error. Each key is the offending request
// field, each value a human-readable reason.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, msg))
	}
	return strings.Join(msgs, "; ")
}
