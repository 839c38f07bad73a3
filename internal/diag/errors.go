package diag

import (
	"fmt"
)

// ArgumentError reports a missing or empty mandatory factory argument.
// It always surfaces to the factory caller; no Diagnostic is returned
// alongside it.
type ArgumentError struct {
	Name string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("diag: argument %q must not be empty", e.Name)
}

// FormatError reports that a message template could not be expanded with
// the supplied arguments.
type FormatError struct {
	Format string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("diag: cannot format %q: %s", e.Format, e.Reason)
}
