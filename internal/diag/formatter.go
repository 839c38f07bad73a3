package diag

import (
	"fmt"

	"golang.org/x/text/language"

	"vesper/internal/source"
)

// Formatter renders a diagnostic for a locale. Implementations must be
// stable: the same diagnostic and culture always produce the same text.
// internal/diagfmt provides the rich renderers; PlainFormatter backs
// Diagnostic.String.
type Formatter interface {
	Format(d Diagnostic, culture language.Tag) string
}

// PlainFormatter renders "<location>: <SEVERITY> <ID>: <message>", dropping
// the location prefix when there is none.
type PlainFormatter struct{}

func (PlainFormatter) Format(d Diagnostic, culture language.Tag) string {
	if d.Location == source.NoLocation {
		return fmt.Sprintf("%s %s: %s", d.Severity, d.ID, d.Message(culture))
	}
	return fmt.Sprintf("%s: %s %s: %s", d.Location, d.Severity, d.ID, d.Message(culture))
}
