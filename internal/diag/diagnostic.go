package diag

import (
	"iter"
	"strings"

	"golang.org/x/text/language"

	"vesper/internal/source"
)

// Diagnostic is an immutable description of a single finding. Treat a
// constructed value as read-only: derive changed copies via WithLocation /
// WithWarningAsError instead of assigning to fields. All queries are pure,
// so a Diagnostic may be read from any number of goroutines at once.
//
// The message is stored in one of two shapes that are indistinguishable
// from the outside: a precomputed string (Args nil) or a deferred template
// plus arguments, expanded per locale on demand.
type Diagnostic struct {
	ID             string
	Category       string
	Severity       Severity
	WarningLevel   int // 0 unless Severity is SevWarning, then 1..4
	WarningAsError bool
	Location       source.Location
	Additional     []source.Location // read-only, order significant
	MessageFormat  string
	Args           []any // nil means MessageFormat is the final text
}

// Message returns the fully substituted text for the given locale. It never
// fails: factories validate templates up front, and a template that still
// cannot expand (possible only through manual field assembly) falls back to
// its raw form.
func (d Diagnostic) Message(culture language.Tag) string {
	if d.Args == nil {
		return d.MessageFormat
	}
	msg, err := expand(d.MessageFormat, d.Args, culture)
	if err != nil {
		return d.MessageFormat
	}
	return msg
}

// DefaultMessage renders the message for the current UI locale.
func (d Diagnostic) DefaultMessage() string {
	return d.Message(UICulture())
}

// Locations yields the primary location followed by the additional ones, in
// order. The sequence is finite, restartable and allocation-free; consumers
// may stop early.
func (d Diagnostic) Locations() iter.Seq[source.Location] {
	return func(yield func(source.Location) bool) {
		if !yield(d.Location) {
			return
		}
		for _, loc := range d.Additional {
			if !yield(loc) {
				return
			}
		}
	}
}

// ContainsLocation reports whether any of the diagnostic's locations lies in
// the given file. With a non-nil filter, a location only counts when its
// span is fully contained in the filter span (overlap is not enough). The
// scan short-circuits on the first match.
func (d Diagnostic) ContainsLocation(file source.FileID, filter *source.Span) bool {
	if file == source.NoFile {
		return false
	}
	for loc := range d.Locations() {
		if loc.File != file {
			continue
		}
		if filter != nil && !filter.Contains(loc.Span) {
			continue
		}
		return true
	}
	return false
}

// WithLocation returns a copy of d whose primary location is loc.
func (d Diagnostic) WithLocation(loc source.Location) Diagnostic {
	d.Location = loc
	return d
}

// WithWarningAsError returns a copy of d with the warning-as-error flag set.
// The flag only means something on warnings; setting it on other severities
// is accepted but downstream consumers treat the result as undefined.
func (d Diagnostic) WithWarningAsError(flag bool) Diagnostic {
	d.WarningAsError = flag
	return d
}

// Key is a comparable projection of a Diagnostic: two diagnostics are equal
// exactly when their Keys are equal. Key values therefore work directly as
// map keys for hashing and deduplication.
type Key struct {
	ID             string
	Category       string
	Severity       Severity
	WarningLevel   int
	WarningAsError bool
	Location       source.Location
	Related        string
	Message        string
}

// Key projects d into its comparable form. The message is resolved under
// the invariant culture so keys do not vary with the process environment.
func (d Diagnostic) Key() Key {
	var related string
	if len(d.Additional) > 0 {
		parts := make([]string, len(d.Additional))
		for i, loc := range d.Additional {
			parts[i] = loc.String()
		}
		related = strings.Join(parts, ";")
	}
	return Key{
		ID:             d.ID,
		Category:       d.Category,
		Severity:       d.Severity,
		WarningLevel:   d.WarningLevel,
		WarningAsError: d.WarningAsError,
		Location:       d.Location,
		Related:        related,
		Message:        d.Message(invariantCulture),
	}
}

// Equal reports structural equality: same ID, category, severity, warning
// level, warning-as-error flag, locations (element-wise, in order) and
// resolved message text. It does not depend on which factory built either
// operand.
func (d Diagnostic) Equal(other Diagnostic) bool {
	return d.Key() == other.Key()
}

// String renders the diagnostic for the current UI locale.
func (d Diagnostic) String() string {
	return PlainFormatter{}.Format(d, UICulture())
}

// DebugString is the inspection-safe rendering used by debug tooling. While
// a diagnostic's severity is still Unknown, or after it was voided, message
// formatting must not run (the message provider may be mid-resolution), so
// only the primary location is reported. Resolved diagnostics render the
// same text as String.
func (d Diagnostic) DebugString() string {
	switch d.Severity {
	case SevUnknown:
		return "Unresolved diagnostic at " + d.Location.String()
	case SevVoid:
		return "Void diagnostic at " + d.Location.String()
	}
	return d.String()
}
