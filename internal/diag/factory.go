package diag

import (
	"vesper/internal/source"
)

// New builds a diagnostic from a descriptor. The severity, ID and category
// come from the descriptor; args are substituted into its message template.
// Passing args that do not satisfy the template's placeholders fails with
// the underlying *FormatError. The zero Location means "no location" and is
// stored as the NoLocation sentinel, never as an absent value.
func New(desc *Descriptor, loc source.Location, args ...any) (Diagnostic, error) {
	return NewWithRelated(desc, loc, nil, args...)
}

// NewWithRelated is New with additional related locations. The order of
// related is caller-significant and preserved verbatim.
func NewWithRelated(desc *Descriptor, loc source.Location, related []source.Location, args ...any) (Diagnostic, error) {
	if desc == nil {
		return Diagnostic{}, &ArgumentError{Name: "desc"}
	}
	if len(args) == 0 {
		args = nil
	} else if _, err := expand(desc.MessageFormat, args, invariantCulture); err != nil {
		return Diagnostic{}, err
	}

	warningLevel := 0
	if desc.DefaultSeverity == SevWarning {
		warningLevel = 1
	}
	return Diagnostic{
		ID:            desc.ID,
		Category:      desc.Category,
		Severity:      desc.DefaultSeverity,
		WarningLevel:  warningLevel,
		Location:      loc,
		Additional:    related,
		MessageFormat: desc.MessageFormat,
		Args:          args,
	}, nil
}

// NewRaw builds a diagnostic from already-resolved parts; message is final
// text, not a template. id, category and message are mandatory and checked
// here because nothing downstream re-checks them.
//
// The warning invariants (SevWarning implies warningLevel in 1..4,
// warnAsError implies SevWarning) are deliberately not enforced: callers of
// this path own them, and the fields echo whatever was supplied.
func NewRaw(id, category, message string, sev Severity, warningLevel int, warnAsError bool, loc source.Location, related ...source.Location) (Diagnostic, error) {
	if id == "" {
		return Diagnostic{}, &ArgumentError{Name: "id"}
	}
	if category == "" {
		return Diagnostic{}, &ArgumentError{Name: "category"}
	}
	if message == "" {
		return Diagnostic{}, &ArgumentError{Name: "message"}
	}
	if len(related) == 0 {
		related = nil
	}
	return Diagnostic{
		ID:             id,
		Category:       category,
		Severity:       sev,
		WarningLevel:   warningLevel,
		WarningAsError: warnAsError,
		Location:       loc,
		Additional:     related,
		MessageFormat:  message,
	}, nil
}

// ForCode is the trusted fast path over the built-in message table. It
// skips template validation (the table is covered by tests instead) and
// otherwise produces a value indistinguishable from the other factories.
func ForCode(code Code, loc source.Location, args ...any) Diagnostic {
	info := lookupCode(code)
	if len(args) == 0 {
		args = nil
	}
	warningLevel := 0
	if info.severity == SevWarning {
		warningLevel = 1
	}
	return Diagnostic{
		ID:            code.ID(),
		Category:      info.category,
		Severity:      info.severity,
		WarningLevel:  warningLevel,
		Location:      loc,
		MessageFormat: info.format,
		Args:          args,
	}
}
