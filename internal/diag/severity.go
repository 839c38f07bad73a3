package diag

// Severity defines the importance of a diagnostic.
//
// The negative values are internal pipeline states, not user-facing levels:
// SevUnknown marks a diagnostic whose severity is still being resolved and
// SevVoid marks an intentionally inert placeholder. Both exist so that
// inspection tooling can recognize them without triggering message
// formatting (see Diagnostic.DebugString).
type Severity int8

const (
	// SevHidden is for diagnostics that are not surfaced to users.
	SevHidden Severity = iota
	// SevInfo is for informational diagnostics.
	SevInfo
	// SevWarning is for warning diagnostics.
	SevWarning
	SevError
)

const (
	// SevUnknown means the severity has not been resolved yet.
	SevUnknown Severity = -1
	// SevVoid marks a suppressed, inert diagnostic.
	SevVoid Severity = -2
)

func (s Severity) String() string {
	switch s {
	case SevHidden:
		return "HIDDEN"
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	case SevUnknown:
		return "UNKNOWN"
	case SevVoid:
		return "VOID"
	}
	return "INVALID"
}

// Resolved reports whether s is one of the public severity levels.
func (s Severity) Resolved() bool {
	return s >= SevHidden
}
