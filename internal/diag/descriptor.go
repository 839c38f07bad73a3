package diag

// Descriptor describes a reusable diagnostic kind: a stable identifier, a
// category, the severity it carries by default, and a message template with
// positional {0} placeholders.
type Descriptor struct {
	ID              string
	Category        string
	DefaultSeverity Severity
	MessageFormat   string
}

// NewDescriptor validates the mandatory fields and returns the descriptor.
func NewDescriptor(id, category string, severity Severity, messageFormat string) (*Descriptor, error) {
	if id == "" {
		return nil, &ArgumentError{Name: "id"}
	}
	if category == "" {
		return nil, &ArgumentError{Name: "category"}
	}
	if messageFormat == "" {
		return nil, &ArgumentError{Name: "messageFormat"}
	}
	return &Descriptor{
		ID:              id,
		Category:        category,
		DefaultSeverity: severity,
		MessageFormat:   messageFormat,
	}, nil
}
