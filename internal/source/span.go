package source

import (
	"fmt"
)

// Span is a half-open byte range within a single file: [Start, End).
type Span struct {
	Start uint32 // inclusive
	End   uint32 // exclusive
}

func NewSpan(start, end uint32) Span {
	return Span{Start: start, End: end}
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}

// Cover widens s to include other.
func (s Span) Cover(other Span) Span {
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// Contains reports whether other lies fully within s. Containment is
// inclusive: a span contains itself and any empty span positioned inside it.
func (s Span) Contains(other Span) bool {
	return s.Start <= other.Start && other.End <= s.End
}
