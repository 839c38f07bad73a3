package source

import (
	"fmt"
)

// Location pins a byte span to the file it belongs to. It is a small
// read-only descriptor: many diagnostics may share the same Location value.
type Location struct {
	File FileID
	Span Span
}

// NoLocation is the "nowhere" sentinel. Its file identity (NoFile) compares
// unequal to every real file, so containment queries against any real tree
// never match it. The zero Location is NoLocation.
var NoLocation = Location{}

func NewLocation(file FileID, span Span) Location {
	return Location{File: file, Span: span}
}

// IsNone reports whether l is the no-location sentinel.
func (l Location) IsNone() bool {
	return l.File == NoFile
}

func (l Location) String() string {
	if l.IsNone() {
		return "<no location>"
	}
	return fmt.Sprintf("%d:%s", l.File, l.Span)
}
