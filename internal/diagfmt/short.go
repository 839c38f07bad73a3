package diagfmt

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/language"

	"vesper/internal/diag"
	"vesper/internal/source"
)

type shortEntry struct {
	Severity string
	ID       string
	Path     string
	Line     uint32
	Column   uint32
	Message  string
	located  bool
}

// Short renders diagnostics into a stable, single-line-per-entry
// representation suitable for terse CLI output and golden files. Entries
// are sorted deterministically and messages are resolved under the
// invariant culture so the output does not vary with the environment.
func Short(diags []diag.Diagnostic, fs *source.FileSet, includeRelated bool) string {
	rendered := make([]shortEntry, 0, len(diags))
	for _, d := range diags {
		rendered = appendShort(rendered, d, fs, includeRelated)
	}

	sort.SliceStable(rendered, func(i, j int) bool {
		di, dj := rendered[i], rendered[j]
		if di.Path != dj.Path {
			return di.Path < dj.Path
		}
		if di.Line != dj.Line {
			return di.Line < dj.Line
		}
		if di.Column != dj.Column {
			return di.Column < dj.Column
		}
		if di.Severity != dj.Severity {
			return di.Severity < dj.Severity
		}
		if di.ID != dj.ID {
			return di.ID < dj.ID
		}
		return di.Message < dj.Message
	})

	var b strings.Builder
	for i, e := range rendered {
		if e.located {
			fmt.Fprintf(&b, "%s %s %s:%d:%d %s", e.Severity, e.ID, e.Path, e.Line, e.Column, e.Message)
		} else {
			fmt.Fprintf(&b, "%s %s %s", e.Severity, e.ID, e.Message)
		}
		if i < len(rendered)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func appendShort(out []shortEntry, d diag.Diagnostic, fs *source.FileSet, includeRelated bool) []shortEntry {
	entry := shortEntry{
		Severity: strings.ToLower(d.Severity.String()),
		ID:       d.ID,
		Message:  sanitizeMessage(d.Message(language.AmericanEnglish)),
	}
	if path, lc, ok := resolveShort(fs, d.Location); ok {
		entry.Path, entry.Line, entry.Column, entry.located = path, lc.Line, lc.Col, true
	}
	out = append(out, entry)

	if includeRelated {
		for _, loc := range d.Additional {
			path, lc, ok := resolveShort(fs, loc)
			if !ok {
				continue
			}
			out = append(out, shortEntry{
				Severity: "related",
				ID:       d.ID,
				Path:     path,
				Line:     lc.Line,
				Column:   lc.Col,
				located:  true,
			})
		}
	}
	return out
}

func resolveShort(fs *source.FileSet, loc source.Location) (string, source.LineCol, bool) {
	if fs == nil || loc.IsNone() {
		return "", source.LineCol{}, false
	}
	f := fs.Get(loc.File)
	if f == nil {
		return "", source.LineCol{}, false
	}
	start, _, ok := fs.Resolve(loc)
	if !ok {
		return "", source.LineCol{}, false
	}
	return normalizeShortPath(f.FormatPath("relative", fs.BaseDir())), start, true
}

func normalizeShortPath(path string) string {
	p := filepath.ToSlash(path)
	for strings.HasPrefix(p, "./") {
		p = strings.TrimPrefix(p, "./")
	}
	return p
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
