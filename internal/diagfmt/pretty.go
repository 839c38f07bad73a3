package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"

	"vesper/internal/diag"
	"vesper/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
	hiddenColor  = color.New(color.FgHiBlack)
	idColor      = color.New(color.Bold)
)

// Pretty renders diagnostics in a human-readable form. For each diagnostic
// it prints:
//
//	<path>:<line>:<col>: <SEV> <ID>: <message>
//
// followed, when opts.Context is set, by the offending source line with a
// ^~~~ underline over the span, and by related-location notes when
// opts.ShowRelated is set. Diagnostics without a location drop the path
// prefix.
func Pretty(w io.Writer, diags []diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	culture := opts.Culture
	if culture == (language.Tag{}) {
		culture = diag.UICulture()
	}
	for _, d := range diags {
		prettyOne(w, d, fs, opts, culture)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, culture language.Tag) {
	sev := d.Severity.String()
	id := d.ID
	if opts.Color {
		sev = severityColor(d.Severity).Sprint(sev)
		id = idColor.Sprint(id)
	}

	pos, posOK := position(d.Location, fs, opts.PathMode)
	if posOK {
		fmt.Fprintf(w, "%s: %s %s: %s\n", pos, sev, id, d.Message(culture))
	} else {
		fmt.Fprintf(w, "%s %s: %s\n", sev, id, d.Message(culture))
	}

	if opts.Context && posOK {
		writeContext(w, d.Location, fs, opts)
	}

	if opts.ShowRelated {
		for _, loc := range d.Additional {
			if rel, ok := position(loc, fs, opts.PathMode); ok {
				fmt.Fprintf(w, "  related: %s\n", rel)
			}
		}
	}
}

// position renders "<path>:<line>:<col>" for a resolvable location.
func position(loc source.Location, fs *source.FileSet, mode PathMode) (string, bool) {
	if loc.IsNone() || fs == nil {
		return "", false
	}
	f := fs.Get(loc.File)
	if f == nil {
		return "", false
	}
	start, _, ok := fs.Resolve(loc)
	if !ok {
		return "", false
	}
	path := f.FormatPath(mode.mode(), fs.BaseDir())
	return fmt.Sprintf("%s:%d:%d", path, start.Line, start.Col), true
}

// writeContext prints the source line of the location with a caret
// underline. Widths are measured in display cells so wide runes line up.
func writeContext(w io.Writer, loc source.Location, fs *source.FileSet, opts PrettyOpts) {
	f := fs.Get(loc.File)
	start, _, ok := fs.Resolve(loc)
	if f == nil || !ok {
		return
	}
	line := f.GetLine(start.Line)
	if line == "" {
		return
	}

	col := int(start.Col) - 1
	if col > len(line) {
		col = len(line)
	}
	end := col + int(loc.Span.Len())
	if end > len(line) {
		end = len(line)
	}

	pad := runewidth.StringWidth(line[:col])
	width := runewidth.StringWidth(line[col:end])
	if width < 1 {
		width = 1
	}

	underline := "^" + strings.Repeat("~", width-1)
	if opts.Color {
		underline = warningColor.Sprint(underline)
	}
	fmt.Fprintf(w, "  %s\n", line)
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", pad), underline)
}

func severityColor(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	case diag.SevInfo:
		return infoColor
	default:
		return hiddenColor
	}
}
