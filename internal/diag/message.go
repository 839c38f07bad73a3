package diag

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// invariantCulture is the locale used wherever rendered text must be
// deterministic regardless of the process environment (equality, keys,
// factory-time template validation).
var invariantCulture = language.AmericanEnglish

// UICulture returns the locale of the current process for user-facing
// rendering. It consults LC_ALL, LC_MESSAGES and LANG in that order and
// falls back to the invariant culture when none parses (covers C/POSIX).
// The environment is only ever read, never written.
func UICulture() language.Tag {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		raw := os.Getenv(key)
		if raw == "" {
			continue
		}
		raw, _, _ = strings.Cut(raw, ".")
		if tag, err := language.Parse(raw); err == nil {
			return tag
		}
	}
	return invariantCulture
}

// expand substitutes positional placeholders in format with args rendered
// for the given culture. The grammar is the classic one: "{0}", "{1}", ...
// reference arguments, "{{" and "}}" are literal braces. Any malformed
// placeholder or out-of-range index yields a *FormatError.
func expand(format string, args []any, culture language.Tag) (string, error) {
	var b strings.Builder
	b.Grow(len(format))

	printer := message.NewPrinter(culture)

	i := 0
	for i < len(format) {
		c := format[i]
		switch c {
		case '{':
			if i+1 < len(format) && format[i+1] == '{' {
				b.WriteByte('{')
				i += 2
				continue
			}
			j := i + 1
			for j < len(format) && format[j] >= '0' && format[j] <= '9' {
				j++
			}
			if j == i+1 || j == len(format) || format[j] != '}' {
				return "", &FormatError{Format: format, Reason: "malformed placeholder"}
			}
			idx := 0
			for _, d := range format[i+1 : j] {
				idx = idx*10 + int(d-'0')
			}
			if idx >= len(args) {
				return "", &FormatError{
					Format: format,
					Reason: fmt.Sprintf("placeholder {%d} has no matching argument (%d supplied)", idx, len(args)),
				}
			}
			b.WriteString(renderArg(printer, args[idx]))
			i = j + 1
		case '}':
			if i+1 < len(format) && format[i+1] == '}' {
				b.WriteByte('}')
				i += 2
				continue
			}
			return "", &FormatError{Format: format, Reason: "unmatched '}'"}
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String(), nil
}

// renderArg renders a single argument. Integers go through the locale-aware
// printer so digit grouping follows the culture; everything else renders the
// way fmt would.
func renderArg(p *message.Printer, arg any) string {
	switch v := arg.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return p.Sprintf("%d", v)
	default:
		return fmt.Sprint(v)
	}
}
