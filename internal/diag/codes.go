package diag

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Code is a compact numeric identifier for a diagnostic kind in the
// built-in compiler message table. Codes are grouped by pipeline phase:
// 1000s lexical, 2000s syntax, 3000s semantic, 4000s project.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexBadNumber          Code = 1003
	LexTokenTooLong       Code = 1004
	LexBadEscape          Code = 1005

	// Syntax
	SynUnexpectedToken   Code = 2001
	SynUnclosedDelimiter Code = 2002
	SynExpectSemicolon   Code = 2003
	SynExpectIdentifier  Code = 2004
	SynExpectExpression  Code = 2005
	SynDuplicateModifier Code = 2006
	SynEmptyImportGroup  Code = 2007

	// Semantic
	SemaUnresolvedSymbol Code = 3001
	SemaDuplicateSymbol  Code = 3002
	SemaTypeMismatch     Code = 3003
	SemaArityMismatch    Code = 3004
	SemaUnusedSymbol     Code = 3005
	SemaShadowSymbol     Code = 3006
	SemaDeprecatedUsage  Code = 3007
	SemaUnreachableCode  Code = 3008

	// Project
	ProjMissingModule  Code = 4001
	ProjImportCycle    Code = 4002
	ProjDuplicateFile  Code = 4003
	ProjNoteEntrypoint Code = 4004
)

type codeInfo struct {
	category string
	severity Severity
	format   string
}

var codeTable = map[Code]codeInfo{
	LexUnknownChar:        {"Lexical", SevError, "unknown character {0}"},
	LexUnterminatedString: {"Lexical", SevError, "unterminated string literal"},
	LexBadNumber:          {"Lexical", SevError, "malformed number literal {0}"},
	LexTokenTooLong:       {"Lexical", SevError, "token exceeds {0} bytes"},
	LexBadEscape:          {"Lexical", SevError, "invalid escape sequence {0}"},

	SynUnexpectedToken:   {"Syntax", SevError, "unexpected token {0}, expected {1}"},
	SynUnclosedDelimiter: {"Syntax", SevError, "unclosed {0}"},
	SynExpectSemicolon:   {"Syntax", SevError, "expected ';'"},
	SynExpectIdentifier:  {"Syntax", SevError, "expected identifier, found {0}"},
	SynExpectExpression:  {"Syntax", SevError, "expected expression"},
	SynDuplicateModifier: {"Syntax", SevWarning, "modifier {0} repeated"},
	SynEmptyImportGroup:  {"Syntax", SevWarning, "empty import group"},

	SemaUnresolvedSymbol: {"Semantic", SevError, "cannot resolve symbol {0}"},
	SemaDuplicateSymbol:  {"Semantic", SevError, "symbol {0} is already declared"},
	SemaTypeMismatch:     {"Semantic", SevError, "cannot use {0} where {1} is expected"},
	SemaArityMismatch:    {"Semantic", SevError, "call takes {0} arguments, {1} supplied"},
	SemaUnusedSymbol:     {"Semantic", SevWarning, "symbol {0} is declared but never used"},
	SemaShadowSymbol:     {"Semantic", SevWarning, "declaration of {0} shadows an outer declaration"},
	SemaDeprecatedUsage:  {"Semantic", SevWarning, "{0} is deprecated"},
	SemaUnreachableCode:  {"Semantic", SevHidden, "unreachable code"},

	ProjMissingModule:  {"Project", SevError, "module {0} not found"},
	ProjImportCycle:    {"Project", SevError, "import cycle through {0}"},
	ProjDuplicateFile:  {"Project", SevWarning, "file {0} listed twice"},
	ProjNoteEntrypoint: {"Project", SevInfo, "entrypoint resolved to {0}"},
}

var unknownCodeInfo = codeInfo{"General", SevError, "unknown diagnostic"}

func lookupCode(c Code) codeInfo {
	if info, ok := codeTable[c]; ok {
		return info
	}
	return unknownCodeInfo
}

// ID returns the stable string identifier for the code, derived from its
// phase range.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("PRJ%04d", ic)
	}
	return "GEN0000"
}

// Known reports whether the code exists in the message table.
func (c Code) Known() bool {
	_, ok := codeTable[c]
	return ok
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), lookupCode(c).format)
}

// Lookup returns the table entry for the code as a Descriptor, so the
// descriptor factory and tooling can treat built-in codes like any other
// diagnostic kind.
func Lookup(c Code) (*Descriptor, bool) {
	info, ok := codeTable[c]
	if !ok {
		return nil, false
	}
	return &Descriptor{
		ID:              c.ID(),
		Category:        info.category,
		DefaultSeverity: info.severity,
		MessageFormat:   info.format,
	}, true
}

// CodeFromID parses a string identifier like "LEX1001" back into its Code.
func CodeFromID(id string) (Code, bool) {
	id = strings.ToUpper(strings.TrimSpace(id))
	if len(id) != 7 {
		return UnknownCode, false
	}
	num, err := strconv.Atoi(id[3:])
	if err != nil || num < 0 || num > int(^uint16(0)) {
		return UnknownCode, false
	}
	c := Code(num)
	if c.ID() != id || !c.Known() {
		return UnknownCode, false
	}
	return c, true
}

// Codes returns every code in the message table in ascending order.
func Codes() []Code {
	out := make([]Code, 0, len(codeTable))
	for c := range codeTable {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
