package diag

import (
	"testing"

	"golang.org/x/text/language"

	"vesper/internal/source"
)

// testDiagnostic builds the two-location diagnostic used throughout:
// primary in file 1 at [10,20), one related location in file 2 at [5,8).
func testDiagnostic(t *testing.T) Diagnostic {
	t.Helper()
	d, err := NewRaw("VSP0100", "Test", "something happened",
		SevError, 0, false,
		source.NewLocation(1, source.NewSpan(10, 20)),
		source.NewLocation(2, source.NewSpan(5, 8)),
	)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}
	return d
}

func TestContainsLocation(t *testing.T) {
	d := testDiagnostic(t)

	span := func(start, end uint32) *source.Span {
		s := source.NewSpan(start, end)
		return &s
	}

	tests := []struct {
		name     string
		file     source.FileID
		filter   *source.Span
		expected bool
	}{
		{"primary file matches", 1, nil, true},
		{"related file matches", 2, nil, true},
		{"unrelated file", 3, nil, false},
		{"filter not containing primary span", 1, span(0, 5), false},
		{"filter containing primary span", 1, span(0, 30), true},
		{"filter exactly the primary span", 1, span(10, 20), true},
		{"filter overlapping but not containing", 1, span(15, 40), false},
		{"filter containing related span", 2, span(0, 10), true},
		{"none sentinel never matches", source.NoFile, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.ContainsLocation(tt.file, tt.filter); got != tt.expected {
				t.Errorf("ContainsLocation(%d, %v) = %v, want %v", tt.file, tt.filter, got, tt.expected)
			}
		})
	}
}

func TestContainsLocation_NoLocationDiagnostic(t *testing.T) {
	d, err := NewRaw("VSP0101", "Test", "nowhere", SevError, 0, false, source.NoLocation)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}
	if d.ContainsLocation(1, nil) {
		t.Error("diagnostic without locations must not match any file")
	}
}

func TestLocations_OrderAndRestartability(t *testing.T) {
	d := testDiagnostic(t)

	expected := []source.Location{
		source.NewLocation(1, source.NewSpan(10, 20)),
		source.NewLocation(2, source.NewSpan(5, 8)),
	}

	// The sequence must be restartable: consume it twice.
	for round := 0; round < 2; round++ {
		var got []source.Location
		for loc := range d.Locations() {
			got = append(got, loc)
		}
		if len(got) != len(expected) {
			t.Fatalf("round %d: yielded %d locations, want %d", round, len(got), len(expected))
		}
		for i := range expected {
			if got[i] != expected[i] {
				t.Errorf("round %d: location %d = %v, want %v", round, i, got[i], expected[i])
			}
		}
	}
}

func TestLocations_ShortCircuits(t *testing.T) {
	d := testDiagnostic(t)
	count := 0
	for range d.Locations() {
		count++
		break
	}
	if count != 1 {
		t.Errorf("early break consumed %d locations, want 1", count)
	}
}

func TestWithLocation_Purity(t *testing.T) {
	d := testDiagnostic(t)
	original := d.Location
	newLoc := source.NewLocation(7, source.NewSpan(1, 2))

	updated := d.WithLocation(newLoc)

	if updated.Location != newLoc {
		t.Errorf("updated.Location = %v, want %v", updated.Location, newLoc)
	}
	if d.Location != original {
		t.Error("WithLocation mutated the original diagnostic")
	}
	// Every other field must carry over.
	if updated.ID != d.ID || updated.Category != d.Category ||
		updated.Severity != d.Severity || updated.WarningLevel != d.WarningLevel ||
		updated.WarningAsError != d.WarningAsError ||
		len(updated.Additional) != len(d.Additional) {
		t.Error("WithLocation changed unrelated fields")
	}
}

func TestWithWarningAsError(t *testing.T) {
	w, err := NewRaw("VSP0102", "Test", "warn", SevWarning, 1, false, source.NoLocation)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}

	flagged := w.WithWarningAsError(true)
	if !flagged.WarningAsError {
		t.Error("flag not set on the copy")
	}
	if w.WarningAsError {
		t.Error("WithWarningAsError mutated the original")
	}
	if flagged.Severity != SevWarning || flagged.WarningLevel != 1 {
		t.Error("WithWarningAsError changed unrelated fields")
	}

	cleared := flagged.WithWarningAsError(false)
	if cleared.WarningAsError {
		t.Error("flag not cleared")
	}
}

func TestEqual_Properties(t *testing.T) {
	a := testDiagnostic(t)
	b := testDiagnostic(t)
	c := testDiagnostic(t)

	if !a.Equal(a) {
		t.Error("equality must be reflexive")
	}
	if !a.Equal(b) || !b.Equal(a) {
		t.Error("equality must be symmetric")
	}
	if a.Equal(b) && b.Equal(c) && !a.Equal(c) {
		t.Error("equality must be transitive")
	}

	different := a.WithLocation(source.NewLocation(9, source.NewSpan(0, 1)))
	if a.Equal(different) {
		t.Error("diagnostics with different locations compared equal")
	}
}

func TestEqual_SensitiveToEachField(t *testing.T) {
	base := testDiagnostic(t)

	tests := []struct {
		name   string
		mutate func(Diagnostic) Diagnostic
	}{
		{"id", func(d Diagnostic) Diagnostic { d.ID = "VSP0999"; return d }},
		{"category", func(d Diagnostic) Diagnostic { d.Category = "Other"; return d }},
		{"severity", func(d Diagnostic) Diagnostic { d.Severity = SevWarning; return d }},
		{"warning level", func(d Diagnostic) Diagnostic { d.WarningLevel = 2; return d }},
		{"warning as error", func(d Diagnostic) Diagnostic { d.WarningAsError = true; return d }},
		{"message", func(d Diagnostic) Diagnostic { d.MessageFormat = "different"; return d }},
		{"related removed", func(d Diagnostic) Diagnostic {
			d.Additional = nil
			return d
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			changed := tt.mutate(base)
			if base.Equal(changed) {
				t.Error("diagnostics differing in one field compared equal")
			}
			if base.Key() == changed.Key() {
				t.Error("keys collided for unequal diagnostics")
			}
		})
	}
}

func TestEqual_RelatedOrderSignificant(t *testing.T) {
	locA := source.NewLocation(1, source.NewSpan(0, 1))
	locB := source.NewLocation(2, source.NewSpan(0, 1))

	ab, err := NewRaw("VSP0103", "Test", "m", SevError, 0, false, source.NoLocation, locA, locB)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}
	ba, err := NewRaw("VSP0103", "Test", "m", SevError, 0, false, source.NoLocation, locB, locA)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}
	if ab.Equal(ba) {
		t.Error("related-location order must be part of identity")
	}
}

func TestEqual_TemplateAndPrecomputedConverge(t *testing.T) {
	desc := mustDescriptor(t, "VSP0104", "Test", SevError, "cannot resolve {0}")
	templated, err := New(desc, source.NoLocation, "foo")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	precomputed, err := NewRaw("VSP0104", "Test", "cannot resolve foo", SevError, 0, false, source.NoLocation)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}
	if !templated.Equal(precomputed) {
		t.Error("template-backed and precomputed diagnostics with the same resolved text must be equal")
	}
}

func TestKey_UsableAsMapKey(t *testing.T) {
	a := testDiagnostic(t)
	b := testDiagnostic(t)

	seen := map[Key]int{}
	seen[a.Key()]++
	seen[b.Key()]++
	if len(seen) != 1 || seen[a.Key()] != 2 {
		t.Errorf("equal diagnostics must hash to the same key, got %d entries", len(seen))
	}
}

func TestDebugString(t *testing.T) {
	loc := source.NewLocation(1, source.NewSpan(10, 20))

	tests := []struct {
		name     string
		severity Severity
		expected string
	}{
		{"unknown severity", SevUnknown, "Unresolved diagnostic at 1:10-20"},
		{"void severity", SevVoid, "Void diagnostic at 1:10-20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewRaw("VSP0105", "Test", "should not be rendered", tt.severity, 0, false, loc)
			if err != nil {
				t.Fatalf("NewRaw failed: %v", err)
			}
			if got := d.DebugString(); got != tt.expected {
				t.Errorf("DebugString() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDebugString_ResolvedDelegatesToString(t *testing.T) {
	d, err := NewRaw("VSP0106", "Test", "plain message", SevError, 0, false,
		source.NewLocation(1, source.NewSpan(0, 3)))
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}
	if d.DebugString() != d.String() {
		t.Error("resolved diagnostics must debug-render the same as String")
	}
}

func TestString_Shape(t *testing.T) {
	d, err := NewRaw("VSP0107", "Test", "boom", SevError, 0, false,
		source.NewLocation(1, source.NewSpan(4, 8)))
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}
	if got := d.String(); got != "1:4-8: ERROR VSP0107: boom" {
		t.Errorf("String() = %q", got)
	}

	noLoc, err := NewRaw("VSP0108", "Test", "floating", SevInfo, 0, false, source.NoLocation)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}
	if got := noLoc.String(); got != "INFO VSP0108: floating" {
		t.Errorf("String() = %q", got)
	}
}

func TestMessage_CultureStability(t *testing.T) {
	d := ForCode(LexTokenTooLong, source.NoLocation, 1234567)

	en := d.Message(language.AmericanEnglish)
	if en != "token exceeds 1,234,567 bytes" {
		t.Errorf("english message = %q", en)
	}
	de := d.Message(language.German)
	if de != "token exceeds 1.234.567 bytes" {
		t.Errorf("german message = %q", de)
	}
	// Same diagnostic, same culture, same text.
	if d.Message(language.German) != de {
		t.Error("Message must be stable for a fixed culture")
	}
}
