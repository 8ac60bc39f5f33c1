package db

import (
	"testing"
)

// =============================================================================
// StringArray Tests
// =============================================================================

func TestStringArray_Scan(t *testing.T) {
	tests := []struct {
		name     string
		src      interface{}
		expected []string
	}{
		{"nil source", nil, []string{}},
		{"empty bytes", []byte(``), []string{}},
		{"json array", []byte(`["go","sql"]`), []string{"go", "sql"}},
		{"string source", `["chef"]`, []string{"chef"}},
		{"empty json array", []byte(`[]`), []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a StringArray
			if err := a.Scan(tt.src); err != nil {
				t.Fatalf("Scan() error: %v", err)
			}
			if len(a) != len(tt.expected) {
				t.Fatalf("Scan() = %v, want %v", a, tt.expected)
			}
			for i := range a {
				if a[i] != tt.expected[i] {
					t.Errorf("Scan()[%d] = %q, want %q", i, a[i], tt.expected[i])
				}
			}
		})
	}
}

func TestStringArray_Scan_IncompatibleType(t *testing.T) {
	var a StringArray
	if err := a.Scan(42); err == nil {
		t.Error("Scan() should reject a non-string source")
	}
}

func TestStringArray_Value(t *testing.T) {
	v, err := StringArray{"a", "b"}.Value()
	if err != nil {
		t.Fatalf("Value() error: %v", err)
	}
	if v != `["a","b"]` {
		t.Errorf("Value() = %v, want %q", v, `["a","b"]`)
	}

	v, err = StringArray(nil).Value()
	if err != nil {
		t.Fatalf("Value() error: %v", err)
	}
	if v != "[]" {
		t.Errorf("Value() for nil = %v, want %q", v, "[]")
	}
}

func TestStringArray_ContainsAndWithout(t *testing.T) {
	a := StringArray{"one", "two", "two", "three"}

	if !a.Contains("two") {
		t.Error("Contains() should find an existing element")
	}
	if a.Contains("four") {
		t.Error("Contains() should not find a missing element")
	}

	b := a.Without("two")
	if len(b) != 2 || b.Contains("two") {
		t.Errorf("Without() = %v, want all occurrences removed", b)
	}
	if len(a) != 4 {
		t.Error("Without() should not mutate the receiver")
	}
}

// =============================================================================
// Enum Validity Tests
// =============================================================================

func TestValidApplicationStatus(t *testing.T) {
	for _, s := range []string{ApplicationPending, ApplicationReviewed, ApplicationAccepted, ApplicationRejected} {
		if !ValidApplicationStatus(s) {
			t.Errorf("ValidApplicationStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "archived", "PENDING"} {
		if ValidApplicationStatus(s) {
			t.Errorf("ValidApplicationStatus(%q) = true, want false", s)
		}
	}
}

func TestValidEmploymentType(t *testing.T) {
	for _, s := range []string{EmploymentFullTime, EmploymentPartTime, EmploymentContract, EmploymentTemporary} {
		if !ValidEmploymentType(s) {
			t.Errorf("ValidEmploymentType(%q) = false, want true", s)
		}
	}
	if ValidEmploymentType("freelance") {
		t.Error(`ValidEmploymentType("freelance") = true, want false`)
	}
}
