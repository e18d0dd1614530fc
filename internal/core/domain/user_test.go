package domain

import "testing"

func TestParseRole_Valid(t *testing.T) {
	for _, r := range Roles() {
		parsed, err := ParseRole(string(r))
		if err != nil {
			t.Fatalf("ParseRole(%q) returned error: %v", r, err)
		}
		if parsed != r {
			t.Fatalf("ParseRole(%q) = %q", r, parsed)
		}
	}
}

func TestParseRole_Invalid(t *testing.T) {
	for _, s := range []string{"", "doctor", "NURSE", "CLINICAL  SPECIALIST"} {
		if _, err := ParseRole(s); err != ErrInvalidRole {
			t.Fatalf("ParseRole(%q): expected ErrInvalidRole, got %v", s, err)
		}
	}
}

func TestDefaultRole(t *testing.T) {
	if DefaultRole != RoleDoctor {
		t.Fatalf("unexpected default role: %s", DefaultRole)
	}
	if !DefaultRole.Valid() {
		t.Fatalf("default role not in enumeration")
	}
}
