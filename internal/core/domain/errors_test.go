package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorKinds(t *testing.T) {
	cases := []struct {
		err  error
		kind error
		msg  string
	}{
		{ErrNoUsers, ErrNotFound, "No users found"},
		{ErrUserNotFound, ErrNotFound, "User not found"},
		{ErrDuplicateUsername, ErrDuplicate, "Duplicate username"},
		{ErrUserHasNotes, ErrConflict, "User has assigned notes"},
		{ErrDuplicateTitle, ErrDuplicate, "Duplicate note title"},
		{ErrInvalidCredentials, ErrUnauthorized, "Unauthorized"},
		{ErrInvalidToken, ErrForbidden, "Forbidden"},
	}

	for _, tc := range cases {
		wrapped := fmt.Errorf("op: %w", tc.err)
		if !errors.Is(wrapped, tc.kind) {
			t.Errorf("%q: expected kind %v", tc.msg, tc.kind)
		}
		if !errors.Is(wrapped, tc.err) {
			t.Errorf("%q: expected identity to survive wrapping", tc.msg)
		}
		if tc.err.Error() != tc.msg {
			t.Errorf("expected message %q, got %q", tc.msg, tc.err.Error())
		}
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError(
		FieldError{Field: "username", Message: "username is required"},
		FieldError{Field: "password", Message: "password is required"},
	)

	if !errors.Is(err, ErrValidation) {
		t.Fatal("expected ValidationError to wrap ErrValidation")
	}
	if got := err.Error(); got != "username is required; password is required" {
		t.Errorf("unexpected message: %q", got)
	}

	var ve *ValidationError
	if !errors.As(fmt.Errorf("create: %w", err), &ve) || len(ve.Fields) != 2 {
		t.Fatalf("expected two field errors, got %+v", ve)
	}
}

func TestUniqueRoles(t *testing.T) {
	got := UniqueRoles([]string{RoleManager, RoleEmployee, RoleManager})
	if len(got) != 2 || got[0] != RoleManager || got[1] != RoleEmployee {
		t.Errorf("unexpected roles: %v", got)
	}
}

func TestNormalizeKey(t *testing.T) {
	if NormalizeKey("BoB") != "bob" {
		t.Errorf("expected bob, got %q", NormalizeKey("BoB"))
	}
	if NormalizeKey(" alice ") == NormalizeKey("alice") {
		t.Error("surrounding whitespace must not fold into the same key")
	}
}
