package validate

import (
	"errors"
	"testing"

	"github.com/technotes/notes-api/internal/core/domain"
	"github.com/technotes/notes-api/internal/core/ports"
)

func boolPtr(b bool) *bool { return &b }

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *domain.ValidationError, got %T (%v)", err, err)
	}
	out := make(map[string]string, len(ve.Fields))
	for _, f := range ve.Fields {
		out[f.Field] = f.Message
	}
	return out
}

func TestStruct_Valid(t *testing.T) {
	v := New()
	err := v.Struct(ports.UpdateUserInput{
		ID:       "abc",
		Username: "alice",
		Roles:    []string{domain.RoleEmployee},
		Active:   boolPtr(false),
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestStruct_CollectsEveryField(t *testing.T) {
	v := New()
	fields := fieldsOf(t, v.Struct(ports.UpdateUserInput{}))

	for _, name := range []string{"id", "username", "roles", "active"} {
		if _, ok := fields[name]; !ok {
			t.Errorf("expected error for %q, got %v", name, fields)
		}
	}
	if fields["username"] != "username is required" {
		t.Errorf("unexpected username message: %q", fields["username"])
	}
}

func TestStruct_EmptyRoles(t *testing.T) {
	v := New()
	fields := fieldsOf(t, v.Struct(ports.UpdateUserInput{
		ID:       "abc",
		Username: "alice",
		Roles:    []string{},
		Active:   boolPtr(true),
	}))

	if len(fields) != 1 {
		t.Fatalf("expected only roles to fail, got %v", fields)
	}
	if fields["roles"] != "roles must contain at least 1 item(s)" {
		t.Errorf("unexpected message: %q", fields["roles"])
	}
}

func TestStruct_UnknownRole(t *testing.T) {
	v := New()
	fields := fieldsOf(t, v.Struct(ports.CreateUserInput{
		Username: "alice",
		Password: "pw",
		Roles:    []string{"Janitor"},
	}))

	if _, ok := fields["roles[0]"]; !ok {
		t.Errorf("expected roles[0] error, got %v", fields)
	}
}

func TestStruct_CreateWithoutRolesIsValid(t *testing.T) {
	v := New()
	if err := v.Struct(ports.CreateUserInput{Username: "alice", Password: "pw"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}
