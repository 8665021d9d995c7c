package domain

import (
	"strings"
	"time"
)

const (
	RoleEmployee = "Employee"
	RoleManager  = "Manager"
	RoleAdmin    = "Admin"
)

// DefaultRoles is assigned when a user is created without a usable role list.
var DefaultRoles = []string{RoleEmployee}

// User models an account that can log in and own notes.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Roles        []string  `json:"roles"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NormalizeKey returns the case-folded form used for uniqueness checks on
// usernames and note titles. Only letter case is folded; whitespace is kept
// so the key always matches the stored value.
func NormalizeKey(s string) string {
	return strings.ToLower(s)
}

// UniqueRoles drops repeated role names, keeping first-seen order.
func UniqueRoles(roles []string) []string {
	seen := make(map[string]struct{}, len(roles))
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}

// HasAnyRole reports whether roles contains at least one of want.
func HasAnyRole(roles []string, want ...string) bool {
	for _, r := range roles {
		for _, w := range want {
			if r == w {
				return true
			}
		}
	}
	return false
}
