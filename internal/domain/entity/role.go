// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role is the name of a permission bundle, e.g. ROLE_USER.
type Role string

const (
	// RoleUser is granted to every registered account.
	RoleUser Role = "ROLE_USER"
	// RoleAdmin grants access to other accounts' data.
	RoleAdmin Role = "ROLE_ADMIN"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// RoleRecord is a persisted role with its surrogate key.
type RoleRecord struct {
	ID   int64
	Name Role
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, dropping empty names.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		if s == "" {
			continue
		}
		result = append(result, Role(s))
	}

	return result
}
