package models

import "fmt"

type UserRole string

const (
	// UserRoleUser is the legacy default role; the candidate
	// authentication path treats it as equivalent to CANDIDATE.
	UserRoleUser      UserRole = "USER"
	UserRoleCandidate UserRole = "CANDIDATE"
	UserRoleAdmin     UserRole = "ADMIN"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r UserRole) bool {
	switch r {
	case UserRoleUser, UserRoleCandidate, UserRoleAdmin:
		return true
	}
	return false
}

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

// ParseGender maps a raw string onto the fixed gender set.
func ParseGender(s string) (Gender, error) {
	switch Gender(s) {
	case GenderMale, GenderFemale, GenderOther:
		return Gender(s), nil
	}
	return "", fmt.Errorf("unknown gender value %q", s)
}
