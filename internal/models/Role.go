package models

import "strings"

// Role is the closed set of account types. Anything else coming in from a
// request body collapses to RoleMember.
type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
	RoleDriver Role = "driver"
	RoleOwner  Role = "owner"
)

// ParseRole maps an untrusted input string to a known role, defaulting to member.
func ParseRole(input string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(input))) {
	case RoleAdmin:
		return RoleAdmin
	case RoleDriver:
		return RoleDriver
	case RoleOwner:
		return RoleOwner
	default:
		return RoleMember
	}
}
