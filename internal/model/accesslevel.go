package model

import "errors"

// AccessLevel is a member's permission level within an organization.
type AccessLevel string

const (
	AccessLevelRead  AccessLevel = "READ"
	AccessLevelWrite AccessLevel = "WRITE"
	AccessLevelAdmin AccessLevel = "ADMIN"
)

// ErrInvalidAccessLevel is returned when a string does not name a known access level.
var ErrInvalidAccessLevel = errors.New("invalid access level")

// ParseAccessLevel matches raw against the known access levels. The match is
// case-sensitive: "admin" is not a valid level.
func ParseAccessLevel(raw string) (AccessLevel, error) {
	switch AccessLevel(raw) {
	case AccessLevelRead, AccessLevelWrite, AccessLevelAdmin:
		return AccessLevel(raw), nil
	}
	return "", ErrInvalidAccessLevel
}
