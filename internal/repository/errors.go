package repository

import "errors"

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrOrganizationNotFound  = errors.New("organization not found")
	ErrMemberNotFound        = errors.New("member not found")
	ErrAlreadyMember         = errors.New("user is already a member of this organization")
	ErrDuplicateUser         = errors.New("user already exists")
	ErrDuplicateOrganization = errors.New("organization already exists")
)
