package user

import "errors"

var (
	ErrBadCredentials = errors.New("Bad credentials")
	ErrRoleNotFound   = errors.New("role is not found")
)
