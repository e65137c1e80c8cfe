package crypto

import "errors"

var (
	ErrPasswordMismatch = errors.New("password does not match hash")
	ErrInvalidCost      = errors.New("invalid bcrypt cost")
)
