package service

import "errors"

var (
	ErrFieldsRequired    = errors.New("username and password are required")
	ErrUserNotRegistered = errors.New("user not registered")
	ErrWrongPassword     = errors.New("wrong password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
)

// Client-facing messages of the auth, profile and examples flows.
const (
	msgRegisterFieldsRequired = "username and password required fields."
	msgUsernameExists         = "This username already exists."
	msgRegisterFailed         = "Failed to register user."
	msgLoginFieldsRequired    = "Username and password are required fields."
	msgUserNotRegistered      = "User not registered."
	msgPasswordInvalid        = "Password invalid."
	msgLoginFailed            = "Failed to log in."
	msgInvalidToken           = "Invalid or expired token."
	msgUserNotFound           = "User Not Found."
	msgProfileFailed          = "Failed to retrieve user."
	msgExamplesFailed         = "Failed to retrieve examples."
)
