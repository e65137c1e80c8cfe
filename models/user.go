package models

// User represents a registered account owned by the credential store.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the opaque unique identifier of the user (UUIDv7 string).
	UserID string `json:"id"`

	// Username is the unique login name: 2..100 alphanumeric characters.
	Username string `json:"username"`

	// Password carries the plaintext password between the transport layer
	// and the store. It is never persisted and never serialised.
	Password string `json:"-"`

	// PasswordHash is the one-way hash derived from Password before the record
	// becomes durable. It is never exposed via JSON.
	PasswordHash string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Profile converts the user into its public projection without credentials.
func (u User) Profile() Profile {
	return Profile{
		ID:       u.UserID,
		Username: u.Username,
	}
}

// Profile is the public projection of a [User] returned by the profile
// endpoint. It has no password field at all.
type Profile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Credentials is the request body of the register and login endpoints.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Empty reports whether either of the required fields is missing.
func (c Credentials) Empty() bool {
	return c.Username == "" || c.Password == ""
}
