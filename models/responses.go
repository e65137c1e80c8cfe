package models

// Status is the outcome label carried by every response envelope.
type Status string

const (
	// StatusSuccess marks a successful response.
	StatusSuccess Status = "success"

	// StatusFail marks a client-fault (4xx) error response.
	StatusFail Status = "fail"

	// StatusError marks a server-fault (5xx) error response.
	StatusError Status = "error"
)

// MessageResponse is the base envelope shared by all responses.
type MessageResponse struct {
	Message string `json:"message"`
	Status  Status `json:"status"`
}

// ErrorResponse is the envelope written by the error translation boundary.
// Stack is only populated in development runs.
type ErrorResponse struct {
	Message string `json:"message"`
	Status  Status `json:"status"`
	Stack   string `json:"stack,omitempty"`
}

// DataResponse wraps a payload together with the message envelope.
type DataResponse[T any] struct {
	Message string `json:"message"`
	Status  Status `json:"status"`
	Data    T      `json:"data"`
}

// TokenResponse is returned by the login endpoint.
type TokenResponse struct {
	Message     string `json:"message"`
	Status      Status `json:"status"`
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// VersionResponse describes the running build.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
