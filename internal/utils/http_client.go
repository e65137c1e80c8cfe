package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client preconfigured
// to talk JSON to a single API base URL. It is the client of the end-to-end
// tests and of operational tooling.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8080/api/v1", 5*time.Second)
//	resp, err := client.R().SetResult(&models.TokenResponse{}).
//	    SetBody(models.Credentials{Username: "alice", Password: "password123"}).
//	    Post("/auth/login")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent client for baseURL. A zero timeout
// leaves requests unbounded.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetTimeout(timeout)

	return &HTTPClient{Client: client}
}

// WithToken returns a copy of the client that sends the bearer token on every
// request.
func (c *HTTPClient) WithToken(token string) *HTTPClient {
	client := resty.New().
		SetBaseURL(c.BaseURL).
		SetTimeout(c.GetClient().Timeout).
		SetAuthToken(token)
	client.Header = c.Header.Clone()

	return &HTTPClient{Client: client}
}
