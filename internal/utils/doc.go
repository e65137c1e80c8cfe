// Package utils provides general-purpose helpers shared across the API
// server: JSON response writing, token issuance and verification, UUID
// generation and a preconfigured HTTP client.
package utils
