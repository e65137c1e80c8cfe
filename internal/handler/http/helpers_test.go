package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-rest-boilerplate/internal/config"
	"github.com/MKhiriev/go-rest-boilerplate/internal/crypto"
	"github.com/MKhiriev/go-rest-boilerplate/internal/logger"
	"github.com/MKhiriev/go-rest-boilerplate/internal/service"
	"github.com/MKhiriev/go-rest-boilerplate/internal/store"
	"github.com/MKhiriev/go-rest-boilerplate/internal/utils"
	"github.com/MKhiriev/go-rest-boilerplate/internal/validators"
	"github.com/MKhiriev/go-rest-boilerplate/models"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testSignKey = "test-sign-key-0123456789"
	testIssuer  = "go-rest-boilerplate-test"
	testPrefix  = "/api/v1"
)

func testAppConfig(env string) config.App {
	return config.App{Env: env, APIVersion: "1"}
}

func testConfig(env string) config.StructuredConfig {
	return config.StructuredConfig{
		App: testAppConfig(env),
		Auth: config.Auth{
			TokenSignKey:  testSignKey,
			TokenIssuer:   testIssuer,
			TokenDuration: time.Hour,
			SaltRounds:    bcrypt.MinCost,
		},
	}
}

// newTestStorages returns empty in-memory storages with real hashing and
// validation.
func newTestStorages(t *testing.T) (*store.Storages, crypto.PasswordHasher) {
	t.Helper()

	hasher, err := crypto.NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)

	storages := store.NewMemoryStorages(store.Dependencies{
		Hasher:    hasher,
		Validator: validators.NewUserValidator(),
		IDs:       utils.NewUUIDGenerator(),
	}, logger.Nop())

	return storages, hasher
}

// newTestServices wires real services over storages.
func newTestServices(storages *store.Storages, hasher crypto.PasswordHasher, env string) *service.Services {
	buildInfo := models.NewAppBuildInfo("1.2.3", "2026-01-01", "abc123")
	return service.NewServices(storages, hasher, buildInfo, testConfig(env), logger.Nop())
}

// newTestRouter returns the router of a handler over fresh in-memory storages.
func newTestRouter(t *testing.T, opts ...Option) (http.Handler, *store.Storages) {
	t.Helper()

	storages, hasher := newTestStorages(t)
	h := NewHandler(newTestServices(storages, hasher, config.EnvTest), testAppConfig(config.EnvTest), logger.Nop(), opts...)

	return h.Init(), storages
}

// doJSON sends body as JSON (nil sends no body) and returns the recorded
// response.
func doJSON(router http.Handler, method, path string, body any, header http.Header) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = strings.NewReader(string(raw))
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for name, values := range header {
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// doForm sends values URL-encoded.
func doForm(router http.Handler, path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func bearer(token string) http.Header {
	return http.Header{"Authorization": []string{"Bearer " + token}}
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
	return v
}

// registerAndLogin creates a user through the API and returns its token.
func registerAndLogin(t *testing.T, router http.Handler, username, password string) string {
	t.Helper()

	credentials := models.Credentials{Username: username, Password: password}

	rec := doJSON(router, http.MethodPost, testPrefix+"/auth/register", credentials, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(router, http.MethodPost, testPrefix+"/auth/login", credentials, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	return decodeJSON[models.TokenResponse](t, rec).AccessToken
}

// doRaw sends body with the given content type.
func doRaw(router http.Handler, method, path, contentType string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// doFrom sends a bodyless request from the socket address remoteAddr.
func doFrom(router http.Handler, method, path, remoteAddr string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	req.RemoteAddr = remoteAddr
	for name, values := range header {
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
