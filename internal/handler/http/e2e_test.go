package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-rest-boilerplate/internal/utils"
	"github.com/MKhiriev/go-rest-boilerplate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestE2E_RegisterLoginProfile walks the whole account flow over a real
// listener with the resty-based client.
func TestE2E_RegisterLoginProfile(t *testing.T) {
	router, _ := newTestRouter(t)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	client := utils.NewHTTPClient(server.URL+testPrefix, 5*time.Second)
	credentials := models.Credentials{Username: "alice", Password: "password123"}

	var registered models.MessageResponse
	resp, err := client.R().SetBody(credentials).SetResult(&registered).Post("/auth/register")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode(), resp.String())
	assert.Equal(t, "User Created.", registered.Message)

	var failed models.ErrorResponse
	resp, err = client.R().SetBody(credentials).SetError(&failed).Post("/auth/register")
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode())
	assert.Equal(t, "This username already exists.", failed.Message)

	var token models.TokenResponse
	resp, err = client.R().SetBody(credentials).SetResult(&token).Post("/auth/login")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode(), resp.String())
	require.NotEmpty(t, token.AccessToken)

	var profile models.DataResponse[models.Profile]
	resp, err = client.WithToken(token.AccessToken).R().SetResult(&profile).Get("/users/me")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode(), resp.String())
	assert.Equal(t, "alice", profile.Data.Username)
	assert.NotEmpty(t, profile.Data.ID)

	resp, err = client.R().SetError(&failed).Get("/users/me")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())
	assert.Equal(t, "Authorization header is missing.", failed.Message)
}

func TestE2E_CompressedResponse(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(router, http.MethodGet, testPrefix+"/examples", nil, http.Header{"Accept-Encoding": []string{"gzip"}})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	raw, err := io.ReadAll(zr)
	require.NoError(t, err)

	assert.JSONEq(t, `{"message":"Examples retrieved successfully","status":"success","data":[]}`, string(raw))
}
