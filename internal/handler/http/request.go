package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/MKhiriev/go-rest-boilerplate/internal/apperr"
	"github.com/MKhiriev/go-rest-boilerplate/models"
)

const maxBodyBytes = 1 << 20

const (
	contentTypeJSON = "application/json"
	contentTypeForm = "application/x-www-form-urlencoded"
)

// decodeCredentials reads {username, password} from a JSON or URL-encoded
// form body. A missing body, or a body of any other content type, yields
// empty credentials so that the auth flow reports the missing fields.
func decodeCredentials(w http.ResponseWriter, r *http.Request) (models.Credentials, error) {
	var credentials models.Credentials

	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		mediaType = contentTypeJSON
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	switch mediaType {
	case contentTypeJSON:
		err = json.NewDecoder(r.Body).Decode(&credentials)
		if errors.Is(err, io.EOF) {
			return models.Credentials{}, nil
		}
	case contentTypeForm:
		if err = r.ParseForm(); err == nil {
			credentials.Username = r.PostForm.Get("username")
			credentials.Password = r.PostForm.Get("password")
		}
	}

	if err != nil {
		return models.Credentials{}, apperr.Wrap(apperr.BadRequest, msgInvalidRequestBody, fmt.Errorf("%w: %w", ErrInvalidBody, err))
	}

	return credentials, nil
}
