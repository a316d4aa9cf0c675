// Package response frames aquarium payloads as JSON HTTP responses.
package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"aquarium/internal/domain"
)

const contentTypeJSON = "application/json"

// ErrBuild is reported when a payload cannot be framed.
var ErrBuild = errors.New("couldn't build response")

// Response is a framed reply ready for any transport.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// BuildSuccess serializes payload as a cacheable 200 response.
func BuildSuccess(payload any, cacheSeconds int) (Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return Response{}, fmt.Errorf("%w: %v", ErrBuild, err)
	}
	header := http.Header{}
	header.Set("Content-Type", contentTypeJSON)
	header.Set("Cache-Control", "max-age="+strconv.Itoa(cacheSeconds)+", public")
	return Response{Status: http.StatusOK, Header: header, Body: body}, nil
}

// BuildError returns a 500 whose body is exactly {"message":"..."}.
func BuildError(message string) (Response, error) {
	body, err := json.Marshal(domain.ErrorResponse{Message: message})
	if err != nil {
		return Response{}, fmt.Errorf("%w: %v", ErrBuild, err)
	}
	header := http.Header{}
	header.Set("Content-Type", contentTypeJSON)
	return Response{Status: http.StatusInternalServerError, Header: header, Body: body}, nil
}

// Write copies the response onto w.
func (r Response) Write(w http.ResponseWriter) error {
	for key, values := range r.Header {
		for _, v := range values {
			w.Header().Add(key, v)
		}
	}
	status := r.Status
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	_, err := w.Write(r.Body)
	return err
}
