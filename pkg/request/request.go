// Package request parses path, query and body values, reporting malformed
// input as *validation.Error.
package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taiwoajasa245/sabbath-lesson-api/pkg/pagination"
	"github.com/taiwoajasa245/sabbath-lesson-api/pkg/validation"
)

// maxBodyBytes caps request bodies; a lesson with all its sections fits comfortably.
const maxBodyBytes = 1 << 20

// DecodeJSON decodes the request body into dst.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return &validation.Error{Message: "request body is empty"}
		}
		return &validation.Error{Message: fmt.Sprintf("invalid JSON body: %v", err)}
	}
	return nil
}

// PathInt64 parses a positive integer URL parameter.
func PathInt64(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, validation.New(name, fmt.Sprintf("%s must be a positive integer", name))
	}
	return id, nil
}

// QueryInt returns the integer query parameter name, or def when it is absent.
func QueryInt(r *http.Request, name string, def int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, validation.New(name, fmt.Sprintf("%s must be an integer", name))
	}
	return v, nil
}

// OptionalQueryInt returns nil when the parameter is absent.
func OptionalQueryInt(r *http.Request, name string) (*int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, validation.New(name, fmt.Sprintf("%s must be an integer", name))
	}
	return &v, nil
}

func OptionalQueryInt64(r *http.Request, name string) (*int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, validation.New(name, fmt.Sprintf("%s must be an integer", name))
	}
	return &v, nil
}

func OptionalQueryString(r *http.Request, name string) *string {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil
	}
	return &raw
}

// RequiredQuery returns the parameter value or a validation error when it is missing.
func RequiredQuery(r *http.Request, name string) (string, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return "", validation.New(name, fmt.Sprintf("%s is required", name))
	}
	return raw, nil
}

// PageParams reads page (0-based, default 0) and size (default 10).
func PageParams(r *http.Request) (page, size int, err error) {
	page, err = QueryInt(r, "page", 0)
	if err != nil {
		return 0, 0, err
	}
	size, err = QueryInt(r, "size", 10)
	if err != nil {
		return 0, 0, err
	}
	if page < 0 {
		return 0, 0, validation.New("page", "page must not be negative")
	}
	if size <= 0 {
		return 0, 0, validation.New("size", "size must be greater than zero")
	}
	if !pagination.InRange(page, size) {
		return 0, 0, validation.New("page", "page is out of range")
	}
	return page, size, nil
}
