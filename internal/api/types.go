package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Health status values
const (
	HealthOK          = "OK"
	HealthUnavailable = "UNAVAILABLE"
)

// Index is the body of GET /
type Index struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Health is the body of GET /health
type Health struct {
	Status string `json:"status"`
}

// Account is the serialized form of an account
type Account struct {
	PhoneNumber *string            `json:"phone_number"`
	Name        string             `json:"name"`
	Email       string             `json:"email"`
	Address     string             `json:"address"`
	DateJoined  openapi_types.Date `json:"date_joined"`
	ID          int64              `json:"id"`
}

// AccountRequest is the body of POST /accounts and PUT /accounts/{account_id}.
// Unknown keys, including a client-sent id, are ignored.
type AccountRequest struct {
	PhoneNumber *string             `json:"phone_number,omitempty"`
	DateJoined  *openapi_types.Date `json:"date_joined,omitempty"`
	Name        string              `json:"name"`
	Email       string              `json:"email"`
	Address     string              `json:"address"`
}

// Error is the body of every error response
type Error struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// NewError builds an Error whose reason phrase matches the status code.
func NewError(status int, message string) Error {
	return Error{
		Status:  status,
		Error:   http.StatusText(status),
		Message: message,
	}
}

// ErrMalformedBody is returned by DecodeAccountRequest when the body is not a JSON object
// with correctly typed fields.
var ErrMalformedBody = errors.New("body of request contained bad or no data")

// DecodeAccountRequest parses a request body into an AccountRequest. The body
// must hold exactly one JSON object. Keys match field names case-insensitively,
// as with encoding/json. Required fields are not checked here.
func DecodeAccountRequest(body io.Reader) (*AccountRequest, error) {
	if body == nil {
		return nil, ErrMalformedBody
	}

	dec := json.NewDecoder(body)

	var req *AccountRequest
	if err := dec.Decode(&req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	if req == nil {
		return nil, ErrMalformedBody
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after JSON object", ErrMalformedBody)
	}

	return req, nil
}
