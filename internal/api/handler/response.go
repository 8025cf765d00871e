package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

var errInvalidPayload = echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")

// Envelope is the JSON wrapper shared by every resource endpoint.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Error   string `json:"error,omitempty"`
} // @name Envelope

func ok(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

func withMessage(msg string, data any) Envelope {
	return Envelope{Success: true, Message: msg, Data: data}
}

func list[T any](items []T) Envelope {
	if items == nil {
		items = []T{}
	}
	n := len(items)
	return Envelope{Success: true, Count: &n, Data: items}
}

// OpError tags an unexpected failure with the message the client sees when
// the cause is not a known domain error.
type OpError struct {
	Message string
	Err     error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func failed(msg string, err error) error {
	return &OpError{Message: msg, Err: err}
}
