package server

import (
	"fmt"
	"net/http"
)

// ErrItemNotFound indicates a wardrobe item was not found.
type ErrItemNotFound struct {
	ItemID string
}

func (e *ErrItemNotFound) Error() string {
	return fmt.Sprintf("wardrobe item not found: %s", e.ItemID)
}

// ErrProfileNotFound indicates the user has no style profile yet.
type ErrProfileNotFound struct {
	UserID string
}

func (e *ErrProfileNotFound) Error() string {
	return fmt.Sprintf("style profile not found for user: %s", e.UserID)
}

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrStorageUnavailable indicates a persistence-backed endpoint was called
// on a server running without a database.
type ErrStorageUnavailable struct{}

func (e *ErrStorageUnavailable) Error() string {
	return "persistence is not configured on this server"
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrItemNotFound, *ErrProfileNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrStorageUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
