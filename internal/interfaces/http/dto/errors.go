package dto

import "net/http"

// General error codes
const (
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "INTERNAL_ERROR"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "BAD_REQUEST"
)

// Domain error codes surfaced by the application services
const (
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeAlreadyExists    = "ALREADY_EXISTS"
	ErrCodeInvalidInput     = "INVALID_INPUT"
	ErrCodeInvalidParent    = "INVALID_PARENT"
	ErrCodeInvalidProduct   = "INVALID_PRODUCT"
	ErrCodeInvalidStatus    = "INVALID_STATUS"
	ErrCodeInvalidName      = "INVALID_NAME"
	ErrCodeInvalidSlug      = "INVALID_SLUG"
	ErrCodeInvalidCategory  = "INVALID_CATEGORY"
	ErrCodeInvalidImageURL  = "INVALID_IMAGE_URL"
	ErrCodeInvalidInventory = "INVALID_INVENTORY"
	ErrCodeInvalidPrice     = "INVALID_PRICE"
	ErrCodeInvalidUsername  = "INVALID_USERNAME"
	ErrCodeInvalidEmail     = "INVALID_EMAIL"
	ErrCodeInvalidPassword  = "INVALID_PASSWORD"
	ErrCodeInvalidAddress   = "INVALID_ADDRESS"
	ErrCodeInvalidSession   = "INVALID_SESSION"
	ErrCodeHashFailed       = "HASH_FAILED"
	ErrCodeHasChildren      = "HAS_CHILDREN"
	ErrCodeEmptyCart        = "EMPTY_CART"
	ErrCodeUnauthorized     = "UNAUTHORIZED"
	ErrCodeForbidden        = "FORBIDDEN"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:   http.StatusInternalServerError,
	ErrCodeBadRequest: http.StatusBadRequest,

	// Input errors -> 400 Bad Request
	ErrCodeInvalidInput:     http.StatusBadRequest,
	ErrCodeInvalidParent:    http.StatusBadRequest,
	ErrCodeInvalidProduct:   http.StatusBadRequest,
	ErrCodeInvalidStatus:    http.StatusBadRequest,
	ErrCodeInvalidName:      http.StatusBadRequest,
	ErrCodeInvalidSlug:      http.StatusBadRequest,
	ErrCodeInvalidCategory:  http.StatusBadRequest,
	ErrCodeInvalidImageURL:  http.StatusBadRequest,
	ErrCodeInvalidInventory: http.StatusBadRequest,
	ErrCodeInvalidPrice:     http.StatusBadRequest,
	ErrCodeInvalidUsername:  http.StatusBadRequest,
	ErrCodeInvalidEmail:     http.StatusBadRequest,
	ErrCodeInvalidPassword:  http.StatusBadRequest,
	ErrCodeInvalidAddress:   http.StatusBadRequest,
	ErrCodeInvalidSession:   http.StatusBadRequest,

	// Hashing failures are server faults, not caller mistakes
	ErrCodeHashFailed: http.StatusInternalServerError,

	// Auth errors
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,

	// Resource errors
	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeAlreadyExists: http.StatusConflict,
	ErrCodeHasChildren:   http.StatusConflict,

	// Business rule errors -> 422 Unprocessable Entity
	ErrCodeEmptyCart: http.StatusUnprocessableEntity,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Unknown codes map to 500 Internal Server Error.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
