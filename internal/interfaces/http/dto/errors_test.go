package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code   string
		status int
	}{
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeAlreadyExists, http.StatusConflict},
		{ErrCodeHasChildren, http.StatusConflict},
		{ErrCodeInvalidInput, http.StatusBadRequest},
		{ErrCodeInvalidParent, http.StatusBadRequest},
		{ErrCodeInvalidProduct, http.StatusBadRequest},
		{ErrCodeInvalidStatus, http.StatusBadRequest},
		{ErrCodeInvalidName, http.StatusBadRequest},
		{ErrCodeInvalidSlug, http.StatusBadRequest},
		{ErrCodeInvalidCategory, http.StatusBadRequest},
		{ErrCodeInvalidImageURL, http.StatusBadRequest},
		{ErrCodeInvalidInventory, http.StatusBadRequest},
		{ErrCodeInvalidPrice, http.StatusBadRequest},
		{ErrCodeInvalidUsername, http.StatusBadRequest},
		{ErrCodeInvalidEmail, http.StatusBadRequest},
		{ErrCodeInvalidPassword, http.StatusBadRequest},
		{ErrCodeInvalidAddress, http.StatusBadRequest},
		{ErrCodeInvalidSession, http.StatusBadRequest},
		{ErrCodeUnauthorized, http.StatusUnauthorized},
		{ErrCodeForbidden, http.StatusForbidden},
		{ErrCodeEmptyCart, http.StatusUnprocessableEntity},
		{ErrCodeInternal, http.StatusInternalServerError},
		{ErrCodeHashFailed, http.StatusInternalServerError},
		{"SOMETHING_NEW", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.status, GetHTTPStatus(tt.code))
		})
	}
}

func TestNewSuccessResponseWithMeta(t *testing.T) {
	resp := NewSuccessResponseWithMeta([]string{}, 45, 2, 20)
	assert.True(t, resp.Success)
	assert.Equal(t, int64(45), resp.Meta.Total)
	assert.Equal(t, 3, resp.Meta.TotalPages)
}
