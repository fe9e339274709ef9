// internal/apperrors/errors_test.go
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvalidStateCarriesCurrentStatus(t *testing.T) {
	err := InvalidState("application cannot be forwarded", "approved")

	assert.Equal(t, CodeInvalidState, err.Code)
	assert.Equal(t, http.StatusConflict, err.HTTPCode)

	details, ok := err.Details.(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "approved", details["current_status"])
}

func TestAsUnwrapsThroughWrapping(t *testing.T) {
	base := NotFound("NOC application")
	wrapped := fmt.Errorf("loading application: %w", base)

	appErr, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, CodeNotFound, appErr.Code)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)
}

func TestAsRejectsPlainErrors(t *testing.T) {
	_, ok := As(errors.New("boom"))
	assert.False(t, ok)

	_, ok = As(nil)
	assert.False(t, ok)
}

func TestConstructorCodes(t *testing.T) {
	assert.Equal(t, http.StatusForbidden, Forbidden("no").HTTPCode)
	assert.Equal(t, http.StatusUnauthorized, Unauthorized("no").HTTPCode)
	assert.Equal(t, http.StatusBadRequest, Validation(nil).HTTPCode)
	assert.Equal(t, http.StatusConflict, AlreadyExists("dup").HTTPCode)
	assert.Equal(t, http.StatusInternalServerError, Internal(errors.New("boom")).HTTPCode)
}

func TestInternalWrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal(cause)

	assert.True(t, errors.Is(err, cause))
}
