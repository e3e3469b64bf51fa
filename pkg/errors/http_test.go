package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgErrors "shareit/pkg/errors"
)

func TestNewHTTPErrorKind(t *testing.T) {
	assert.Equal(t, pkgErrors.KindConflict, pkgErrors.NewHTTPError(http.StatusConflict, "dup").Kind)
	assert.Equal(t, pkgErrors.KindValidation, pkgErrors.NewHTTPError(http.StatusBadRequest, "bad").Kind)
	assert.Equal(t, pkgErrors.KindInternal, pkgErrors.NewHTTPError(http.StatusBadGateway, "x").Kind)
}

func TestUnsupportedStateIs500(t *testing.T) {
	err := pkgErrors.NewUnsupportedStateError("Unknown state: bogus")
	assert.Equal(t, http.StatusInternalServerError, err.Code)
	assert.Equal(t, pkgErrors.KindUnsupportedState, err.Kind)
}

func TestAuthorizationMasking(t *testing.T) {
	masked := pkgErrors.NewAuthorizationError("nope", true)
	assert.Equal(t, http.StatusNotFound, masked.Code)
	assert.Equal(t, pkgErrors.KindNotFound, masked.Kind)

	open := pkgErrors.NewAuthorizationError("nope", false)
	assert.Equal(t, http.StatusForbidden, open.Code)
	assert.Equal(t, pkgErrors.KindForbidden, open.Kind)
}

func TestAsHTTPError(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", pkgErrors.NewNotFoundError("gone"))
	httpErr, ok := pkgErrors.AsHTTPError(wrapped)
	require.True(t, ok)
	assert.Equal(t, "gone", httpErr.Message)

	_, ok = pkgErrors.AsHTTPError(fmt.Errorf("plain"))
	assert.False(t, ok)
}
