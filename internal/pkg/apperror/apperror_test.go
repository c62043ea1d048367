package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindHTTPStatus(t *testing.T) {
	tests := []struct {
		kind   Kind
		status int
	}{
		{KindUnauthenticated, 401},
		{KindForbidden, 403},
		{KindLimitExceeded, 403},
		{KindValidation, 400},
		{KindNotFound, 404},
		{KindConflict, 409},
		{KindInternal, 500},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.status, tt.kind.HTTPStatus())
	}
}

func TestLimitExceededDetails(t *testing.T) {
	err := LimitExceeded(3, 3, "FREE")

	assert.Equal(t, KindLimitExceeded, err.Kind)
	assert.Equal(t, "NOTE_LIMIT_REACHED", err.Code)
	assert.Equal(t, 3, err.Details["current"])
	assert.Equal(t, 3, err.Details["limit"])
	assert.Equal(t, "FREE", err.Details["subscription"])
}

func TestFrom(t *testing.T) {
	t.Run("passes app errors through", func(t *testing.T) {
		orig := NotFound("NOTE_NOT_FOUND", "note not found")
		assert.Same(t, orig, From(orig))
	})

	t.Run("wraps unknown errors as internal", func(t *testing.T) {
		cause := errors.New("driver: connection refused")
		appErr := From(cause)
		require.Equal(t, KindInternal, appErr.Kind)
		// The cause stays reachable for logging but never in the message.
		assert.ErrorIs(t, appErr, cause)
		assert.Equal(t, "internal server error", appErr.Message)
	})

	t.Run("unwraps wrapped app errors", func(t *testing.T) {
		orig := Conflict("ALREADY_UPGRADED", "tenant is already on the Pro plan")
		wrapped := fmt.Errorf("upgrade: %w", orig)
		assert.Same(t, orig, From(wrapped))
	})
}

func TestIsKind(t *testing.T) {
	err := Forbidden("TENANT_MISMATCH", "cannot upgrade other tenants")
	assert.True(t, IsKind(err, KindForbidden))
	assert.False(t, IsKind(err, KindNotFound))
	assert.False(t, IsKind(errors.New("plain"), KindForbidden))
}
