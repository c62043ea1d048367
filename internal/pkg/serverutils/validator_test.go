package serverutils

import (
	"errors"
	"strings"
	"testing"

	"tenant-notes-be/internal/dto"
	"tenant-notes-be/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldErrors(t *testing.T, err error) []apperror.FieldError {
	t.Helper()
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	require.Equal(t, apperror.KindValidation, appErr.Kind)
	return appErr.Fields
}

func TestValidateCreateNoteRequest(t *testing.T) {
	longTitle := strings.Repeat("a", 201)

	tests := []struct {
		name      string
		req       dto.CreateNoteRequest
		wantField string
	}{
		{"missing title", dto.CreateNoteRequest{Content: "c"}, "title"},
		{"title too long", dto.CreateNoteRequest{Title: longTitle, Content: "c"}, "title"},
		{"missing content", dto.CreateNoteRequest{Title: "t"}, "content"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequest(tt.req)
			require.Error(t, err)
			fields := fieldErrors(t, err)
			require.Len(t, fields, 1)
			assert.Equal(t, tt.wantField, fields[0].Field)
		})
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, ValidateRequest(dto.CreateNoteRequest{
			Title:   strings.Repeat("a", 200),
			Content: "c",
		}))
	})
}

func TestValidateUpdateNoteRequest(t *testing.T) {
	title := "new title"
	empty := ""
	longTitle := strings.Repeat("a", 201)

	t.Run("all fields optional", func(t *testing.T) {
		assert.NoError(t, ValidateRequest(dto.UpdateNoteRequest{}))
	})

	t.Run("title alone is fine", func(t *testing.T) {
		assert.NoError(t, ValidateRequest(dto.UpdateNoteRequest{Title: &title}))
	})

	t.Run("supplied fields still constrained", func(t *testing.T) {
		err := ValidateRequest(dto.UpdateNoteRequest{Title: &longTitle})
		require.Error(t, err)

		err = ValidateRequest(dto.UpdateNoteRequest{Content: &empty})
		require.Error(t, err)
	})
}

func TestValidateLoginRequest(t *testing.T) {
	err := ValidateRequest(dto.LoginRequest{Email: "not-an-email", Password: "x"})
	require.Error(t, err)
	fields := fieldErrors(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, "email", fields[0].Field)

	assert.NoError(t, ValidateRequest(dto.LoginRequest{Email: "admin@acme.test", Password: "password"}))
}
