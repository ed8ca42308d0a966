package commands

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	documentDomain "github.com/allisson/documents/internal/document/domain"
	documentMocks "github.com/allisson/documents/internal/document/usecase/mocks"
	apperrors "github.com/allisson/documents/internal/errors"
)

func TestRunFormat(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.DiscardHandler)

	t.Run("text-output", func(t *testing.T) {
		mockUseCase := documentMocks.NewMockDocumentUseCase(t)
		mockUseCase.EXPECT().
			Format(mock.Anything, documentDomain.KindCPF, int64(99835229260)).
			Return("998.352.292-60", nil).
			Once()

		var out bytes.Buffer
		err := RunFormat(ctx, mockUseCase, logger, &out, "cpf", "99835229260", "text")

		require.NoError(t, err)
		require.Equal(t, "998.352.292-60\n", out.String())
	})

	t.Run("json-output", func(t *testing.T) {
		mockUseCase := documentMocks.NewMockDocumentUseCase(t)
		mockUseCase.EXPECT().
			Format(mock.Anything, documentDomain.KindCEP, int64(1345011)).
			Return("01.345-011", nil).
			Once()

		var out bytes.Buffer
		err := RunFormat(ctx, mockUseCase, logger, &out, "cep", "1345011", "json")

		require.NoError(t, err)
		require.Contains(t, out.String(), `"kind": "cep"`)
		require.Contains(t, out.String(), `"value": 1345011`)
		require.Contains(t, out.String(), `"formatted": "01.345-011"`)
	})

	t.Run("use-case-error", func(t *testing.T) {
		mockUseCase := documentMocks.NewMockDocumentUseCase(t)
		mockUseCase.EXPECT().
			Format(mock.Anything, documentDomain.KindCEP, int64(123456789)).
			Return("", documentDomain.ErrValueTooLong).
			Once()

		err := RunFormat(ctx, mockUseCase, logger, &bytes.Buffer{}, "cep", "123456789", "text")

		require.ErrorIs(t, err, documentDomain.ErrValueTooLong)
		require.Contains(t, err.Error(), "failed to format document")
	})

	t.Run("invalid-arguments", func(t *testing.T) {
		mockUseCase := documentMocks.NewMockDocumentUseCase(t)

		tests := []struct {
			kind, value, format, errMsg string
		}{
			{kind: "rg", value: "1", format: "text", errMsg: "kind:"},
			{kind: "cpf", value: "1", format: "xml", errMsg: "format:"},
			{kind: "cpf", value: "", format: "text", errMsg: "value: cannot be blank"},
			{kind: "cpf", value: "998.352.292-60", format: "text", errMsg: "value: must contain only digits"},
			{kind: "cpf", value: "99999999999999999999", format: "text", errMsg: "value:"},
		}
		for _, tt := range tests {
			err := RunFormat(ctx, mockUseCase, logger, &bytes.Buffer{}, tt.kind, tt.value, tt.format)
			require.ErrorIs(t, err, apperrors.ErrInvalidInput)
			require.Contains(t, err.Error(), tt.errMsg)
		}
	})
}
