package commands

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	documentDomain "github.com/allisson/documents/internal/document/domain"
	documentUseCase "github.com/allisson/documents/internal/document/usecase"
	documentMocks "github.com/allisson/documents/internal/document/usecase/mocks"
	apperrors "github.com/allisson/documents/internal/errors"
)

func TestRunGenerate(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.DiscardHandler)

	t.Run("text-output", func(t *testing.T) {
		mockUseCase := documentMocks.NewMockDocumentUseCase(t)
		mockUseCase.EXPECT().
			Generate(mock.Anything, documentDomain.KindCPF, true).
			Return("998.352.292-60", nil).
			Times(3)

		var out bytes.Buffer
		err := RunGenerate(ctx, mockUseCase, logger, &out, "cpf", 3, true, "text")

		require.NoError(t, err)
		require.Equal(t, strings.Repeat("998.352.292-60\n", 3), out.String())
	})

	t.Run("json-output", func(t *testing.T) {
		mockUseCase := documentMocks.NewMockDocumentUseCase(t)
		mockUseCase.EXPECT().
			Generate(mock.Anything, documentDomain.KindCNPJ, false).
			Return("57742897000146", nil).
			Once()

		var out bytes.Buffer
		err := RunGenerate(ctx, mockUseCase, logger, &out, "cnpj", 1, false, "json")

		require.NoError(t, err)
		require.Contains(t, out.String(), `"masked": false`)
		require.Contains(t, out.String(), `"57742897000146"`)
	})

	t.Run("real-use-case", func(t *testing.T) {
		useCase := documentUseCase.NewDocumentUseCase(documentUseCase.Config{}, logger)

		var out bytes.Buffer
		err := RunGenerate(ctx, useCase, logger, &out, "cnpj", 5, true, "text")
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 5)
		for _, line := range lines {
			valid, err := useCase.Validate(ctx, documentDomain.KindCNPJ, line)
			require.NoError(t, err)
			require.True(t, valid, "generated %q should validate", line)
		}
	})

	t.Run("invalid-count", func(t *testing.T) {
		mockUseCase := documentMocks.NewMockDocumentUseCase(t)

		for _, count := range []int{0, -1, maxGenerateCount + 1} {
			err := RunGenerate(ctx, mockUseCase, logger, &bytes.Buffer{}, "cpf", count, false, "text")
			require.ErrorIs(t, err, apperrors.ErrInvalidInput)
			require.Contains(t, err.Error(), "count:")
		}
	})

	t.Run("cancelled-context", func(t *testing.T) {
		mockUseCase := documentMocks.NewMockDocumentUseCase(t)
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		err := RunGenerate(cancelled, mockUseCase, logger, &bytes.Buffer{}, "cpf", 2, false, "text")

		require.ErrorIs(t, err, context.Canceled)
	})
}
