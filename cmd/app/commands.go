package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/documents/cmd/app/commands"
	"github.com/allisson/documents/internal/app"
	"github.com/allisson/documents/internal/config"
	documentUseCase "github.com/allisson/documents/internal/document/usecase"
)

func getCommands() []*cli.Command {
	cmds := []*cli.Command{}
	cmds = append(cmds, getDocumentCommands()...)
	cmds = append(cmds, getSystemCommands()...)
	return cmds
}

// useCaseRunner is a command body that needs the document use case.
type useCaseRunner func(
	ctx context.Context,
	useCase documentUseCase.DocumentUseCase,
	logger *slog.Logger,
	writer io.Writer,
) error

// withDocumentUseCase loads configuration, builds the container and runs fn.
// Collected metrics are written to stderr when enabled.
func withDocumentUseCase(ctx context.Context, fn useCaseRunner) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	container := app.NewContainer(cfg)
	defer func() { _ = container.Shutdown(ctx) }()

	useCase, err := container.DocumentUseCase()
	if err != nil {
		return err
	}

	if err := fn(ctx, useCase, container.Logger(), commands.DefaultIO().Writer); err != nil {
		return err
	}

	return container.WriteMetrics(os.Stderr)
}

func kindFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "kind",
		Aliases:  []string{"k"},
		Required: true,
		Usage:    "Document kind: 'cep', 'cpf' or 'cnpj'",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "text",
		Usage:   "Output format: 'text' or 'json'",
	}
}

func getSystemCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "kinds",
			Usage: "List the supported document kinds",
			Flags: []cli.Flag{formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				return commands.RunListKinds(ctx, container.Logger(), commands.DefaultIO().Writer, cmd.String("format"))
			},
		},
	}
}
