package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/allisson/documents/cmd/app/commands"
	documentUseCase "github.com/allisson/documents/internal/document/usecase"
)

func getDocumentCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:      "format",
			Usage:     "Mask a numeric document value, zero-padding it to the kind length",
			ArgsUsage: "<number>",
			Flags:     []cli.Flag{kindFlag(), formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withDocumentUseCase(ctx, func(
					ctx context.Context,
					useCase documentUseCase.DocumentUseCase,
					logger *slog.Logger,
					writer io.Writer,
				) error {
					return commands.RunFormat(
						ctx, useCase, logger, writer,
						cmd.String("kind"), cmd.Args().First(), cmd.String("format"),
					)
				})
			},
		},
		{
			Name:      "mask",
			Usage:     "Apply the kind mask to a digit string",
			ArgsUsage: "<digits>",
			Flags:     []cli.Flag{kindFlag(), formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withDocumentUseCase(ctx, func(
					ctx context.Context,
					useCase documentUseCase.DocumentUseCase,
					logger *slog.Logger,
					writer io.Writer,
				) error {
					return commands.RunMask(
						ctx, useCase, logger, writer,
						cmd.String("kind"), cmd.Args().First(), cmd.String("format"),
					)
				})
			},
		},
		{
			Name:      "unmask",
			Usage:     "Remove the kind mask from a masked document",
			ArgsUsage: "<masked>",
			Flags:     []cli.Flag{kindFlag(), formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withDocumentUseCase(ctx, func(
					ctx context.Context,
					useCase documentUseCase.DocumentUseCase,
					logger *slog.Logger,
					writer io.Writer,
				) error {
					return commands.RunUnmask(
						ctx, useCase, logger, writer,
						cmd.String("kind"), cmd.Args().First(), cmd.String("format"),
					)
				})
			},
		},
		{
			Name:      "parse",
			Usage:     "Print the numeric value of a raw or masked document",
			ArgsUsage: "<document>",
			Flags:     []cli.Flag{kindFlag(), formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withDocumentUseCase(ctx, func(
					ctx context.Context,
					useCase documentUseCase.DocumentUseCase,
					logger *slog.Logger,
					writer io.Writer,
				) error {
					return commands.RunParse(
						ctx, useCase, logger, writer,
						cmd.String("kind"), cmd.Args().First(), cmd.String("format"),
					)
				})
			},
		},
		{
			Name:      "validate",
			Usage:     "Validate one or more documents",
			ArgsUsage: "<document> [document...]",
			Flags:     []cli.Flag{kindFlag(), formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withDocumentUseCase(ctx, func(
					ctx context.Context,
					useCase documentUseCase.DocumentUseCase,
					logger *slog.Logger,
					writer io.Writer,
				) error {
					return commands.RunValidate(
						ctx, useCase, logger, writer,
						cmd.String("kind"), cmd.Args().Slice(), cmd.String("format"),
					)
				})
			},
		},
		{
			Name:      "complete",
			Usage:     "Append the check digits to a document base",
			ArgsUsage: "<base>",
			Flags:     []cli.Flag{kindFlag(), formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withDocumentUseCase(ctx, func(
					ctx context.Context,
					useCase documentUseCase.DocumentUseCase,
					logger *slog.Logger,
					writer io.Writer,
				) error {
					return commands.RunComplete(
						ctx, useCase, logger, writer,
						cmd.String("kind"), cmd.Args().First(), cmd.String("format"),
					)
				})
			},
		},
		{
			Name:  "generate",
			Usage: "Generate random valid documents",
			Flags: []cli.Flag{
				kindFlag(),
				&cli.IntFlag{
					Name:    "count",
					Aliases: []string{"c"},
					Value:   1,
					Usage:   "Number of documents to generate",
				},
				&cli.BoolFlag{
					Name:    "masked",
					Aliases: []string{"m"},
					Value:   false,
					Usage:   "Apply the kind mask to the generated documents",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withDocumentUseCase(ctx, func(
					ctx context.Context,
					useCase documentUseCase.DocumentUseCase,
					logger *slog.Logger,
					writer io.Writer,
				) error {
					return commands.RunGenerate(
						ctx, useCase, logger, writer,
						cmd.String("kind"), int(cmd.Int("count")), cmd.Bool("masked"), cmd.String("format"),
					)
				})
			},
		},
	}
}
