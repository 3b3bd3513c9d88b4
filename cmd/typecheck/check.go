package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aretw0/typecheck/internal/document"
	"github.com/aretw0/typecheck/internal/presentation/tui"
	"github.com/aretw0/typecheck/internal/service"
)

// errDocumentsFailed signals a non-zero exit after every verdict was printed.
var errDocumentsFailed = errors.New("documents failed")

var checkCmd = &cobra.Command{
	Use:   "check [files...]",
	Short: "Check documents against a shape",
	Long: `Decodes each file as JSON or YAML and checks it against the named shape.
With no files, the document is read from standard input (unless it is a terminal).
Exits with status 1 when any document fails or cannot be read.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		shape, _ := cmd.Flags().GetString("shape")
		formatName, _ := cmd.Flags().GetString("format")

		format, err := document.ParseFormat(formatName)
		if err != nil {
			return err
		}
		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}
		if _, err := shapes().Lookup(shape); err != nil {
			return err
		}

		stdinIsTTY := term.IsTerminal(int(os.Stdin.Fd()))
		if len(args) == 0 && stdinIsTTY {
			return fmt.Errorf("no input: pass files or pipe a document on stdin")
		}

		svc := service.New(shapes(), service.WithLogger(logger))
		printer := tui.NewVerdictPrinter(cmd.OutOrStdout())

		failed, err := runCheck(cmd.Context(), svc, shape, format, args, cmd.InOrStdin(), printer)
		if err != nil {
			return err
		}
		if failed > 0 {
			return fmt.Errorf("%w: %d", errDocumentsFailed, failed)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringP("shape", "s", "", "Name of the shape to check against (see 'typecheck shapes')")
	checkCmd.Flags().StringP("format", "f", "auto", "Input format: json, yaml or auto")
	_ = checkCmd.MarkFlagRequired("shape")
}

// runCheck validates every input and prints one verdict per document.
// It returns how many documents failed or could not be read.
func runCheck(ctx context.Context, svc *service.Service, shape string, format document.Format, inputs []string, stdin io.Reader, printer *tui.VerdictPrinter) (int, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}

	failed := 0
	for _, input := range inputs {
		payload, fileFormat, err := readInput(input, stdin)
		if err != nil {
			printer.Error(input, err)
			failed++
			continue
		}
		if format != document.FormatAuto {
			fileFormat = format
		}

		verdict, err := svc.Validate(ctx, shape, payload, fileFormat)
		switch {
		case err != nil:
			if errors.Is(err, context.Canceled) {
				return failed, err
			}
			printer.Error(input, err)
			failed++
		case verdict.Valid:
			printer.Pass(input, shape)
		default:
			printer.Fail(input, shape)
			failed++
		}
	}
	return failed, nil
}

func readInput(input string, stdin io.Reader) ([]byte, document.Format, error) {
	if input == "-" {
		data, err := io.ReadAll(stdin)
		return data, document.FormatAuto, err
	}
	data, err := os.ReadFile(input)
	return data, document.FormatForPath(input), err
}
