package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Veraticus/techplot/internal/cli"
	"github.com/Veraticus/techplot/internal/common"
	"github.com/Veraticus/techplot/internal/model"
	"github.com/Veraticus/techplot/internal/results"
	"github.com/Veraticus/techplot/internal/technique"
	"github.com/spf13/cobra"
)

func labelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "label",
		Short: "Derive technique labels",
		Long:  `Derive technique labels from ACUME filenames, from evaluation columns, or for a whole result file.`,
	}

	cmd.AddCommand(labelFilenameCmd())
	cmd.AddCommand(labelColumnsCmd())
	cmd.AddCommand(labelFileCmd())

	return cmd
}

func labelFilenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "filename <name>...",
		Short: "Label ACUME filenames",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range args {
				if _, err := fmt.Fprintf(out, "%s\t%s\t%s\n", name, technique.ClassifierName(name), technique.FromFilename(name)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func labelColumnsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "columns <feature-selection> <sampling> <cost-sensitive>",
		Short: "Label an evaluation row from its technique columns",
		Long:  `Label an evaluation row. Each argument is either "none" or the technique that was applied.`,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), technique.FromColumns(args[0], args[1], args[2]))
			return err
		},
	}
}

func labelFileCmd() *cobra.Command {
	var (
		source  string
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "file <results.csv>",
		Short: "Add a Technique column to a result file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := model.ParseSourceKind(source)
			if err != nil {
				return common.NewUserError("invalid --source", err)
			}

			in, err := os.Open(args[0])
			if err != nil {
				if os.IsNotExist(err) {
					return common.NewUserError("cannot label results", fmt.Errorf("%w: %s", common.ErrSourceNotFound, args[0]))
				}
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer in.Close()

			if outPath == "" {
				_, err := results.WriteLabeled(cmd.Context(), kind, in, cmd.OutOrStdout())
				return err
			}

			n, err := writeLabeledFile(cmd.Context(), kind, in, outPath)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatSuccess(fmt.Sprintf("Labeled %d rows into %s", n, outPath)))
			return nil
		},
	}

	cmd.Flags().StringVar(&source, "source", string(model.SourceEvaluation), "result file kind (evaluation, acume)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write the labeled file here instead of stdout")

	return cmd
}

// writeLabeledFile writes the labeled records to path. A failed write leaves no file behind.
func writeLabeledFile(ctx context.Context, kind model.SourceKind, in io.Reader, path string) (int, error) {
	f, err := os.Create(path) //nolint:gosec // output path is given on the command line
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", path, err)
	}

	n, err := results.WriteLabeled(ctx, kind, in, f)
	if err != nil {
		_ = f.Close()
		if rmErr := os.Remove(path); rmErr != nil {
			slog.Warn("Failed to remove partial labeled output", "path", path, "error", rmErr)
		}
		return 0, err
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("failed to close %s: %w", path, err)
	}
	return n, nil
}
