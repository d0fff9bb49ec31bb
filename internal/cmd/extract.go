package cmd

import (
	_ "embed"
	"fmt"
	"io"

	"github.com/ezerfernandes/incode/internal/block"
	"github.com/spf13/cobra"
)

//go:embed help/extract.md
var extractHelp string

func extractCmd(opts *options) *cobra.Command {
	var (
		name  string
		scope bool
	)

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "extract [flags] filename",
		Aliases: []string{"x"},
		Short:   "Extract a named code block from a markup document",
		Long:    extractHelp,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.createStatus(cmd.ErrOrStderr())

			return extractRun(cmd.OutOrStdout(), args[0], name, scope, opts)
		},

		DisableAutoGenTag: true,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "name of the code block to extract")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().BoolVar(&scope, "scope", false, "wrap the extracted block in braces")
	dialectFlag(cmd, opts)
	pathFlags(cmd, opts)
	quietFlag(cmd, opts)

	return cmd
}

func extractRun(w io.Writer, filename, name string, scope bool, opts *options) error {
	dialect, err := opts.dialectFor(filename)
	if err != nil {
		return err
	}

	doc, err := opts.load(filename)
	if err != nil {
		return err
	}

	lines, err := block.Extract(dialect, doc, name, scope)
	if err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}

	for _, line := range lines {
		fmt.Fprintln(w, line)
	}

	return nil
}
