package cmd

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/ezerfernandes/incode/internal/block"
	"github.com/ezerfernandes/incode/internal/region"
	"github.com/spf13/cobra"
)

//go:embed help/splice.md
var spliceHelp string

func spliceCmd(opts *options) *cobra.Command {
	var (
		name  string
		scope bool
	)

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "splice [flags] filename target",
		Short: "Splice an extracted code block into a source file",
		Long:  spliceHelp,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.createStatus(cmd.ErrOrStderr())

			return spliceRun(args[0], args[1], name, scope, opts)
		},

		DisableAutoGenTag: true,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "name of the code block and of the target region")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().BoolVar(&scope, "scope", false, "wrap the spliced block in braces")
	dialectFlag(cmd, opts)
	pathFlags(cmd, opts)
	quietFlag(cmd, opts)

	return cmd
}

func spliceRun(filename, target, name string, scope bool, opts *options) error {
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

	value := []byte(strings.Join(lines, "\n") + "\n")

	src, err := os.ReadFile(target)
	if err != nil {
		return err
	}

	current, found, err := region.Read(src, name)
	if err != nil {
		return err
	}

	if !found {
		return fmt.Errorf("region %q not found in %s", name, target)
	}

	if bytes.Equal(current, value) {
		opts.status("%s: region %q unchanged\n", target, name)

		return nil
	}

	res, _, err := region.Replace(src, name, value)
	if err != nil {
		return err
	}

	if err := os.WriteFile(target, res, fileMode); err != nil {
		return err
	}

	opts.status("%s: region %q updated\n", target, name)

	return nil
}
