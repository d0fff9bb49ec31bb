package cmd

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ezerfernandes/incode/internal/block"
	"github.com/spf13/cobra"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

//go:embed help/exec.md
var execHelp string

func execCmd(opts *options) *cobra.Command {
	var (
		name string
		ext  string
		keep bool
	)

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "exec [flags] filename -- command",
		Aliases: []string{"e"},
		Short:   "Run a shell command on an extracted code block",
		Long:    execHelp,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.createStatus(cmd.ErrOrStderr())

			scr, files := script(cmd, args)
			if len(scr) == 0 {
				return errMissingCommand
			}

			if len(files) != 1 {
				return fmt.Errorf("expected one filename, got %d", len(files))
			}

			return execRun(cmd.OutOrStdout(), cmd.ErrOrStderr(), files[0], name, ext, scr, keep, opts)
		},

		DisableAutoGenTag: true,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "name of the code block to extract")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&ext, "ext", ".txt", "extension of the temporary file holding the block")
	cmd.Flags().BoolVarP(&keep, "keep", "k", false, "don't remove temporary directory")
	dialectFlag(cmd, opts)
	pathFlags(cmd, opts)
	quietFlag(cmd, opts)

	return cmd
}

func execRun(stdout, stderr io.Writer, filename, name, ext, scr string, keep bool, opts *options) error {
	dialect, err := opts.dialectFor(filename)
	if err != nil {
		return err
	}

	doc, err := opts.load(filename)
	if err != nil {
		return err
	}

	lines, err := block.Extract(dialect, doc, name, false)
	if err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}

	dir, err := os.MkdirTemp(".", "incode-exec-")
	if err != nil {
		return err
	}

	if !keep {
		defer os.RemoveAll(dir)
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return err
	}

	tempPath := filepath.Join(absDir, name+ext)

	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(tempPath, []byte(content), fileMode); err != nil {
		return err
	}

	expanded := strings.ReplaceAll(scr, "{}", tempPath)
	expanded = strings.ReplaceAll(expanded, "{name}", name)
	expanded = strings.ReplaceAll(expanded, "{dir}", absDir)

	opts.status("--- %s : %s ---\n", name, filepath.Base(filename))

	exitCode, err := runCommand(expanded, absDir, stdout, stderr)
	if err != nil {
		return err
	}

	if exitCode != 0 {
		return fmt.Errorf("command exited with %d", exitCode)
	}

	return nil
}

func runCommand(command, dir string, stdout, stderr io.Writer) (int, error) {
	file, err := syntax.NewParser().Parse(strings.NewReader(command), "")
	if err != nil {
		return -1, err
	}

	runner, err := interp.New(interp.Dir(dir), interp.StdIO(os.Stdin, stdout, stderr))
	if err != nil {
		return -1, err
	}

	err = runner.Run(context.TODO(), file)
	if err != nil {
		if status, ok := interp.IsExitStatus(err); ok {
			return int(status), nil
		}

		return -1, err
	}

	return 0, nil
}

var errMissingCommand = fmt.Errorf("command is required after '--'")
