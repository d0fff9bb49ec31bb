package cmd

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/ezerfernandes/incode/internal/mdscan"
	"github.com/gobwas/glob"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"
)

//go:embed help/list.md
var listHelp string

func listCmd(opts *options) *cobra.Command {
	var name, lang string

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "list [flags] filename",
		Aliases: []string{"ls"},
		Short:   "List the fenced code blocks of a Markdown document",
		Long:    listHelp,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.createStatus(cmd.ErrOrStderr())

			return listRun(cmd.OutOrStdout(), args[0], name, lang, opts)
		},

		DisableAutoGenTag: true,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "only list blocks with an attribute word matching this glob")
	cmd.Flags().StringVarP(&lang, "lang", "l", "", "only list blocks whose language matches this glob")
	pathFlags(cmd, opts)
	quietFlag(cmd, opts)

	return cmd
}

func listRun(w io.Writer, filename, name, lang string, opts *options) error {
	path, err := opts.resolver().Resolve(filename)
	if err != nil {
		return err
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	blocks, err := mdscan.Scan(src)
	if err != nil {
		return err
	}

	nameGlob, err := compileGlob(name)
	if err != nil {
		return err
	}

	langGlob, err := compileGlob(lang)
	if err != nil {
		return err
	}

	tbl := table.New("#", "LANG", "ATTRS", "LINES").WithWriter(w)
	count := 0

	for i, b := range blocks {
		if langGlob != nil && !langGlob.Match(b.Lang) {
			continue
		}

		if nameGlob != nil && !matchAny(nameGlob, b.Attrs) {
			continue
		}

		tbl.AddRow(i, b.Lang, b.Attr(), fmt.Sprintf("%d-%d", b.StartLine, b.EndLine))
		count++
	}

	tbl.Print()
	opts.status("%d block(s)\n", count)

	return nil
}

func compileGlob(pattern string) (glob.Glob, error) {
	if pattern == "" {
		return nil, nil
	}

	return glob.Compile(pattern)
}

func matchAny(g glob.Glob, words []string) bool {
	for _, word := range words {
		if g.Match(word) {
			return true
		}
	}

	return false
}
