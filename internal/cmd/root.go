package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ezerfernandes/incode/internal/block"
	"github.com/ezerfernandes/incode/internal/source"
	"github.com/spf13/cobra"
)

const fileMode = 0o644

type statusFunc func(format string, args ...interface{})

type options struct {
	quiet   bool
	root    string
	from    string
	dialect string
	status  statusFunc
}

func (o *options) createStatus(w io.Writer) {
	if o.quiet {
		o.status = func(string, ...interface{}) {}

		return
	}

	o.status = func(format string, args ...interface{}) {
		fmt.Fprintf(w, format, args...)
	}
}

func (o *options) resolver() source.Resolver {
	if o.from != "" {
		return source.Resolver{Mode: source.CallerRelative, Caller: o.from}
	}

	return source.Resolver{Mode: source.RootRelative, Root: o.root}
}

func (o *options) dialectFor(filename string) (block.Dialect, error) {
	if o.dialect != "" {
		return block.ParseDialect(o.dialect)
	}

	if d, ok := block.DialectForPath(filename); ok {
		return d, nil
	}

	return 0, fmt.Errorf("cannot infer dialect from %q, use --dialect", filename)
}

// load resolves filename against the configured root or caller and reads it
// into lines.
func (o *options) load(filename string) ([]string, error) {
	path, err := o.resolver().Resolve(filename)
	if err != nil {
		return nil, err
	}

	return source.LoadFile(path)
}

// Execute runs the incode command line. It exits the process on failure.
func Execute(args []string, stdout, stderr io.Writer) {
	cmd := rootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "incode",
		Short: "Extract named code blocks from markup documents",
		Long: "incode extracts a single named, delimited block of text from a\n" +
			"Markdown, AsciiDoc, Org or Textile document so it can be spliced\n" +
			"into a program at build time.",
		SilenceUsage:      true,
		SilenceErrors:     false,
		DisableAutoGenTag: true,
	}

	cmd.AddCommand(extractCmd(opts), listCmd(opts), execCmd(opts), spliceCmd(opts))

	return cmd
}

func dialectFlag(cmd *cobra.Command, opts *options) {
	cmd.Flags().StringVarP(&opts.dialect, "dialect", "d", "", "document dialect (markdown, asciidoc, org, textile); inferred from the file extension when omitted")
}

func pathFlags(cmd *cobra.Command, opts *options) {
	cmd.Flags().StringVar(&opts.root, "root", ".", "resolve the document path against this directory")
	cmd.Flags().StringVar(&opts.from, "from", "", "resolve the document path relative to the directory of this file instead of the root")
}

func quietFlag(cmd *cobra.Command, opts *options) {
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress status output")
}

// script splits args at the -- separator into the positional arguments and
// the shell command that follows.
func script(cmd *cobra.Command, args []string) (string, []string) {
	n := cmd.ArgsLenAtDash()
	if n < 0 {
		return "", args
	}

	return strings.Join(args[n:], " "), args[:n]
}
