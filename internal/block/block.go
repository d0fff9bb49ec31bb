// Package block extracts a single named, delimited block of text from a
// lightweight-markup document. It supports Markdown fenced code blocks,
// AsciiDoc delimited source blocks, Org source blocks and Textile code
// blocks, all behind one contract: a forward scan over the document's lines
// that either yields the block's inner lines or reports that no block with
// the requested name exists.
package block

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Dialect identifies the markup grammar used to recognize block delimiters.
type Dialect int

const (
	Markdown Dialect = iota
	AsciiDoc
	Org
	Textile
)

func (d Dialect) String() string {
	switch d {
	case Markdown:
		return "markdown"
	case AsciiDoc:
		return "asciidoc"
	case Org:
		return "org"
	case Textile:
		return "textile"
	}

	return "unknown"
}

// ParseDialect converts a dialect name, as given on the command line, into a
// Dialect. Short forms ("md", "adoc") are accepted.
func ParseDialect(s string) (Dialect, error) {
	switch strings.ToLower(s) {
	case "markdown", "md":
		return Markdown, nil
	case "asciidoc", "adoc":
		return AsciiDoc, nil
	case "org":
		return Org, nil
	case "textile":
		return Textile, nil
	}

	return 0, fmt.Errorf("unsupported dialect %q", s)
}

// DialectForPath infers the dialect from a file name's extension. The bool
// return reports whether the extension is recognized.
func DialectForPath(path string) (Dialect, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return Markdown, true
	case ".adoc", ".asciidoc":
		return AsciiDoc, true
	case ".org":
		return Org, true
	case ".textile":
		return Textile, true
	}

	return 0, false
}

// NotFoundError reports that no block with the requested name exists in the
// scanned document.
type NotFoundError struct {
	Name    string
	Dialect Dialect
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("code block %q not found in %s document", e.Name, e.Dialect)
}

// Collect scans doc for the first block named name and returns its inner
// lines. The scan is a single forward pass; later blocks with the same name
// are ignored. A block whose opener is never closed before the end of the
// document does not match and contributes no lines.
func Collect(d Dialect, doc []string, name string) ([]string, bool) {
	if name == "" {
		return nil, false
	}

	switch d {
	case Markdown:
		return collectMarkdown(doc, name)
	case AsciiDoc:
		return collectAsciiDoc(doc, name)
	case Org:
		return collectOrg(doc, name)
	case Textile:
		return collectTextile(doc, name)
	}

	return nil, false
}

// Extract collects the named block from doc and, when scope is set, wraps the
// result in a brace pair so it can be spliced as a self-contained block. A
// miss is returned as a *NotFoundError.
func Extract(d Dialect, doc []string, name string, scope bool) ([]string, error) {
	lines, found := Collect(d, doc, name)
	if !found {
		return nil, &NotFoundError{Name: name, Dialect: d}
	}

	if scope {
		wrapped := make([]string, 0, len(lines)+2)
		wrapped = append(wrapped, "{")
		wrapped = append(wrapped, lines...)
		wrapped = append(wrapped, "}")

		return wrapped, nil
	}

	return lines, nil
}

func runLen(s string, ch byte) int {
	n := 0
	for n < len(s) && s[n] == ch {
		n++
	}

	return n
}
