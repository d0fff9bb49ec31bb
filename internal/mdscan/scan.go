// Package mdscan indexes the fenced code blocks of a Markdown document.
package mdscan

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/google/shlex"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var reInfo = regexp.MustCompile(`\s*(\w+)\s*(.*)\s*`)

// Block describes a fenced code block: its language tag, the attribute words
// following it on the info string, the verbatim code and the 1-based line
// numbers of the opening and closing fences.
type Block struct {
	Lang      string
	Attrs     []string
	Code      []byte
	StartLine int
	EndLine   int
}

// Named reports whether name appears among the block's attribute words.
func (b *Block) Named(name string) bool {
	for _, attr := range b.Attrs {
		if attr == name {
			return true
		}
	}

	return false
}

// Scan parses source as Markdown and returns every fenced code block in
// document order. The source is not modified.
func Scan(source []byte) ([]*Block, error) {
	parser := goldmark.DefaultParser()
	reader := text.NewReader(source)
	root := parser.Parse(reader).OwnerDocument()

	var blocks []*Block

	err := ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering || node.Kind() != ast.KindFencedCodeBlock {
			return ast.WalkContinue, nil
		}

		fcb, ok := node.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}

		block, berr := extractBlock(fcb, source)
		if berr != nil {
			return ast.WalkContinue, berr
		}

		blocks = append(blocks, block)

		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}

	return blocks, nil
}

func extractBlock(fcb *ast.FencedCodeBlock, source []byte) (*Block, error) {
	lang, attrs, err := extractInfo(fcb, source)
	if err != nil {
		return nil, err
	}

	block := &Block{Lang: lang, Attrs: attrs, Code: extractCode(fcb, source)}
	block.StartLine, block.EndLine = extractLines(fcb, source)

	return block, nil
}

func extractInfo(fcb *ast.FencedCodeBlock, source []byte) (string, []string, error) {
	if fcb.Info == nil {
		return "", nil, nil
	}

	all := reInfo.FindSubmatch(fcb.Info.Text(source))
	if all == nil {
		return "", nil, nil
	}

	lang := string(all[1])

	attrs, err := shlex.Split(string(all[2]))
	if err != nil {
		return "", nil, err
	}

	return lang, attrs, nil
}

func extractCode(fcb *ast.FencedCodeBlock, source []byte) []byte {
	var buff bytes.Buffer

	lines := fcb.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)

		buff.Write(seg.Value(source))
	}

	return buff.Bytes()
}

func extractLines(fcb *ast.FencedCodeBlock, source []byte) (int, int) {
	var startLine, endLine int

	lines := fcb.Lines()

	if fcb.Info != nil {
		startLine = lineAt(source, fcb.Info.Segment.Start)
	} else if lines.Len() > 0 {
		startLine = lineAt(source, lines.At(0).Start) - 1
	}

	if lines.Len() > 0 {
		endLine = lineAt(source, lines.At(lines.Len()-1).Stop)
	} else if startLine > 0 {
		endLine = startLine + 1
	}

	return startLine, endLine
}

func lineAt(source []byte, offset int) int {
	line := 1

	for i := 0; i < offset && i < len(source); i++ {
		if source[i] == '\n' {
			line++
		}
	}

	return line
}

// Attr formats a block's attribute words for display.
func (b *Block) Attr() string {
	return strings.Join(b.Attrs, " ")
}
