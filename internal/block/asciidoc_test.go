package block_test

import (
	"testing"

	"github.com/ezerfernandes/incode/internal/block"
	"github.com/stretchr/testify/require"
)

func TestAsciiDocNoSourceBlocks(t *testing.T) {
	doc := []string{
		"This is an AsciiDoc file",
		"with no source blocks at all.",
		"Just plain text.",
	}

	_, found := block.Collect(block.AsciiDoc, doc, "example")
	require.False(t, found)
}

func TestAsciiDocNoMatchingID(t *testing.T) {
	doc := []string{
		"Some text here.",
		"",
		"[source,rust]",
		"----",
		"fn main() {",
		`    println!("Hello");`,
		"}",
		"----",
		"",
		"More text.",
	}

	_, found := block.Collect(block.AsciiDoc, doc, "example")
	require.False(t, found)
}

func TestAsciiDocDelimited(t *testing.T) {
	doc := []string{
		"Some introduction text.",
		"",
		`[source,rust,id="example"]`,
		"----",
		"fn main() {",
		`    println!("Hello, world!");`,
		"}",
		"----",
		"",
		"Text after the block.",
	}

	lines, found := block.Collect(block.AsciiDoc, doc, "example")
	require.True(t, found)
	require.Equal(t, []string{"fn main() {", `    println!("Hello, world!");`, "}"}, lines)
}

func TestAsciiDocShorthandStyle(t *testing.T) {
	doc := []string{
		`[,rust,id="example"]`,
		"----",
		"fn test() {",
		"    assert_eq!(2 + 2, 4);",
		"}",
		"----",
	}

	lines, found := block.Collect(block.AsciiDoc, doc, "example")
	require.True(t, found)
	require.Equal(t, []string{"fn test() {", "    assert_eq!(2 + 2, 4);", "}"}, lines)
}

func TestAsciiDocStyleSuffixID(t *testing.T) {
	doc := []string{
		"[source#example,rust]",
		"----",
		"let x = 42;",
		"----",
	}

	lines, found := block.Collect(block.AsciiDoc, doc, "example")
	require.True(t, found)
	require.Equal(t, []string{"let x = 42;"}, lines)
}

func TestAsciiDocAnchorAbove(t *testing.T) {
	doc := []string{
		"[#example]",
		"[source,rust]",
		"----",
		"let x = 42;",
		"----",
	}

	lines, found := block.Collect(block.AsciiDoc, doc, "example")
	require.True(t, found)
	require.Equal(t, []string{"let x = 42;"}, lines)
}

func TestAsciiDocDoubleBracketAnchor(t *testing.T) {
	doc := []string{
		"[[example]]",
		"[source,rust]",
		"----",
		"let x = 42;",
		"----",
	}

	lines, found := block.Collect(block.AsciiDoc, doc, "example")
	require.True(t, found)
	require.Equal(t, []string{"let x = 42;"}, lines)
}

// The keyed id attribute wins over the positional style suffix.
func TestAsciiDocKeyedIDPrecedence(t *testing.T) {
	doc := []string{
		`[source#other,rust,id="example"]`,
		"----",
		"let x = 42;",
		"----",
	}

	lines, found := block.Collect(block.AsciiDoc, doc, "example")
	require.True(t, found)
	require.Equal(t, []string{"let x = 42;"}, lines)
}

func TestAsciiDocParagraphBlock(t *testing.T) {
	doc := []string{
		"Some introduction text.",
		"",
		`[source,rust,id="example"]`,
		"let x = 42;",
		"let y = x + 1;",
		"",
		"This text should not be included.",
	}

	lines, found := block.Collect(block.AsciiDoc, doc, "example")
	require.True(t, found)
	require.Equal(t, []string{"let x = 42;", "let y = x + 1;"}, lines)
}

func TestAsciiDocParagraphBlockAtEOF(t *testing.T) {
	doc := []string{
		`[,rust,id="example"]`,
		"fn inline() {}",
	}

	lines, found := block.Collect(block.AsciiDoc, doc, "example")
	require.True(t, found)
	require.Equal(t, []string{"fn inline() {}"}, lines)
}

func TestAsciiDocMultipleBlocksOneMatch(t *testing.T) {
	doc := []string{
		"Here's the first block:",
		"",
		`[source,python,id="other"]`,
		"----",
		`print("Not this one")`,
		"----",
		"",
		"And here's the one we want:",
		"",
		`[,rust,id="example"]`,
		"----",
		"fn main() {",
		`    println!("This is the one!");`,
		"}",
		"----",
		"",
		"And another one:",
		"",
		"[source,java]",
		"----",
		`System.out.println("Also not this one");`,
		"----",
	}

	lines, found := block.Collect(block.AsciiDoc, doc, "example")
	require.True(t, found)
	require.Equal(t, []string{"fn main() {", `    println!("This is the one!");`, "}"}, lines)
}

func TestAsciiDocAttributesAfterID(t *testing.T) {
	doc := []string{
		`[,rust,id="example",role="highlight"]`,
		"----",
		"fn with_attributes() {}",
		"----",
	}

	lines, found := block.Collect(block.AsciiDoc, doc, "example")
	require.True(t, found)
	require.Equal(t, []string{"fn with_attributes() {}"}, lines)
}

func TestAsciiDocEmptyLinesWithinDelimiters(t *testing.T) {
	doc := []string{
		`[,rust,id="example"]`,
		"----",
		"fn first() {}",
		"",
		"fn second() {}",
		"----",
	}

	lines, found := block.Collect(block.AsciiDoc, doc, "example")
	require.True(t, found)
	require.Equal(t, []string{"fn first() {}", "", "fn second() {}"}, lines)
}

func TestAsciiDocExampleDelimiter(t *testing.T) {
	doc := []string{
		`[source,rust,id="example"]`,
		"======",
		"let x = 1;",
		"======",
	}

	lines, found := block.Collect(block.AsciiDoc, doc, "example")
	require.True(t, found)
	require.Equal(t, []string{"let x = 1;"}, lines)
}

// The closing delimiter must match the opener's length exactly.
func TestAsciiDocCloserLengthMismatch(t *testing.T) {
	doc := []string{
		`[source,rust,id="example"]`,
		"----",
		"let x = 1;",
		"-----",
	}

	_, found := block.Collect(block.AsciiDoc, doc, "example")
	require.False(t, found)
}

func TestAsciiDocUnterminated(t *testing.T) {
	doc := []string{
		`[source,rust,id="example"]`,
		"----",
		"let x = 1;",
	}

	_, found := block.Collect(block.AsciiDoc, doc, "example")
	require.False(t, found)
}

func TestAsciiDocSingleQuotedID(t *testing.T) {
	doc := []string{
		"[source,rust,id='example']",
		"----",
		"let x = 1;",
		"----",
	}

	lines, found := block.Collect(block.AsciiDoc, doc, "example")
	require.True(t, found)
	require.Equal(t, []string{"let x = 1;"}, lines)
}
