package mdscan_test

import (
	"strings"
	"testing"

	"github.com/ezerfernandes/incode/internal/mdscan"
	"github.com/stretchr/testify/require"
)

func TestScan(t *testing.T) {
	src := strings.Join([]string{
		"# Title",
		"",
		"```go example",
		`fmt.Println("hi")`,
		"```",
		"",
		"Some prose.",
		"",
		"~~~python",
		"print('hi')",
		"~~~",
		"",
	}, "\n")

	blocks, err := mdscan.Scan([]byte(src))
	require.NoError(t, err)
	require.Len(t, blocks, 2)

	first := blocks[0]
	require.Equal(t, "go", first.Lang)
	require.Equal(t, []string{"example"}, first.Attrs)
	require.Equal(t, "fmt.Println(\"hi\")\n", string(first.Code))
	require.Equal(t, 3, first.StartLine)
	require.Equal(t, 5, first.EndLine)
	require.True(t, first.Named("example"))
	require.False(t, first.Named("other"))

	second := blocks[1]
	require.Equal(t, "python", second.Lang)
	require.Empty(t, second.Attrs)
	require.Equal(t, 9, second.StartLine)
	require.Equal(t, 11, second.EndLine)
}

func TestScanNoBlocks(t *testing.T) {
	blocks, err := mdscan.Scan([]byte("just some *markdown* text\n"))
	require.NoError(t, err)
	require.Empty(t, blocks)
}

func TestScanQuotedAttr(t *testing.T) {
	src := strings.Join([]string{
		"```sh setup 'multi word'",
		"echo hi",
		"```",
		"",
	}, "\n")

	blocks, err := mdscan.Scan([]byte(src))
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	require.Equal(t, []string{"setup", "multi word"}, blocks[0].Attrs)
	require.Equal(t, "setup multi word", blocks[0].Attr())
}
