package block

import (
	"strings"

	"github.com/google/shlex"
)

// collectMarkdown scans for a CommonMark-style fenced code block whose info
// string carries name as an attribute word after the language tag.
func collectMarkdown(doc []string, name string) ([]string, bool) {
	for i := 0; i < len(doc); i++ {
		ch, size, indent, info, ok := markdownFence(doc[i])
		if !ok {
			continue
		}

		matched := fenceNamed(info, name)
		closed := false

		var body []string

		j := i + 1
		for ; j < len(doc); j++ {
			if markdownCloses(doc[j], ch, size, indent) {
				closed = true

				break
			}

			if matched {
				body = append(body, stripIndent(doc[j], indent))
			}
		}

		if !closed {
			// Unterminated fence: the partial body is discarded.
			return nil, false
		}

		if matched {
			return body, true
		}

		i = j
	}

	return nil, false
}

// markdownFence recognizes an opening fence: three or more backticks or
// tildes, optionally indented, followed by the info string.
func markdownFence(line string) (ch byte, size, indent int, info string, ok bool) {
	trimmed := strings.TrimLeft(line, " ")
	if trimmed == "" {
		return 0, 0, 0, "", false
	}

	ch = trimmed[0]
	if ch != '`' && ch != '~' {
		return 0, 0, 0, "", false
	}

	size = runLen(trimmed, ch)

	const minFence = 3
	if size < minFence {
		return 0, 0, 0, "", false
	}

	return ch, size, len(line) - len(trimmed), trimmed[size:], true
}

// markdownCloses reports whether line closes a fence opened with ch repeated
// size times at the given indent. The closing run may be longer than the
// opener but carries no info string.
func markdownCloses(line string, ch byte, size, indent int) bool {
	trimmed := strings.TrimLeft(line, " ")
	if len(line)-len(trimmed) != indent {
		return false
	}

	if trimmed == "" || trimmed[0] != ch {
		return false
	}

	n := runLen(trimmed, ch)
	if n < size {
		return false
	}

	return strings.TrimSpace(trimmed[n:]) == ""
}

// fenceNamed reports whether name appears as a whole attribute word after the
// language tag on a fence's info string.
func fenceNamed(info, name string) bool {
	words, err := shlex.Split(info)
	if err != nil {
		words = strings.Fields(info)
	}

	if len(words) < 2 {
		return false
	}

	for _, word := range words[1:] {
		if word == name {
			return true
		}
	}

	return false
}

func stripIndent(line string, indent int) string {
	if len(line) >= indent {
		return line[indent:]
	}

	return line
}
