package block

import "strings"

// Structural characters that may form an AsciiDoc block delimiter line.
const adocDelimiterChars = "-=.*_+/"

// collectAsciiDoc scans for an AsciiDoc source block whose metadata declares
// name. Both delimited listing blocks and paragraph-attached blocks are
// recognized; the name comes from the metadata line itself or from a block
// anchor on the line directly above it.
func collectAsciiDoc(doc []string, name string) ([]string, bool) {
	for i := 0; i < len(doc); i++ {
		meta := strings.TrimSpace(doc[i])

		blockName, ok := adocMeta(meta)
		if !ok {
			continue
		}

		if blockName == "" && i > 0 {
			blockName = adocAnchor(strings.TrimSpace(doc[i-1]))
		}

		matched := blockName == name

		if i+1 >= len(doc) {
			break
		}

		ch, size, delimited := adocDelimiter(strings.TrimSpace(doc[i+1]))
		if delimited {
			closed := false

			var body []string

			j := i + 2
			for ; j < len(doc); j++ {
				trimmed := strings.TrimSpace(doc[j])
				if c, n, ok := adocDelimiter(trimmed); ok && c == ch && n == size {
					closed = true

					break
				}

				if matched {
					body = append(body, doc[j])
				}
			}

			if !closed {
				// Unterminated block: the partial body is discarded.
				return nil, false
			}

			if matched {
				return body, true
			}

			i = j

			continue
		}

		if matched {
			// Paragraph block: content follows the metadata line directly
			// and runs to the first blank line, delimiter line or EOF.
			var body []string

			for j := i + 1; j < len(doc); j++ {
				trimmed := strings.TrimSpace(doc[j])
				if trimmed == "" {
					break
				}

				if _, _, ok := adocDelimiter(trimmed); ok {
					break
				}

				body = append(body, doc[j])
			}

			if len(body) == 0 {
				return nil, false
			}

			return body, true
		}
	}

	return nil, false
}

// adocMeta recognizes a source block metadata line such as [source,rust],
// [,rust,id="example"] or [source#example,rust] and returns the block name it
// declares, if any. A keyed id attribute takes precedence over a positional
// #name suffix on the style.
func adocMeta(line string) (string, bool) {
	if !strings.HasPrefix(line, "[") || !strings.HasSuffix(line, "]") {
		return "", false
	}

	if strings.HasPrefix(line, "[[") {
		return "", false
	}

	content := line[1 : len(line)-1]
	parts := strings.Split(content, ",")

	style, id, _ := strings.Cut(strings.TrimSpace(parts[0]), "#")
	if style != "" && style != "source" {
		return "", false
	}

	// A bare [#name] line is an anchor for the block below, not the block
	// metadata itself.
	if style == "" && len(parts) == 1 {
		return "", false
	}

	name := id

	for _, part := range parts[1:] {
		part = strings.TrimSpace(part)

		if value, ok := strings.CutPrefix(part, "id="); ok {
			name = strings.Trim(value, `"'`)
		}
	}

	return name, true
}

// adocAnchor extracts the block identifier from an anchor line, either
// [#name] or [[name]].
func adocAnchor(line string) string {
	if inner, ok := cutAround(line, "[[", "]]"); ok {
		return inner
	}

	if inner, ok := cutAround(line, "[#", "]"); ok {
		return inner
	}

	return ""
}

func cutAround(s, prefix, suffix string) (string, bool) {
	if !strings.HasPrefix(s, prefix) || !strings.HasSuffix(s, suffix) {
		return "", false
	}

	inner := s[len(prefix) : len(s)-len(suffix)]
	if inner == "" {
		return "", false
	}

	return inner, true
}

// adocDelimiter recognizes a delimiter line: four or more copies of a single
// structural character and nothing else.
func adocDelimiter(line string) (byte, int, bool) {
	const minDelimiter = 4
	if len(line) < minDelimiter {
		return 0, 0, false
	}

	ch := line[0]
	if !strings.Contains(adocDelimiterChars, string(ch)) {
		return 0, 0, false
	}

	if runLen(line, ch) != len(line) {
		return 0, 0, false
	}

	return ch, len(line), true
}
