package block

import "strings"

// collectTextile scans for a Textile bc block whose attribute groups carry
// #name. Content starts on the marker line itself. A single-period marker
// runs to the first blank line; a double-period marker runs to the next
// Textile block tag or EOF, with trailing blank lines trimmed.
func collectTextile(doc []string, name string) ([]string, bool) {
	for i := 0; i < len(doc); i++ {
		blockName, extended, first, ok := textileMarker(strings.TrimSpace(doc[i]))
		if !ok || blockName != name {
			continue
		}

		body := []string{first}

		if !extended {
			for j := i + 1; j < len(doc); j++ {
				if strings.TrimSpace(doc[j]) == "" {
					break
				}

				body = append(body, doc[j])
			}

			return body, true
		}

		for j := i + 1; j < len(doc); j++ {
			if textileBlockTag(strings.TrimSpace(doc[j])) {
				for len(body) > 0 && strings.TrimSpace(body[len(body)-1]) == "" {
					body = body[:len(body)-1]
				}

				return body, true
			}

			body = append(body, doc[j])
		}

		return body, true
	}

	return nil, false
}

// textileMarker parses a bc marker line such as bc(rust#example). code or
// bc[rust](#example).. code. The name is the #name fragment inside a
// parenthesised group; the language group is not part of the match. Content
// must follow the period(s) on the same line.
func textileMarker(line string) (name string, extended bool, first string, ok bool) {
	rest, found := strings.CutPrefix(line, "bc")
	if !found {
		return "", false, "", false
	}

	i := 0

groups:
	for i < len(rest) {
		switch rest[i] {
		case '(':
			end := strings.IndexByte(rest[i:], ')')
			if end < 0 {
				return "", false, "", false
			}

			group := rest[i+1 : i+end]
			if hash := strings.IndexByte(group, '#'); hash >= 0 {
				name = group[hash+1:]
			}

			i += end + 1
		case '[':
			end := strings.IndexByte(rest[i:], ']')
			if end < 0 {
				return "", false, "", false
			}

			i += end + 1
		case '<', '>', '=':
			i++
		case '.':
			break groups
		default:
			return "", false, "", false
		}
	}

	if i >= len(rest) || rest[i] != '.' || name == "" {
		return "", false, "", false
	}

	i++

	if i < len(rest) && rest[i] == '.' {
		extended = true
		i++
	}

	if i >= len(rest) || rest[i] != ' ' {
		return "", false, "", false
	}

	first = strings.TrimSpace(rest[i+1:])
	if first == "" {
		return "", false, "", false
	}

	return name, extended, first, true
}

var textileTags = []string{
	"notextile", "table", "pre", "bq", "bc",
	"h1", "h2", "h3", "h4", "h5", "h6", "p",
}

// textileBlockTag reports whether line starts a new Textile block, ending an
// extended code block. A block tag is a known tag name followed by optional
// alignment, indentation, class or language decorations and a period.
func textileBlockTag(line string) bool {
	for _, tag := range textileTags {
		rest, ok := strings.CutPrefix(line, tag)
		if !ok {
			continue
		}

		if textileTagFormat(rest) {
			return true
		}
	}

	return false
}

// textileTagFormat scans the decoration characters between a block tag name
// and its period: alignment (<, >, =), indentation parens and bracketed or
// parenthesised attributes.
func textileTagFormat(s string) bool {
	i := 0

	for i < len(s) {
		switch s[i] {
		case '.':
			return true
		case '<', '>', '=', ')':
			i++
		case '(':
			i++
			depth := 1

			for i < len(s) && depth > 0 {
				if s[i] == '.' {
					// Bare indentation paren, period follows.
					break
				}

				switch s[i] {
				case '(':
					depth++
				case ')':
					depth--
				}

				i++
			}
		case '[':
			i++

			for i < len(s) && s[i] != ']' {
				i++
			}

			if i < len(s) {
				i++
			}
		default:
			return false
		}
	}

	return false
}
