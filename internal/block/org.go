package block

import "strings"

// collectOrg scans for an Org source block preceded by a #+NAME: line
// declaring name. Directives are matched case-insensitively; the #+NAME:
// line must sit directly above the #+BEGIN_SRC line.
func collectOrg(doc []string, name string) ([]string, bool) {
	pending := ""

	for i := 0; i < len(doc); i++ {
		trimmed := strings.TrimSpace(doc[i])

		if rest, ok := orgDirective(trimmed, "#+NAME:"); ok {
			pending = strings.TrimSpace(rest)

			continue
		}

		if _, ok := orgDirective(trimmed, "#+BEGIN_SRC"); !ok {
			// Any other line breaks the name/source adjacency.
			pending = ""

			continue
		}

		matched := pending == name
		pending = ""
		closed := false

		var body []string

		j := i + 1
		for ; j < len(doc); j++ {
			if _, ok := orgDirective(strings.TrimSpace(doc[j]), "#+END_SRC"); ok {
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
	}

	return nil, false
}

// orgDirective matches prefix case-insensitively at the start of line and
// returns the remainder. Unless the prefix ends in a colon, the remainder
// must be empty or start with whitespace so that #+BEGIN_SRC does not match
// a longer keyword.
func orgDirective(line, prefix string) (string, bool) {
	if len(line) < len(prefix) {
		return "", false
	}

	if !strings.EqualFold(line[:len(prefix)], prefix) {
		return "", false
	}

	rest := line[len(prefix):]

	if !strings.HasSuffix(prefix, ":") {
		if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
			return "", false
		}
	}

	return rest, true
}
