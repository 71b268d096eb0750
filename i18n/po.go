package i18n

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// loadPO parses a gettext PO catalog. The supported subset covers what
// translation tooling produces for skills: msgid/msgstr pairs, plural forms
// and multi-line string continuations. The header entry (empty msgid) and
// comments are skipped. Plural variants are stored as additional variants of
// the singular key.
func loadPO(path string) (map[string][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	catalog := map[string][]string{}

	var msgid string
	var msgstrs []string
	target := -1 // index into msgstrs currently receiving continuations, -1 for msgid

	flush := func() {
		if msgid == "" {
			return
		}
		for _, s := range msgstrs {
			if s != "" {
				catalog[msgid] = append(catalog[msgid], s)
			}
		}
	}

	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "" || strings.HasPrefix(line, "#"):
			continue
		case strings.HasPrefix(line, "msgid_plural"):
			// plural ids are not used as keys
			target = -2
		case strings.HasPrefix(line, "msgid"):
			flush()
			s, err := poString(line[len("msgid"):])
			if err != nil {
				return nil, ErrInvalidCatalog.Msg(fmt.Sprintf("%s:%d: %v", path, lineno, err))
			}
			msgid, msgstrs, target = s, nil, -1
		case strings.HasPrefix(line, "msgstr["):
			end := strings.IndexByte(line, ']')
			if end < 0 {
				return nil, ErrInvalidCatalog.Msg(fmt.Sprintf("%s:%d: malformed plural msgstr", path, lineno))
			}
			s, err := poString(line[end+1:])
			if err != nil {
				return nil, ErrInvalidCatalog.Msg(fmt.Sprintf("%s:%d: %v", path, lineno, err))
			}
			msgstrs = append(msgstrs, s)
			target = len(msgstrs) - 1
		case strings.HasPrefix(line, "msgstr"):
			s, err := poString(line[len("msgstr"):])
			if err != nil {
				return nil, ErrInvalidCatalog.Msg(fmt.Sprintf("%s:%d: %v", path, lineno, err))
			}
			msgstrs = append(msgstrs, s)
			target = len(msgstrs) - 1
		case strings.HasPrefix(line, `"`):
			s, err := poString(line)
			if err != nil {
				return nil, ErrInvalidCatalog.Msg(fmt.Sprintf("%s:%d: %v", path, lineno, err))
			}
			switch target {
			case -1:
				msgid += s
			case -2:
				// continuation of msgid_plural, ignored
			default:
				msgstrs[target] += s
			}
		default:
			return nil, ErrInvalidCatalog.Msg(fmt.Sprintf("%s:%d: unexpected input", path, lineno))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flush()
	return catalog, nil
}

// poString unquotes a PO string literal, handling the usual escapes.
func poString(s string) (string, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return "", fmt.Errorf("expected quoted string, got %q", s)
	}
	return strconv.Unquote(s)
}
