// Package util provides PO catalog parsing and filling utilities.
package util

import (
	"strings"
)

// PoEntry represents a single PO catalog record. The raw lines of each
// field are preserved verbatim so that untouched entries can be written
// back byte-for-byte.
type PoEntry struct {
	Comments    []string // comment lines, including flags and references
	MsgIDLines  []string // msgid keyword line plus quoted continuation lines
	MsgStrLines []string // msgstr keyword line plus quoted continuation lines
}

// MsgID returns the decoded logical value of the msgid field.
func (e *PoEntry) MsgID() string {
	return DecodePoField(e.MsgIDLines, "msgid")
}

// MsgStr returns the decoded logical value of the msgstr field.
func (e *PoEntry) MsgStr() string {
	return DecodePoField(e.MsgStrLines, "msgstr")
}

// HasPlural returns true if the entry carries plural-form lines
// (msgid_plural or msgstr[n]). Plural entries are kept verbatim and are
// never matched against the translation table.
func (e *PoEntry) HasPlural() bool {
	for _, line := range e.MsgIDLines {
		if strings.HasPrefix(line, "msgid_plural ") {
			return true
		}
	}
	for _, line := range e.MsgStrLines {
		if strings.HasPrefix(line, "msgstr[") {
			return true
		}
	}
	return false
}

// parseState is the state of the entry parser.
type parseState int

const (
	psIdle     parseState = iota // no entry open
	psComments                   // collecting a leading comment block
	psMsgID                      // inside the msgid field
	psMsgStr                     // inside the msgstr field
)

// lineKind classifies one line of a PO catalog.
type lineKind int

const (
	lineBlank lineKind = iota
	lineComment
	lineMsgID
	lineMsgIDPlural
	lineMsgStr
	lineMsgStrPlural
	lineContinuation
	lineOther
)

func classifyLine(line string) lineKind {
	switch {
	case strings.TrimSpace(line) == "":
		return lineBlank
	case strings.HasPrefix(line, "#"):
		return lineComment
	case strings.HasPrefix(line, "msgid_plural "):
		return lineMsgIDPlural
	case strings.HasPrefix(line, "msgid "):
		return lineMsgID
	case strings.HasPrefix(line, "msgstr["):
		return lineMsgStrPlural
	case strings.HasPrefix(line, "msgstr "):
		return lineMsgStr
	case strings.HasPrefix(line, `"`):
		return lineContinuation
	default:
		return lineOther
	}
}

// ParsePoEntries partitions a PO catalog into entries, in source order,
// preserving every structural line. The parse is a single pass driven by
// an explicit state machine; a comment, msgid or blank line seen while the
// msgstr field is open seals the current entry, so catalogs without blank
// lines between entries parse correctly. Comment lines accumulate until a
// msgid opens a real entry; a trailing entry without a final blank line is
// sealed at end of input.
func ParsePoEntries(data []byte) []*PoEntry {
	var (
		entries []*PoEntry
		cur     PoEntry
		state   = psIdle
	)

	seal := func() {
		if len(cur.MsgIDLines) > 0 {
			e := cur
			entries = append(entries, &e)
		}
		cur = PoEntry{}
		state = psIdle
	}

	for _, line := range strings.Split(string(data), "\n") {
		switch classifyLine(line) {
		case lineComment:
			if state == psMsgStr {
				seal()
			}
			cur.Comments = append(cur.Comments, line)
			if state == psIdle {
				state = psComments
			}
		case lineMsgID:
			if state == psMsgStr {
				seal()
			}
			cur.MsgIDLines = append(cur.MsgIDLines, line)
			state = psMsgID
		case lineMsgIDPlural:
			// Plural source string continues the msgid field.
			if state == psMsgID {
				cur.MsgIDLines = append(cur.MsgIDLines, line)
			}
		case lineMsgStr, lineMsgStrPlural:
			if state == psMsgID || state == psMsgStr {
				cur.MsgStrLines = append(cur.MsgStrLines, line)
				state = psMsgStr
			}
		case lineContinuation:
			switch state {
			case psMsgID:
				cur.MsgIDLines = append(cur.MsgIDLines, line)
			case psMsgStr:
				cur.MsgStrLines = append(cur.MsgStrLines, line)
			}
			// A continuation with no open field has no entry to attach to.
		case lineBlank:
			if state == psMsgStr {
				seal()
			}
			// Leading and repeated blank lines are absorbed.
		case lineOther:
			// Lines outside the PO grammar are dropped.
		}
	}
	seal()

	return entries
}

// BuildPoContent serializes entries back to catalog text. Entries are
// joined by exactly one blank line and the output ends with a single
// newline. For catalogs already in this normalized form,
// BuildPoContent(ParsePoEntries(text)) == text.
func BuildPoContent(entries []*PoEntry) []byte {
	var lines []string
	for i, e := range entries {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, e.Comments...)
		lines = append(lines, e.MsgIDLines...)
		lines = append(lines, e.MsgStrLines...)
	}
	lines = append(lines, "")
	return []byte(strings.Join(lines, "\n"))
}

// DecodePoField returns the logical string of a quoted, possibly
// multi-line field: the keyword is stripped from the first line, quotes
// from every line, and the fragments are concatenated with no separator.
// Lines of other keywords (e.g. msgid_plural inside msgid lines)
// contribute nothing.
func DecodePoField(lines []string, keyword string) string {
	var sb strings.Builder
	for _, line := range lines {
		var raw string
		if strings.HasPrefix(line, keyword+" ") {
			raw = strings.TrimSpace(strings.TrimPrefix(line, keyword+" "))
		} else if strings.HasPrefix(line, `"`) {
			raw = strings.TrimSpace(line)
		} else {
			continue
		}
		if len(raw) >= 2 && strings.HasPrefix(raw, `"`) && strings.HasSuffix(raw, `"`) {
			sb.WriteString(decodePoString(raw[1 : len(raw)-1]))
		}
	}
	return sb.String()
}

// EncodePoField returns the single-line raw representation of value.
// Replacement fields are never re-wrapped to multiple lines.
func EncodePoField(keyword, value string) []string {
	return []string{keyword + ` "` + encodePoString(value) + `"`}
}

// decodePoString interprets the backslash escapes of a PO quoted string.
// An unknown escape is kept as-is.
func decodePoString(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			sb.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case 'r':
			sb.WriteByte('\r')
		case '"':
			sb.WriteByte('"')
		case '\\':
			sb.WriteByte('\\')
		default:
			sb.WriteByte('\\')
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}

// encodePoString escapes value for use inside a PO quoted string.
func encodePoString(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}
