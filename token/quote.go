package token

import (
	"encoding/hex"
	"strings"
	"unicode"
	"unicode/utf8"
)

// NeedsQuote reports whether v must be quoted to be read back as the same
// string.
func NeedsQuote(v string) bool {
	if v == "" {
		return true
	}
	r, _ := utf8.DecodeRuneInString(v)
	if unicode.IsSpace(r) {
		return true
	}
	r, _ = utf8.DecodeLastRuneInString(v)
	if unicode.IsSpace(r) {
		return true
	}
	switch v[0] {
	case '"', '\'', '$':
		return true
	}
	if strings.ContainsAny(v, ",{}[]:#\n\r") {
		return true
	}
	if strings.HasPrefix(v, "---") {
		return true
	}
	k, _ := classify(v)
	return k != TString
}

// Quote returns v as a double quoted string.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	ucs := []byte{0, 0}
	cps := []byte{0, 0, 0, 0}
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if unicode.IsControl(r) && r <= 0xffff {
				ucs[0] = byte(r >> 8)
				ucs[1] = byte(r)
				cps = hex.AppendEncode(cps[:0], ucs)
				d = append(d, '\\', 'u', cps[0], cps[1], cps[2], cps[3])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}

// QuoteRaw returns v as a raw (single quoted) string. Raw strings cannot
// carry a carriage return.
func QuoteRaw(v string) string {
	return "'" + strings.ReplaceAll(v, "'", "''") + "'"
}

// Format renders a string value the way a serializer should: bare when
// possible, quoted otherwise.
func Format(v string) string {
	if NeedsQuote(v) {
		return Quote(v)
	}
	return v
}

// FormatKey renders a member key. A leading $ is kept bare, since keys are
// never variable references.
func FormatKey(k string) string {
	if name, ok := strings.CutPrefix(k, "$"); ok && name != "" && !NeedsQuote(name) {
		return k
	}
	return Format(k)
}
