package token

import "testing"

var quoteInputs = []string{
	"",
	"plain",
	"with \"double\" quotes",
	`back\slash`,
	"tab\tand\nnewline",
	"carriage\rreturn",
	"bell\a and \x00 nul",
	"emoji 😀",
	"  padded  ",
	"c:\\program files\\",
	"// not a comment",
}

func TestQuoteRoundTrip(t *testing.T) {
	for _, s := range quoteInputs {
		q := Quote(s)
		if got := firstValue(t, q); got != s {
			t.Errorf("Quote(%q) = %s decodes to %q", s, q, got)
		}
	}
}

func TestQuoteRawRoundTrip(t *testing.T) {
	for _, s := range []string{"it's", "''", `c:\x\y`, "a\nb", ""} {
		q := QuoteRaw(s)
		if got := firstValue(t, q); got != s {
			t.Errorf("QuoteRaw(%q) = %s decodes to %q", s, q, got)
		}
	}
}

func TestNeedsQuote(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"Alice", false},
		{"Main St", false},
		{"a'b\"c", false},
		{" lead", true},
		{"trail ", true},
		{"a,b", true},
		{"a:b", true},
		{"{", true},
		{"# hash", true},
		{"\"quoted", true},
		{"'raw", true},
		{"$var", true},
		{"30", true},
		{"1.5", true},
		{"T", true},
		{"null", true},
		{"---", true},
		{"line\nbreak", true},
		{"007", false},
	}
	for _, c := range cases {
		if got := NeedsQuote(c.in); got != c.want {
			t.Errorf("NeedsQuote(%q) = %v want %v", c.in, got, c.want)
		}
	}
}

func TestFormatReadsBack(t *testing.T) {
	for _, s := range append(quoteInputs, "Alice", "007", "T", "-", "a - b") {
		f := Format(s)
		toks, err := Tokenize(f)
		if err != nil {
			t.Fatalf("%q: %v", f, err)
		}
		if s == "" {
			if len(toks) != 1 || toks[0].Value != "" {
				t.Errorf("empty string formatted as %q", f)
			}
			continue
		}
		if len(toks) != 1 || toks[0].Kind != TString || toks[0].Value != s {
			t.Errorf("Format(%q) = %q reads back as %v", s, f, toks)
		}
	}
}

func TestFormatKey(t *testing.T) {
	cases := map[string]string{
		"name":  "name",
		"$min":  "$min",
		"$":     `"$"`,
		"$a b,": `"$a b,"`,
		"a:b":   `"a:b"`,
	}
	for in, want := range cases {
		if got := FormatKey(in); got != want {
			t.Errorf("FormatKey(%q) = %q want %q", in, got, want)
		}
	}
}
