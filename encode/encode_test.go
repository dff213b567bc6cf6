package encode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/iox-format/go-iox/parse"
	"github.com/iox-format/go-iox/token"
)

const sample = `name: Alice, tags: [a, "b c", 'd'], {x: 1, y: [N, T]}, , 2.5`

func encodeString(t *testing.T, src string, opts ...EncodeOption) string {
	t.Helper()
	doc, err := parse.Parse(src)
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	if err := Encode(doc, buf, opts...); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestEncode(t *testing.T) {
	cases := []struct {
		opts []EncodeOption
		want string
	}{
		{
			want: `name: Alice, tags: [a, "b c", 'd'], {x: 1, y: [N, T]}, , 2.5` + "\n",
		},
		{
			opts: []EncodeOption{EncodeWire(true)},
			want: `name:Alice,tags:[a,"b c",'d'],{x:1,y:[N,T]},,2.5` + "\n",
		},
		{
			opts: []EncodeOption{EncodeIndent(2)},
			want: "name: Alice,\ntags: [a, \"b c\", 'd'],\n{\n  x: 1,\n  y: [N, T]\n},\n,\n2.5\n",
		},
	}
	for _, c := range cases {
		got := encodeString(t, sample, c.opts...)
		if got != c.want {
			t.Errorf("got\n%s\nwant\n%s", got, c.want)
		}
	}
}

func TestEncodeReparses(t *testing.T) {
	want := encodeString(t, sample)
	for _, opts := range [][]EncodeOption{
		{EncodeWire(true)},
		{EncodeIndent(4)},
	} {
		text := encodeString(t, sample, opts...)
		if got := encodeString(t, text); got != want {
			t.Errorf("re-encoding %q: got %q want %q", text, got, want)
		}
	}
}

func TestEncodeHeader(t *testing.T) {
	got := encodeString(t, "$n: 1, a: number\n  ---\n$n")
	if want := "$n: 1, a: number\n---\n$n\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestMustString(t *testing.T) {
	doc, err := parse.Parse("{a: {b: c}}")
	if err != nil {
		t.Fatal(err)
	}
	if got := MustString(doc.Body); got != "{a: {b: c}}" {
		t.Errorf("got %q", got)
	}
}

func TestHighlight(t *testing.T) {
	src := "# people\nname: Alice, # note\n  age: 30\n---\nN"
	toks, err := token.Tokenize(src)
	if err != nil {
		t.Fatal(err)
	}
	c := &Colors{
		Default: colorDefault,
		Map: map[Colorable]func(string, ...any) string{
			{Kind: token.TString, Attr: FieldColor}:      func(s string, _ ...any) string { return "<" + s + ">" },
			{Kind: token.TComment, Attr: CommentColor}:   func(s string, _ ...any) string { return "(" + s + ")" },
			{Kind: token.TSeparator, Attr: ValueColor}:   func(s string, _ ...any) string { return strings.ToUpper(s) + "!" },
			{Kind: token.TNull, Attr: ValueColor}:        func(s string, _ ...any) string { return "null" },
			{Kind: token.TSymbol, Attr: SepColor}:        func(s string, _ ...any) string { return s },
			{Kind: token.TNumber, Attr: ValueColor}:      func(s string, _ ...any) string { return "#" + s },
			{Kind: token.TBoolean, Attr: ValueColor}:     func(s string, _ ...any) string { return "?" },
			{Kind: token.TString, Attr: ValueColor}:      func(s string, _ ...any) string { return s },
			{Kind: token.TComment, Attr: ValueColor}:     func(s string, _ ...any) string { return "?" },
			{Kind: token.TSeparator, Attr: CommentColor}: func(s string, _ ...any) string { return "?" },
		},
	}
	want := "(# people)\n<name>: Alice, (# note)\n  <age>: #30\n---!\nnull"
	if got := Highlight(src, toks, c); got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestNewColorsPlain(t *testing.T) {
	color.NoColor = true
	src := "a: [1, T, N], 'x' # c"
	toks, err := token.Tokenize(src)
	if err != nil {
		t.Fatal(err)
	}
	if got := Highlight(src, toks, NewColors()); got != src {
		t.Errorf("got %q", got)
	}
	c := NewColors()
	for _, k := range token.Kinds() {
		if c.Map[Colorable{Kind: k, Attr: SepColor}] == nil {
			t.Errorf("no separator color for %s", k)
		}
	}
	if got := c.Color(token.TSymbol, FieldColor, "x%y"); got != "x%y" {
		t.Errorf("default color changed %q", got)
	}
}
