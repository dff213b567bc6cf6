package token

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/iox-format/go-iox/ioerr"
)

type posTest struct {
	in       string
	value    any
	kind     Kind
	row, col int
	index    int
}

var posTests = []posTest{
	{in: "Hello World", value: "Hello World", kind: TString, row: 1, col: 1, index: 0},
	{in: "Hello World 😀", value: "Hello World 😀", kind: TString, row: 1, col: 1, index: 0},
	{in: "   Hello World 😀   ", value: "Hello World 😀", kind: TString, row: 1, col: 4, index: 3},
	{in: "   Hello\n    World 😀   ", value: "Hello\n    World 😀", kind: TString, row: 1, col: 4, index: 3},
	{in: "   Hello\nWorld 😀   ", value: "Hello\nWorld 😀", kind: TString, row: 1, col: 4, index: 3},
	{in: "   \"Hello\nWorld 😀\"   ", value: "Hello\nWorld 😀", kind: TString, row: 1, col: 4, index: 3},
	{in: `"Hello\"World\" 😀"`, value: `Hello"World" 😀`, kind: TString, row: 1, col: 1, index: 0},
	{in: `"  \Hello\nWorld\t 😀  "`, value: "  Hello\nWorld\t 😀  ", kind: TString, row: 1, col: 1, index: 0},
	{in: "\n\n  30", value: int64(30), kind: TNumber, row: 3, col: 3, index: 4},
	{in: "\r\n\r\n  'x'", value: "x", kind: TString, row: 3, col: 3, index: 6},
	{in: "\r\r-1.5e3", value: -1500.0, kind: TNumber, row: 3, col: 1, index: 2},
}

func TestTokenPositions(t *testing.T) {
	for _, tt := range posTests {
		t.Run(tt.in, func(t *testing.T) {
			tz := New(tt.in)
			if err := tz.ReadAll(); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tz.Len() != 1 {
				t.Fatalf("expected 1 token, got %d: %v", tz.Len(), tz.Tokens())
			}
			tok := tz.Get(0)
			if tok.Value != tt.value {
				t.Errorf("value: got %#v want %#v", tok.Value, tt.value)
			}
			if tok.Kind != tt.kind {
				t.Errorf("kind: got %s want %s", tok.Kind, tt.kind)
			}
			if tok.Row != tt.row || tok.Col != tt.col || tok.Index != tt.index {
				t.Errorf("pos: got %d:%d@%d want %d:%d@%d", tok.Row, tok.Col, tok.Index, tt.row, tt.col, tt.index)
			}
		})
	}
}

func firstValue(t *testing.T, in string) any {
	t.Helper()
	toks, err := Tokenize(in)
	if err != nil {
		t.Fatalf("tokenize %q: %v", in, err)
	}
	if len(toks) == 0 {
		t.Fatalf("tokenize %q: no tokens", in)
	}
	return toks[0].Value
}

func TestStringValues(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"    Hello World \" ' \" ", `Hello World " ' "`},
		{"    Hello World \" ' ", `Hello World " '`},
		{`"Hello//\sWorld\a 😀"`, "Hello//sWorlda 😀"},
		{`    " Hello [ testing ] " `, " Hello [ testing ] "},
		{`    "---" `, "---"},
		{`    "123" `, "123"},
		{`'c:\program files\nodepad++'`, `c:\program files\nodepad++`},
		{"'c:\\program\n    files\\nodepad++'", "c:\\program\n    files\\nodepad++"},
		{`'  string with leading and trailing spaces  '`, "  string with leading and trailing spaces  "},
		{`'alert(''hello world'')'`, "alert('hello world')"},
		{`    ' Hello [ testing ] ' `, " Hello [ testing ] "},
		{`    '---' `, "---"},
		{`    '123' `, "123"},
		{`"\u0041\u00e9\ud83d\ude00"`, "Aé😀"},
		{`"\uZZ"`, "uZZ"},
	}
	for _, c := range cases {
		if got := firstValue(t, c.in); got != c.want {
			t.Errorf("%q: got %q want %q", c.in, got, c.want)
		}
	}
}

func TestNewlineNormalization(t *testing.T) {
	for _, form := range []string{"one%stwo", `"one%stwo"`, `'one%stwo'`} {
		for _, nl := range []string{"\n", "\r\n", "\r"} {
			in := sprintf(form, nl)
			if got := firstValue(t, in); got != "one\ntwo" {
				t.Errorf("%q: got %q", in, got)
			}
		}
	}
}

func sprintf(form, nl string) string {
	res := []rune{}
	for i := 0; i < len(form); i++ {
		if form[i] == '%' && i+1 < len(form) && form[i+1] == 's' {
			res = append(res, []rune(nl)...)
			i++
			continue
		}
		res = append(res, rune(form[i]))
	}
	return string(res)
}

func TestUnterminated(t *testing.T) {
	for _, in := range []string{`"    Hello World  `, `'abc`, `"abc\`, `a, "b`} {
		_, err := Tokenize(in)
		if !errors.Is(err, ioerr.StringNotClosed) {
			t.Errorf("%q: expected %s, got %v", in, ioerr.StringNotClosed, err)
		}
	}
	_, err := Tokenize(`a, "b`)
	if p := ioerr.PosOf(err); p == nil || p.Index != 3 || p.Col != 4 {
		t.Errorf("expected error at the opening quote, got %v", p)
	}
}

func TestOpenStringEOF(t *testing.T) {
	toks, err := Tokenize("trailing open string   ")
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 1 || toks[0].Value != "trailing open string" {
		t.Errorf("got %v", toks)
	}
}

type kindText struct {
	Kind Kind
	Text string
}

func kinds(toks []Token) []kindText {
	res := make([]kindText, len(toks))
	for i := range toks {
		res[i] = kindText{toks[i].Kind, toks[i].Text}
	}
	return res
}

func TestStructure(t *testing.T) {
	in := "# people\nname: string, age?: number\n---\n" +
		"Alice, 30, {Main St, T}, [N, 1.5] # trailing"
	toks, err := Tokenize(in)
	if err != nil {
		t.Fatal(err)
	}
	want := []kindText{
		{TComment, "# people"},
		{TString, "name"}, {TSymbol, ":"}, {TString, "string"}, {TSymbol, ","},
		{TString, "age?"}, {TSymbol, ":"}, {TString, "number"},
		{TSeparator, "---"},
		{TString, "Alice"}, {TSymbol, ","}, {TNumber, "30"}, {TSymbol, ","},
		{TSymbol, "{"}, {TString, "Main St"}, {TSymbol, ","}, {TBoolean, "T"}, {TSymbol, "}"}, {TSymbol, ","},
		{TSymbol, "["}, {TNull, "N"}, {TSymbol, ","}, {TNumber, "1.5"}, {TSymbol, "]"},
		{TComment, "# trailing"},
	}
	if diff := cmp.Diff(want, kinds(toks)); diff != "" {
		t.Errorf("tokens (-want +got):\n%s", diff)
	}
	if toks[0].Value != "people" {
		t.Errorf("comment value %q", toks[0].Value)
	}
	for i := 1; i < len(toks); i++ {
		if toks[i].Index <= toks[i-1].Index {
			t.Fatalf("token %d index %d not after %d", i, toks[i].Index, toks[i-1].Index)
		}
	}
}

func TestSeparatorOnlyOnItsOwnLine(t *testing.T) {
	toks, err := Tokenize("a --- b\n  ---  \nc")
	if err != nil {
		t.Fatal(err)
	}
	want := []kindText{{TString, "a --- b"}, {TSeparator, "---"}, {TString, "c"}}
	if diff := cmp.Diff(want, kinds(toks)); diff != "" {
		t.Errorf("tokens (-want +got):\n%s", diff)
	}
	if toks[1].Row != 2 || toks[1].Col != 3 {
		t.Errorf("separator at %d:%d", toks[1].Row, toks[1].Col)
	}
}

func TestScalarKinds(t *testing.T) {
	cases := []struct {
		in   string
		kind Kind
		val  any
	}{
		{"T", TBoolean, true},
		{"true", TBoolean, true},
		{"F", TBoolean, false},
		{"false", TBoolean, false},
		{"N", TNull, nil},
		{"null", TNull, nil},
		{"0", TNumber, int64(0)},
		{"-12", TNumber, int64(-12)},
		{"12.25", TNumber, 12.25},
		{"1e3", TNumber, 1000.0},
		{"99999999999999999999", TNumber, 1e20},
		{"007", TString, "007"},
		{"1.", TString, "1."},
		{"12abc", TString, "12abc"},
		{"Nope", TString, "Nope"},
	}
	for _, c := range cases {
		toks, err := Tokenize(c.in)
		if err != nil {
			t.Fatal(err)
		}
		if toks[0].Kind != c.kind || toks[0].Value != c.val {
			t.Errorf("%q: got %s %#v want %s %#v", c.in, toks[0].Kind, toks[0].Value, c.kind, c.val)
		}
	}
}

func TestGetOutOfRange(t *testing.T) {
	tz := New("a")
	if err := tz.ReadAll(); err != nil {
		t.Fatal(err)
	}
	if tz.Get(1) != nil || tz.Get(-1) != nil {
		t.Error("expected nil for out of range index")
	}
	if diff := cmp.Diff(tz.Tokens(), []Token{*tz.Get(0)}, cmpopts.EquateEmpty()); diff != "" {
		t.Error(diff)
	}
}
