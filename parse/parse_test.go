package parse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/iox-format/go-iox/ioerr"
	"github.com/iox-format/go-iox/token"
)

// shape renders a tree as plain values so tests can compare structure
// without positions.
func shape(el Element) any {
	switch x := el.(type) {
	case nil:
		return "<empty>"
	case *token.Token:
		return x.Value
	case *KeyVal:
		return map[string]any{x.Key: shape(x.Value)}
	case *Node:
		res := []any{x.Kind.String()}
		for _, v := range x.Values {
			res = append(res, shape(v))
		}
		return res
	}
	return nil
}

type parseTest struct {
	in   string
	want any
}

var parseTests = []parseTest{
	{
		in:   ``,
		want: []any{"object"},
	},
	{
		in:   `Alice, 30`,
		want: []any{"object", "Alice", int64(30)},
	},
	{
		in:   `name: Alice, age: 30`,
		want: []any{"object", map[string]any{"name": "Alice"}, map[string]any{"age": int64(30)}},
	},
	{
		in:   `Alice,,T`,
		want: []any{"object", "Alice", "<empty>", true},
	},
	{
		in:   `,Alice,`,
		want: []any{"object", "<empty>", "Alice", "<empty>"},
	},
	{
		in:   `a: , b: N`,
		want: []any{"object", map[string]any{"a": "<empty>"}, map[string]any{"b": nil}},
	},
	{
		in: `Alice, {Main St, city: Springfield}, [1, [2], {}]`,
		want: []any{"object",
			"Alice",
			[]any{"object", "Main St", map[string]any{"city": "Springfield"}},
			[]any{"array", int64(1), []any{"array", int64(2)}, []any{"object"}},
		},
	},
	{
		in: `null: 1, T: x, 30: y, "N": z`,
		want: []any{"object",
			map[string]any{"null": int64(1)},
			map[string]any{"T": "x"},
			map[string]any{"30": "y"},
			map[string]any{"N": "z"},
		},
	},
	{
		in: "# a comment\nAlice # trailing\n, 'x'",
		want: []any{"object", "Alice", "x"},
	},
}

func TestParse(t *testing.T) {
	for _, tt := range parseTests {
		t.Run(tt.in, func(t *testing.T) {
			doc, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if doc.Header != nil {
				t.Errorf("unexpected header")
			}
			if diff := cmp.Diff(tt.want, shape(doc.Body)); diff != "" {
				t.Errorf("tree (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseHeader(t *testing.T) {
	doc, err := Parse("$min: 18, name: string, age?: number\n---\nAlice, 30\n")
	if err != nil {
		t.Fatal(err)
	}
	wantHeader := []any{"object",
		map[string]any{"$min": int64(18)},
		map[string]any{"name": "string"},
		map[string]any{"age?": "number"},
	}
	if diff := cmp.Diff(wantHeader, shape(doc.Header)); diff != "" {
		t.Errorf("header (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]any{"object", "Alice", int64(30)}, shape(doc.Body)); diff != "" {
		t.Errorf("body (-want +got):\n%s", diff)
	}
	if doc.Body.Pos.Row != 3 {
		t.Errorf("body starts on row %d", doc.Body.Pos.Row)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		in   string
		code ioerr.Code
	}{
		{`{a, b`, ioerr.UnclosedBracket},
		{`[a, b`, ioerr.UnclosedBracket},
		{`a b, }`, ioerr.UnexpectedToken},
		{`a: b: c`, ioerr.UnexpectedToken},
		{`[a: b]`, ioerr.KeyedMemberInArray},
		{`[a]: x`, ioerr.InvalidKey},
		{`{a}: x`, ioerr.InvalidKey},
		{"a\n---\nb\n---\nc", ioerr.UnexpectedToken},
		{`"unterminated`, ioerr.StringNotClosed},
	}
	for _, c := range cases {
		_, err := Parse(c.in)
		if !errors.Is(err, c.code) {
			t.Errorf("%q: expected %s, got %v", c.in, c.code, err)
		}
	}
}

func TestMaxDepth(t *testing.T) {
	in := `{{{x}}}`
	if _, err := Parse(in, MaxDepth(3)); err != nil {
		t.Fatalf("depth 3 should pass: %v", err)
	}
	_, err := Parse(in, MaxDepth(2))
	if !errors.Is(err, ioerr.DepthExceeded) {
		t.Fatalf("expected %s, got %v", ioerr.DepthExceeded, err)
	}
	if p := ioerr.PosOf(err); p == nil || p.Index != 2 {
		t.Errorf("expected error at third bracket, got %v", p)
	}
}

func TestNative(t *testing.T) {
	doc, err := Parse(`a: 1, b: [x, $v], {y: N}, T`)
	if err != nil {
		t.Fatal(err)
	}
	resolve := func(tok *token.Token) (any, bool) {
		if tok.Value == "$v" {
			return "resolved", true
		}
		return nil, false
	}
	want := map[string]any{
		"a": int64(1),
		"b": []any{"x", "resolved"},
		"2": map[string]any{"y": nil},
		"3": true,
	}
	if diff := cmp.Diff(want, Native(doc.Body, resolve)); diff != "" {
		t.Errorf("native (-want +got):\n%s", diff)
	}
}

func TestGet(t *testing.T) {
	doc, err := Parse(`a: 1, b: 2`)
	if err != nil {
		t.Fatal(err)
	}
	v, ok := doc.Body.Get("b")
	if !ok || v.(*token.Token).Value != int64(2) {
		t.Errorf("got %v %v", v, ok)
	}
	if _, ok := doc.Body.Get("c"); ok {
		t.Error("unexpected member c")
	}
}
