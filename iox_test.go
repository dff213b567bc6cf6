package iox

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/iox-format/go-iox/ioerr"
	"github.com/iox-format/go-iox/schema"
	"github.com/iox-format/go-iox/types"
)

func personSchema(t *testing.T) *schema.Schema {
	t.Helper()
	s, err := schema.CompileString(`name: string, age?: {number, check: "value >= 0"}, tags?: [string]`, types.DefaultRegistry())
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestDecode(t *testing.T) {
	s := personSchema(t)
	got, err := Decode(`Alice, 30, [a, b]`, s)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"name": "Alice", "age": int64(30), "tags": []any{"a", "b"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("decoded (-want +got):\n%s", diff)
	}

	if _, err := Decode(`Alice, -1`, s); !errors.Is(err, ioerr.CheckFailed) {
		t.Errorf("expected %s, got %v", ioerr.CheckFailed, err)
	}
	if _, err := Decode("a\n---\nAlice", s); !errors.Is(err, ioerr.UnexpectedToken) {
		t.Errorf("expected %s, got %v", ioerr.UnexpectedToken, err)
	}
}

func TestDecodeVarsAndDepth(t *testing.T) {
	s := personSchema(t)
	got, err := Decode(`$who, $age`, s, WithVars(types.Vars{"who": "Bob", "age": 7}))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(map[string]any{"name": "Bob", "age": int64(7)}, got); diff != "" {
		t.Errorf("decoded (-want +got):\n%s", diff)
	}
	if _, err := Decode(`Alice, 1, [[a]]`, s, WithMaxDepth(1)); !errors.Is(err, ioerr.DepthExceeded) {
		t.Errorf("expected %s, got %v", ioerr.DepthExceeded, err)
	}
}

const personDoc = `$adult: 18, $team: [x, $adult],
name: string, age?: number, team?
---
Alice, $adult, $team
`

func TestDecodeDocument(t *testing.T) {
	doc, err := DecodeDocument(personDoc)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"name": "Alice",
		"age":  int64(18),
		"team": []any{"x", int64(18)},
	}
	if diff := cmp.Diff(want, doc.Value); diff != "" {
		t.Errorf("value (-want +got):\n%s", diff)
	}
	if got := doc.Schema.Keys; !cmp.Equal(got, []string{"name", "age", "team"}) {
		t.Errorf("schema keys %v", got)
	}

	doc, err = DecodeDocument(personDoc, WithVars(types.Vars{"adult": 21}))
	if err != nil {
		t.Fatal(err)
	}
	if doc.Value["age"] != int64(21) {
		t.Errorf("option variables should win, got %v", doc.Value["age"])
	}
}

func TestDecodeDocumentSchemaMember(t *testing.T) {
	doc, err := DecodeDocument("schema: {a: number, b?: string}\n---\n1, x")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(map[string]any{"a": int64(1), "b": "x"}, doc.Value); diff != "" {
		t.Errorf("value (-want +got):\n%s", diff)
	}
	if _, err := DecodeDocument("1, x"); !errors.Is(err, ioerr.InvalidSchema) {
		t.Errorf("expected %s, got %v", ioerr.InvalidSchema, err)
	}
	if _, err := DecodeDocument("a: widget\n---\n1"); !errors.Is(err, ioerr.UnknownType) {
		t.Errorf("expected %s, got %v", ioerr.UnknownType, err)
	}
}

func TestLoad(t *testing.T) {
	s := personSchema(t)
	got, err := Load(map[string]any{"name": "Alice", "other": 1}, s)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(map[string]any{"name": "Alice"}, got); diff != "" {
		t.Errorf("loaded (-want +got):\n%s", diff)
	}
	if _, err := Load(map[string]any{"age": 3}, s); !errors.Is(err, ioerr.ValueRequired) {
		t.Errorf("expected %s, got %v", ioerr.ValueRequired, err)
	}
}

func TestEncodeDocumentRoundTrip(t *testing.T) {
	s := personSchema(t)
	v := map[string]any{"name": "Alice", "tags": []any{"a b", "c,d"}}
	text, err := EncodeDocument(v, s, WithVars(types.Vars{"adult": int64(18)}))
	if err != nil {
		t.Fatal(err)
	}
	doc, err := DecodeDocument(text)
	if err != nil {
		t.Fatalf("decoding %q: %v", text, err)
	}
	if diff := cmp.Diff(v, doc.Value); diff != "" {
		t.Errorf("value (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(types.Vars{"adult": int64(18)}, doc.Vars); diff != "" {
		t.Errorf("vars (-want +got):\n%s", diff)
	}
	if doc.Schema.String() != s.String() {
		t.Errorf("schema %q want %q", doc.Schema.String(), s.String())
	}
}

func TestEncode(t *testing.T) {
	s := personSchema(t)
	got, err := Encode(map[string]any{"name": "Alice", "age": 30}, s)
	if err != nil {
		t.Fatal(err)
	}
	if got != "Alice,30," {
		t.Errorf("got %q", got)
	}
	if _, err := Encode(map[string]any{"name": "Alice", "age": -2}, s); !errors.Is(err, ioerr.CheckFailed) {
		t.Errorf("expected %s, got %v", ioerr.CheckFailed, err)
	}
}

func TestEncodeDocumentNullableElements(t *testing.T) {
	s, err := schema.CompileString(`ids: [{number, null: T}], note*: string`, types.DefaultRegistry())
	if err != nil {
		t.Fatal(err)
	}
	v := map[string]any{"ids": []any{int64(1), nil, 2.5}, "note": nil}
	text, err := EncodeDocument(v, s)
	if err != nil {
		t.Fatal(err)
	}
	doc, err := DecodeDocument(text)
	if err != nil {
		t.Fatalf("decoding %q: %v", text, err)
	}
	if diff := cmp.Diff(v, doc.Value); diff != "" {
		t.Errorf("value (-want +got):\n%s", diff)
	}
}
