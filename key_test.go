package varshape

import (
	"errors"
	"testing"

	"github.com/varshape/go-varshape/ir"
	"github.com/varshape/go-varshape/refs"
)

func TestKeyType(t *testing.T) {
	tests := []struct {
		key  string
		want KeyKind
	}{
		{"len", StringKey},
		{"", StringKey},
		{"/fo*/", PatternKey},
		{"/x/", PatternKey},
		{"/", StringKey},
		{"no/slash/inside", StringKey},
		{"/leading-only", StringKey},
		{refs.TokenPrefix + "whatever", ReferenceKey},
		// the reserved prefix wins even for user-chosen keys, a
		// documented limitation of the lexical classifier
		{"!ref:i-meant-this-literally", ReferenceKey},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := KeyType(tt.key); got != tt.want {
				t.Errorf("KeyType(%q) = %s, want %s", tt.key, got, tt.want)
			}
		})
	}
}

func TestKeyKindStrings(t *testing.T) {
	if StringKey.String() != "string" || PatternKey.String() != "pattern" || ReferenceKey.String() != "reference" {
		t.Errorf("kind strings: %s %s %s", StringKey, PatternKey, ReferenceKey)
	}
}

func TestKeyStringForm(t *testing.T) {
	p, err := Key("len", 10)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(p.Key, String("len")) {
		t.Errorf("key schema = %+v", p.Key)
	}
	if !ir.Equal(p.Val, Number(10)) {
		t.Errorf("value schema = %+v", p.Val)
	}
}

func TestKeyPatternForm(t *testing.T) {
	p, err := Key("/fo*/", Number(5))
	if err != nil {
		t.Fatal(err)
	}
	if p.Key.Tag != ir.StringTag || p.Key.Pattern == nil {
		t.Fatalf("key schema = %+v", p.Key)
	}
	// delimiters are stripped, the source is preserved exactly
	if p.Key.Pattern.String() != "fo*" {
		t.Errorf("pattern source = %q, want %q", p.Key.Pattern.String(), "fo*")
	}
	if !ir.Equal(p.Val, Number(5)) {
		t.Errorf("value schema = %+v", p.Val)
	}

	if _, err := Key("/(/", Number()); err == nil {
		t.Error("invalid pattern did not fail")
	}
}

func TestKeyReferenceRoundTrip(t *testing.T) {
	s := Desc("Name", "desc", String())
	tok, err := RefKey(s)
	if err != nil {
		t.Fatal(err)
	}

	obj := mustNode(t)(Object(map[string]any{tok: Number()}))
	if len(obj.Pairs) != 1 {
		t.Fatalf("object shape wrong: %+v", obj)
	}
	if obj.Pairs[0].Key != s {
		t.Error("reference key did not resolve to the minted schema")
	}
	if !ir.Equal(obj.Pairs[0].Key, s) {
		t.Error("resolved key is not structurally equal to the schema")
	}
}

func TestKeyReferenceEachUseMints(t *testing.T) {
	s := Desc("Name", "desc", Number())
	tok1, err := RefKey(s)
	if err != nil {
		t.Fatal(err)
	}
	tok2, err := RefKey(s)
	if err != nil {
		t.Fatal(err)
	}
	if tok1 == tok2 {
		t.Error("reusing a schema as a key did not mint a fresh token")
	}
}

func TestKeyUnresolvedReference(t *testing.T) {
	_, err := Key(refs.TokenPrefix+"never-minted", Number())
	if !errors.Is(err, ErrUnresolvedReference) {
		t.Errorf("error = %v, want ErrUnresolvedReference", err)
	}

	// also via the object builder
	_, err = Object(map[string]any{refs.TokenPrefix + "never-minted": 1})
	if !errors.Is(err, ErrUnresolvedReference) {
		t.Errorf("object error = %v, want ErrUnresolvedReference", err)
	}
}

func TestRefKeyRequiresDesc(t *testing.T) {
	if _, err := RefKey(String()); err == nil {
		t.Error("RefKey accepted a schema that was never declared with Desc")
	}
}

func TestObjectMapFormClassifiesKeys(t *testing.T) {
	obj := mustNode(t)(Object(map[string]any{
		"len":   10,
		"/fo*/": Number(5),
	}))
	if len(obj.Pairs) != 2 {
		t.Fatalf("object shape wrong: %+v", obj)
	}
	// sorted key order puts "/fo*/" first
	pat := obj.Pairs[0]
	if pat.Key.Pattern == nil || pat.Key.Pattern.String() != "fo*" {
		t.Errorf("pattern key = %+v", pat.Key)
	}
	lit := obj.Pairs[1]
	if !ir.Equal(lit.Key, String("len")) || !ir.Equal(lit.Val, Number(10)) {
		t.Errorf("literal pair = %+v", lit)
	}
}
