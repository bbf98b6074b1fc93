package varshape

import (
	"regexp"
	"testing"

	"github.com/varshape/go-varshape/ir"
)

func TestStringBuilder(t *testing.T) {
	bare := String()
	if bare.Tag != ir.StringTag || bare.Value != nil || bare.Pattern != nil {
		t.Errorf("String() = %+v", bare)
	}

	val := String("foo")
	if val.Value == nil || *val.Value != "foo" {
		t.Errorf("String(foo) = %+v", val)
	}

	re := regexp.MustCompile("fo*")
	pat := StringPattern(re)
	if pat.Tag != ir.StringTag || pat.Pattern == nil || pat.Pattern.String() != "fo*" {
		t.Errorf("StringPattern = %+v", pat)
	}
}

func TestNumberBuilder(t *testing.T) {
	bare := Number()
	if bare.Tag != ir.NumberTag || bare.Number != nil || bare.Interval != nil {
		t.Errorf("Number() = %+v", bare)
	}

	val := Number(5)
	if val.Number == nil || *val.Number != 5 {
		t.Errorf("Number(5) = %+v", val)
	}

	iv := NumberRange(1, 10)
	if iv.Interval == nil || (*iv.Interval != ir.Interval{Lo: 1, Hi: 10}) {
		t.Errorf("NumberRange(1, 10) = %+v", iv)
	}
}

func TestConstantBuilders(t *testing.T) {
	if Boolean().Tag != ir.BoolTag {
		t.Error("Boolean() tag wrong")
	}
	if Null().Tag != ir.NullTag {
		t.Error("Null() tag wrong")
	}
}

func TestOrPreservesOrder(t *testing.T) {
	got := mustNode(t)(Or(Number(5), String("foo")))
	if got.Tag != ir.OrTag || len(got.Elems) != 2 {
		t.Fatalf("Or shape wrong: %+v", got)
	}
	if !ir.Equal(got.Elems[0], Number(5)) || !ir.Equal(got.Elems[1], String("foo")) {
		t.Errorf("Or reordered its arguments: %+v", got.Elems)
	}

	// duplicates are kept
	dup := mustNode(t)(Or(Number(5), Number(5)))
	if len(dup.Elems) != 2 {
		t.Errorf("Or deduplicated: %+v", dup.Elems)
	}
}

func TestArrayWrapsTuple(t *testing.T) {
	got := mustNode(t)(Array(Number(), String()))
	if got.Tag != ir.ArrayTag || len(got.Elems) != 1 {
		t.Fatalf("Array outer shape wrong: %+v", got)
	}
	tuple := got.Elems[0]
	if tuple.Tag != ir.TupleTag || len(tuple.Elems) != 2 {
		t.Fatalf("Array inner tuple wrong: %+v", tuple)
	}
	if tuple.Elems[0].Tag != ir.NumberTag || tuple.Elems[1].Tag != ir.StringTag {
		t.Errorf("tuple children wrong: %+v", tuple.Elems)
	}
}

func TestObjectAlternatingForm(t *testing.T) {
	got := mustNode(t)(Object("len", 10, "name", String()))
	if got.Tag != ir.ObjectTag || len(got.Pairs) != 2 {
		t.Fatalf("Object shape wrong: %+v", got)
	}
	// alternating keys coerce as literals, bypassing the classifier
	if !ir.Equal(got.Pairs[0].Key, String("len")) || !ir.Equal(got.Pairs[0].Val, Number(10)) {
		t.Errorf("first pair wrong: %+v", got.Pairs[0])
	}
	if !ir.Equal(got.Pairs[1].Key, String("name")) || !ir.Equal(got.Pairs[1].Val, String()) {
		t.Errorf("second pair wrong: %+v", got.Pairs[1])
	}

	if _, err := Object("len", 10, "name"); err == nil {
		t.Error("odd-length alternating form did not fail")
	}
}

func TestObjectSchemaAsKey(t *testing.T) {
	keySchema := Desc("Name", "the name", String())
	got := mustNode(t)(Object(keySchema, Number()))
	if len(got.Pairs) != 1 {
		t.Fatalf("Object shape wrong: %+v", got)
	}
	if got.Pairs[0].Key != keySchema {
		t.Error("schema key was not used directly")
	}
}

func TestDictAndObjectOf(t *testing.T) {
	d := mustNode(t)(Dict(map[string]any{"len": 10}))
	if d.Tag != ir.DictTag {
		t.Errorf("Dict tag = %s", d.Tag)
	}
	o := mustNode(t)(ObjectOf(map[string]any{"len": 10}))
	if !ir.Equal(d, o) {
		t.Error("ObjectOf is not the Dict builder")
	}
}

func TestFnAndWithReturn(t *testing.T) {
	fn := mustNode(t)(Fn(Number(), String()))
	if fn.Tag != ir.FuncTag || len(fn.Elems) != 2 || fn.Result != nil {
		t.Fatalf("Fn shape wrong: %+v", fn)
	}

	ret := mustNode(t)(WithReturn(fn, Boolean()))
	if ret == fn {
		t.Fatal("WithReturn returned the original node")
	}
	if ret.Result == nil || ret.Result.Tag != ir.BoolTag {
		t.Errorf("return slot wrong: %+v", ret.Result)
	}
	if fn.Result != nil {
		t.Error("WithReturn mutated the original")
	}
	if len(ret.Elems) != 2 || !ir.Equal(ret.Elems[0], Number()) || !ir.Equal(ret.Elems[1], String()) {
		t.Errorf("argument schemas changed: %+v", ret.Elems)
	}

	// literal return types coerce
	lit := mustNode(t)(WithReturn(fn, 5))
	if !ir.Equal(lit.Result, Number(5)) {
		t.Errorf("literal return = %+v", lit.Result)
	}
}

func TestDesc(t *testing.T) {
	base := String()
	got := Desc("T", "D", base)
	want := ir.Options{Title: "T", Description: "D"}
	if got.Options != want {
		t.Errorf("Desc options = %+v, want %+v", got.Options, want)
	}
	if base.Options != (ir.Options{}) {
		t.Error("Desc mutated its input")
	}
	if !got.CanRef() {
		t.Error("Desc result is not referenceable")
	}
	if !ir.Equal(got, &ir.Node{Tag: ir.StringTag, Options: want}) {
		t.Errorf("Desc changed the schema beyond options: %+v", got)
	}

	// description-only form omits the title
	do := Desc("", "D", String())
	if do.Options != (ir.Options{Description: "D"}) {
		t.Errorf("description-only options = %+v", do.Options)
	}

	// existing entries survive unless overwritten
	again := Desc("", "D2", got)
	if again.Options != (ir.Options{Title: "T", Description: "D2"}) {
		t.Errorf("merged options = %+v", again.Options)
	}
}

func TestRole(t *testing.T) {
	inner := String()
	got := Role("key", inner)
	if got.Tag != ir.AnnotationTag {
		t.Errorf("Role tag = %s", got.Tag)
	}
	if got.Options.Role != "key" {
		t.Errorf("Role options = %+v", got.Options)
	}
	if len(got.Elems) != 1 || got.Elems[0] != inner {
		t.Errorf("Role did not wrap its schema: %+v", got.Elems)
	}
}

func TestIsSchema(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want bool
	}{
		{"builder result", String(), true},
		{"nil node", (*ir.Node)(nil), false},
		{"plain slice", []any{"string", map[string]any{}}, false},
		{"string", "string", false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSchema(tt.in); got != tt.want {
				t.Errorf("IsSchema(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
