package varshape

import (
	"fmt"
	"maps"
	"reflect"
	"regexp"
	"slices"

	"github.com/varshape/go-varshape/ir"
	"github.com/varshape/go-varshape/refs"
)

// String returns a string schema. With no argument the string is
// unconstrained; with one argument it fixes the exact value. At most
// one value is meaningful, extras are ignored.
func String(value ...string) *ir.Node {
	n := &ir.Node{Tag: ir.StringTag}
	if len(value) > 0 {
		v := value[0]
		n.Value = &v
	}
	return n
}

// StringPattern returns a string schema constrained by re.
func StringPattern(re *regexp.Regexp) *ir.Node {
	return &ir.Node{Tag: ir.StringTag, Pattern: re}
}

// Number returns a number schema, unconstrained or fixed to one value.
func Number(value ...float64) *ir.Node {
	n := &ir.Node{Tag: ir.NumberTag}
	if len(value) > 0 {
		v := value[0]
		n.Number = &v
	}
	return n
}

// NumberRange returns a number schema constrained to the closed
// interval [lo, hi].
func NumberRange(lo, hi float64) *ir.Node {
	return &ir.Node{Tag: ir.NumberTag, Interval: &ir.Interval{Lo: lo, Hi: hi}}
}

func Boolean() *ir.Node {
	return &ir.Node{Tag: ir.BoolTag}
}

func Null() *ir.Node {
	return &ir.Node{Tag: ir.NullTag}
}

// Or returns a union of the given schemas, in argument order, without
// deduplication.
func Or(schemas ...any) (*ir.Node, error) {
	elems, err := coerceAll(schemas)
	if err != nil {
		return nil, err
	}
	return &ir.Node{Tag: ir.OrTag, Elems: elems}, nil
}

// Array returns a positional array schema: a tuple of the given
// schemas, wrapped one level under an array node.
func Array(schemas ...any) (*ir.Node, error) {
	elems, err := coerceAll(schemas)
	if err != nil {
		return nil, err
	}
	tuple := &ir.Node{Tag: ir.TupleTag, Elems: elems}
	return &ir.Node{Tag: ir.ArrayTag, Elems: []*ir.Node{tuple}}, nil
}

// ArrayOf returns a homogeneous list schema with schema as the element
// type.
func ArrayOf(schema any) (*ir.Node, error) {
	el, err := Literals(schema)
	if err != nil {
		return nil, err
	}
	return &ir.Node{Tag: ir.ListTag, Elems: []*ir.Node{el}}, nil
}

// Object returns an object schema. A single map argument routes each
// entry through the key classifier, enumerating keys in sorted order.
// Otherwise the arguments are an even-length alternation of keys and
// values, both coerced as literals; a *ir.Node key is used directly.
func Object(args ...any) (*ir.Node, error) {
	return objectNode(ir.ObjectTag, args)
}

// Dict returns a dict schema; it accepts the same argument forms as
// Object.
func Dict(args ...any) (*ir.Node, error) {
	return objectNode(ir.DictTag, args)
}

// ObjectOf is the dict builder under its map-like name.
var ObjectOf = Dict

func objectNode(tag ir.Tag, args []any) (*ir.Node, error) {
	if len(args) == 1 {
		if m, ok := mappingArg(args[0]); ok {
			pairs := make([]ir.Pair, 0, len(m))
			for _, k := range slices.Sorted(maps.Keys(m)) {
				p, err := Key(k, m[k])
				if err != nil {
					return nil, err
				}
				pairs = append(pairs, p)
			}
			return &ir.Node{Tag: tag, Pairs: pairs}, nil
		}
	}
	if len(args)%2 != 0 {
		return nil, fmt.Errorf("%s: alternating form requires an even number of arguments, got %d", tag, len(args))
	}
	pairs := make([]ir.Pair, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		k, err := Literals(args[i])
		if err != nil {
			return nil, err
		}
		v, err := Literals(args[i+1])
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, ir.Pair{Key: k, Val: v})
	}
	return &ir.Node{Tag: tag, Pairs: pairs}, nil
}

func mappingArg(v any) (map[string]any, bool) {
	rv := reflect.ValueOf(v)
	if kindOf(rv) != mappingValue {
		return nil, false
	}
	return toStringMap(rv), true
}

// Fn returns a function schema over the given argument schemas, with an
// undeclared return type.
func Fn(args ...any) (*ir.Node, error) {
	elems, err := coerceAll(args)
	if err != nil {
		return nil, err
	}
	return &ir.Node{Tag: ir.FuncTag, Elems: elems}, nil
}

// WithReturn returns a copy of fn with its return slot replaced by the
// coerced ret; argument schemas are untouched.
func WithReturn(fn *ir.Node, ret any) (*ir.Node, error) {
	r, err := Literals(ret)
	if err != nil {
		return nil, err
	}
	res := fn.Clone()
	res.Result = r
	return res, nil
}

// Desc returns schema with title and description merged into its
// options and marks the result referenceable. An empty title is
// omitted, which gives the description-only form.
func Desc(title, description string, schema *ir.Node) *ir.Node {
	res := schema.Clone()
	res.Options = res.Options.Merge(ir.Options{Title: title, Description: description})
	return res.WithRef()
}

// Role wraps schema in an annotation carrying the role name. The
// annotation is meaningful only nested inside a composite; enforcing
// that is left to consumers.
func Role(name string, schema *ir.Node) *ir.Node {
	return &ir.Node{
		Tag:     ir.AnnotationTag,
		Options: ir.Options{Role: name},
		Elems:   []*ir.Node{schema},
	}
}

// IsSchema reports whether v is a schema node.
func IsSchema(v any) bool {
	n, ok := v.(*ir.Node)
	return ok && n != nil
}

// RefKey mints a reference token for schema, so it can be used as a key
// in the map form of Object and Dict. Only schemas declared with Desc
// can be minted. Each call returns a fresh token and consumes a new
// registry entry, also for a schema minted before.
func RefKey(schema *ir.Node) (string, error) {
	if !schema.CanRef() {
		return "", fmt.Errorf("schema is not referenceable, declare it with Desc first")
	}
	return refs.Mint(schema), nil
}
