package varshape

import (
	"fmt"
	"reflect"

	"github.com/varshape/go-varshape/debug"
	"github.com/varshape/go-varshape/ir"
)

// valueKind classifies a literal once, at the boundary; coercion then
// dispatches on the kind.
type valueKind int

const (
	nodeValue valueKind = iota
	textValue
	numberValue
	sequenceValue
	mappingValue
	unknownValue
)

func kindOf(rv reflect.Value) valueKind {
	if !rv.IsValid() {
		return unknownValue
	}
	switch rv.Kind() {
	case reflect.String:
		return textValue
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return numberValue
	case reflect.Slice, reflect.Array:
		return sequenceValue
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return mappingValue
		}
	}
	return unknownValue
}

func toFloat(rv reflect.Value) float64 {
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint())
	}
	return float64(rv.Int())
}

// Literals coerces a bare value into its schema. Schemas pass through
// unchanged; text and numbers fix their exact value; a one-element
// sequence is the list shorthand; any other sequence spreads into the
// array builder; a single-entry mapping becomes a dict, a larger one an
// object. Anything else fails with ErrUnknownValue.
func Literals(v any) (*ir.Node, error) {
	if n, ok := v.(*ir.Node); ok {
		return n, nil
	}
	rv := reflect.ValueOf(v)
	kind := kindOf(rv)
	if debug.Coerce() {
		debug.Logf("coerce: %T kind=%d\n", v, int(kind))
	}
	switch kind {
	case textValue:
		return String(rv.String()), nil
	case numberValue:
		return Number(toFloat(rv)), nil
	case sequenceValue:
		if rv.Len() == 1 {
			return ArrayOf(rv.Index(0).Interface())
		}
		elems := make([]any, rv.Len())
		for i := range elems {
			elems[i] = rv.Index(i).Interface()
		}
		return Array(elems...)
	case mappingValue:
		m := toStringMap(rv)
		if len(m) == 1 {
			return Dict(m)
		}
		return Object(m)
	}
	return nil, fmt.Errorf("%w: %T", ErrUnknownValue, v)
}

func toStringMap(rv reflect.Value) map[string]any {
	res := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		res[iter.Key().String()] = iter.Value().Interface()
	}
	return res
}

func coerceAll(vs []any) ([]*ir.Node, error) {
	if len(vs) == 0 {
		return nil, nil
	}
	res := make([]*ir.Node, len(vs))
	for i, v := range vs {
		n, err := Literals(v)
		if err != nil {
			return nil, err
		}
		res[i] = n
	}
	return res, nil
}
