// Package varshape builds structural schemas: in-memory descriptions of
// the shape of JSON-like values, consumed by validators and document
// generators elsewhere.
//
// Schemas are assembled from builder functions and from bare literals:
//
//	person, err := varshape.Object(map[string]any{
//	    "name":   varshape.String(),
//	    "age":    varshape.NumberRange(0, 150),
//	    "/x-.*/": varshape.String(),
//	})
//
// Literals coerce implicitly: a string becomes an exact-value string
// schema, a number an exact-value number schema, a one-element slice the
// list shorthand, and maps become object or dict schemas. Literals is
// the entry point for bare values.
//
// A schema given a title with Desc can itself be used as an object key:
// RefKey mints a token that the key classifier resolves back to the
// schema during object construction. In the alternating-arguments form
// of Object a schema may also be passed directly as the key.
package varshape
