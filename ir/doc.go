// Package ir provides the in-memory representation of structural schemas.
//
// # Overview
//
// A schema describes the shape of a JSON-like value: strings, numbers,
// objects, arrays, tuples, unions, functions, plus metadata such as a
// title, a description, or a role annotation. The ir package defines the
// node model only; the root varshape package provides the builders that
// assemble nodes, and encode renders them as text.
//
// # Node Structure
//
// A Node is a tagged value. The Tag field selects which payload slots are
// meaningful:
//
//   - StringTag: Value (exact string) or Pattern (regular expression),
//     or neither for an unconstrained string
//   - NumberTag: Number (exact value) or Interval (closed range),
//     or neither for an unconstrained number
//   - BoolTag, NullTag: no payload
//   - OrTag, TupleTag: Elems holds the alternatives/positional children
//   - ArrayTag: Elems holds a single TupleTag child
//   - ListTag: Elems holds the single element schema
//   - ObjectTag, DictTag: Pairs holds the key/value schema pairs
//   - FuncTag: Elems holds the argument schemas, Result the return schema
//     (nil when undeclared)
//   - AnnotationTag: Elems holds the wrapped schema, Options.Role the role
//
// The remaining tags (ValueTag, PatternTag, IntervalTag, ReferenceTag) name
// the payload descriptors themselves; they never appear as the Tag of a
// built node but identify payload kinds to consumers such as encode.
//
// Being a *ir.Node is what makes a value a schema: there is no runtime
// marker to check or strip. Equal compares two trees structurally and
// ignores the internal referenceability flag set by the Desc builder.
//
// # Mutability
//
// Builders treat nodes as immutable after construction. Nothing enforces
// this; callers that need a private copy should Clone.
package ir
