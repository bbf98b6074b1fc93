package varshape

import "errors"

var (
	// ErrUnknownValue reports a literal with no schema interpretation:
	// not a schema, text, number, sequence, or string-keyed mapping.
	ErrUnknownValue = errors.New("unknown schema value")

	// ErrUnresolvedReference reports a reference-classified key whose
	// token was never minted.
	ErrUnresolvedReference = errors.New("unresolved schema reference")
)
