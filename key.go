package varshape

import (
	"fmt"
	"regexp"

	"github.com/varshape/go-varshape/debug"
	"github.com/varshape/go-varshape/ir"
	"github.com/varshape/go-varshape/refs"
)

// KeyKind classifies a textual object key.
type KeyKind int

const (
	// StringKey is the default: the key is an exact string.
	StringKey KeyKind = iota
	// PatternKey keys are delimited by slashes, /.../, and match as a
	// regular expression.
	PatternKey
	// ReferenceKey keys carry the reserved refs.TokenPrefix and resolve
	// to a previously minted schema.
	ReferenceKey
)

func (k KeyKind) Tag() ir.Tag {
	switch k {
	case PatternKey:
		return ir.PatternTag
	case ReferenceKey:
		return ir.ReferenceTag
	}
	return ir.StringTag
}

func (k KeyKind) String() string {
	return k.Tag().String()
}

// KeyType classifies key lexically. A literal key that happens to start
// with the reserved token prefix is classified as a reference; that is
// a documented limitation, which is why the prefix is reserved.
func KeyType(key string) KeyKind {
	switch {
	case refs.IsToken(key):
		return ReferenceKey
	case len(key) >= 2 && key[0] == '/' && key[len(key)-1] == '/':
		return PatternKey
	}
	return StringKey
}

// Key resolves a raw object key and its value to a schema pair. The
// value always coerces through Literals; the key schema depends on the
// classification: an exact string, a pattern string built from the text
// between the slashes, or the registry entry the token was minted for.
func Key(rawKey string, value any) (ir.Pair, error) {
	val, err := Literals(value)
	if err != nil {
		return ir.Pair{}, err
	}
	kind := KeyType(rawKey)
	if debug.Keys() {
		debug.Logf("key: %q classified %s\n", rawKey, kind)
	}
	switch kind {
	case PatternKey:
		re, err := regexp.Compile(rawKey[1 : len(rawKey)-1])
		if err != nil {
			return ir.Pair{}, fmt.Errorf("key pattern %q: %w", rawKey, err)
		}
		return ir.Pair{Key: StringPattern(re), Val: val}, nil
	case ReferenceKey:
		n, ok := refs.Lookup(rawKey)
		if !ok {
			return ir.Pair{}, fmt.Errorf("%w: %q", ErrUnresolvedReference, rawKey)
		}
		return ir.Pair{Key: n, Val: val}, nil
	}
	return ir.Pair{Key: String(rawKey), Val: val}, nil
}
