// Package refs holds the process-wide registry that lets a declared
// schema act as an object key. A schema is minted a token, the token is
// used as the key text, and key classification resolves it back to the
// schema.
package refs

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/varshape/go-varshape/debug"
	"github.com/varshape/go-varshape/ir"
)

// TokenPrefix is reserved for minted tokens. Literal object keys must
// never start with it: key classification is lexical, and a literal key
// carrying this prefix is silently treated as a reference.
const TokenPrefix = "!ref:"

var (
	mu      sync.RWMutex
	entries = make(map[string]*ir.Node)
)

// Mint records node under a fresh token and returns the token. Every
// call mints a new token and a new entry, even for a node minted before.
// The registry is append-only: a token handed out must stay resolvable
// for the life of the process, so entries are never evicted and the
// registry grows with each mint.
func Mint(node *ir.Node) string {
	tok := TokenPrefix + uuid.NewString()
	mu.Lock()
	entries[tok] = node
	mu.Unlock()
	if debug.Refs() {
		debug.Logf("refs: mint %s for %v\n", tok, node)
	}
	return tok
}

// Lookup resolves a token to the schema it was minted for.
func Lookup(token string) (*ir.Node, bool) {
	mu.RLock()
	node, ok := entries[token]
	mu.RUnlock()
	if debug.Refs() {
		debug.Logf("refs: lookup %s ok=%v\n", token, ok)
	}
	return node, ok
}

// IsToken reports whether s carries the reserved token prefix.
func IsToken(s string) bool {
	return strings.HasPrefix(s, TokenPrefix)
}

// Size returns the number of minted entries.
func Size() int {
	mu.RLock()
	defer mu.RUnlock()
	return len(entries)
}
