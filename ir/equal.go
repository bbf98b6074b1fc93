package ir

import "regexp"

// Equal reports whether a and b describe the same schema tree. The
// internal referenceability marker is excluded from the comparison.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Tag != b.Tag {
		return false
	}
	if a.Options != b.Options {
		return false
	}
	if !equalString(a.Value, b.Value) {
		return false
	}
	if !equalPattern(a.Pattern, b.Pattern) {
		return false
	}
	if !equalFloat(a.Number, b.Number) {
		return false
	}
	if !equalInterval(a.Interval, b.Interval) {
		return false
	}
	if len(a.Elems) != len(b.Elems) {
		return false
	}
	for i := range a.Elems {
		if !Equal(a.Elems[i], b.Elems[i]) {
			return false
		}
	}
	if len(a.Pairs) != len(b.Pairs) {
		return false
	}
	for i := range a.Pairs {
		if !Equal(a.Pairs[i].Key, b.Pairs[i].Key) {
			return false
		}
		if !Equal(a.Pairs[i].Val, b.Pairs[i].Val) {
			return false
		}
	}
	return Equal(a.Result, b.Result)
}

func equalString(a, b *string) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return a == nil || *a == *b
}

func equalPattern(a, b *regexp.Regexp) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return a == nil || a.String() == b.String()
}

func equalFloat(a, b *float64) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return a == nil || *a == *b
}

func equalInterval(a, b *Interval) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return a == nil || *a == *b
}
