package ir

import "regexp"

// Options carries schema metadata. The empty string means an entry is
// absent; options never store explicit empty values.
type Options struct {
	Title       string
	Description string

	// Role is set only on AnnotationTag nodes.
	Role string
}

func (o Options) IsZero() bool {
	return o == Options{}
}

// Merge returns o extended by the non-empty entries of with. Existing
// entries are kept unless with overwrites them.
func (o Options) Merge(with Options) Options {
	if with.Title != "" {
		o.Title = with.Title
	}
	if with.Description != "" {
		o.Description = with.Description
	}
	if with.Role != "" {
		o.Role = with.Role
	}
	return o
}

// Interval is a closed numeric range.
type Interval struct {
	Lo, Hi float64
}

// Pair is one key/value entry of an object or dict schema. Key is itself
// a schema: an exact string, a pattern string, or a schema supplied
// directly as a key.
type Pair struct {
	Key *Node
	Val *Node
}

type Node struct {
	Tag     Tag
	Options Options

	// Elems holds children for or/tuple nodes, the single element schema
	// of a list, the wrapped schema of an annotation, the inner tuple of
	// an array, and the argument schemas of a function.
	Elems []*Node

	// Pairs holds the entries of object/dict nodes, in caller order
	// (alternating-arguments form) or sorted-key order (map form).
	Pairs []Pair

	// Result is the return schema of a function node, nil when undeclared.
	Result *Node

	Value    *string
	Pattern  *regexp.Regexp
	Number   *float64
	Interval *Interval

	// refable marks nodes produced by the Desc builder; only such nodes
	// may be minted as reference keys. Not part of structural equality.
	refable bool
}

func (n *Node) WithRef() *Node {
	n.refable = true
	return n
}

func (n *Node) CanRef() bool {
	return n.refable
}

func (n *Node) Clone() *Node {
	res := &Node{}
	return n.CloneTo(res)
}

func (n *Node) CloneTo(dst *Node) *Node {
	dst.Tag = n.Tag
	dst.Options = n.Options
	dst.refable = n.refable
	if n.Elems != nil {
		dst.Elems = make([]*Node, len(n.Elems))
		for i, el := range n.Elems {
			dst.Elems[i] = el.Clone()
		}
	}
	if n.Pairs != nil {
		dst.Pairs = make([]Pair, len(n.Pairs))
		for i, p := range n.Pairs {
			dst.Pairs[i] = Pair{Key: p.Key.Clone(), Val: p.Val.Clone()}
		}
	}
	if n.Result != nil {
		dst.Result = n.Result.Clone()
	}
	if n.Value != nil {
		v := *n.Value
		dst.Value = &v
	}
	// regexps are immutable, sharing is fine
	dst.Pattern = n.Pattern
	if n.Number != nil {
		f := *n.Number
		dst.Number = &f
	}
	if n.Interval != nil {
		iv := *n.Interval
		dst.Interval = &iv
	}
	return dst
}

// Visit walks the tree in pre/post order, diving into children when the
// callback returns true for the pre visit.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, el := range n.Elems {
			if err := el.Visit(f); err != nil {
				return err
			}
		}
		for _, p := range n.Pairs {
			if err := p.Key.Visit(f); err != nil {
				return err
			}
			if err := p.Val.Visit(f); err != nil {
				return err
			}
		}
		if n.Result != nil {
			if err := n.Result.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}
