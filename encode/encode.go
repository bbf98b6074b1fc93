package encode

import (
	"io"
	"strconv"
	"strings"

	"github.com/varshape/go-varshape/ir"
)

type EncState struct {
	depth  int
	indent int

	Color func(ir.Tag, ColorAttr, string) string
}

// Encode writes node as builder-call notation. Scalars render on one
// line; object and dict nodes open an indented block.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if _, err := io.WriteString(w, es.render(node)); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func (es *EncState) paint(t ir.Tag, attr ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, attr, s)
}

func (es *EncState) render(n *ir.Node) string {
	if n == nil {
		return es.paint(ir.NullTag, TagColor, "null")
	}
	inner := es.renderBare(n)
	if n.Options.Title == "" && n.Options.Description == "" {
		return inner
	}
	// metadata wraps the node the way the Desc builder applied it
	args := []string{}
	if n.Options.Title != "" {
		args = append(args, es.paint(ir.ValueTag, ValueColor, strconv.Quote(n.Options.Title)))
	}
	args = append(args,
		es.paint(ir.ValueTag, ValueColor, strconv.Quote(n.Options.Description)),
		inner)
	return es.call(n.Tag, "desc", args)
}

func (es *EncState) renderBare(n *ir.Node) string {
	name := es.paint(n.Tag, TagColor, n.Tag.String())
	switch n.Tag {
	case ir.StringTag:
		switch {
		case n.Value != nil:
			return es.call(n.Tag, "string", []string{es.paint(ir.ValueTag, ValueColor, strconv.Quote(*n.Value))})
		case n.Pattern != nil:
			return es.call(n.Tag, "string", []string{es.paint(ir.PatternTag, ValueColor, "/"+n.Pattern.String()+"/")})
		}
		return name
	case ir.NumberTag:
		switch {
		case n.Number != nil:
			return es.call(n.Tag, "number", []string{es.paint(ir.ValueTag, ValueColor, formatNumber(*n.Number))})
		case n.Interval != nil:
			iv := formatNumber(n.Interval.Lo) + ".." + formatNumber(n.Interval.Hi)
			return es.call(n.Tag, "number", []string{es.paint(ir.IntervalTag, ValueColor, iv)})
		}
		return name
	case ir.BoolTag, ir.NullTag:
		return name
	case ir.OrTag:
		return es.call(n.Tag, "or", es.renderAll(n.Elems))
	case ir.ArrayTag:
		elems := n.Elems
		if len(elems) == 1 && elems[0].Tag == ir.TupleTag {
			elems = elems[0].Elems
		}
		return es.call(n.Tag, "array", es.renderAll(elems))
	case ir.TupleTag:
		return es.call(n.Tag, "tuple", es.renderAll(n.Elems))
	case ir.ListTag:
		return es.call(n.Tag, "list", es.renderAll(n.Elems))
	case ir.ObjectTag, ir.DictTag:
		return es.renderPairs(n)
	case ir.FuncTag:
		res := es.call(n.Tag, "fn", es.renderAll(n.Elems))
		if n.Result != nil {
			res += es.paint(n.Tag, SepColor, " -> ") + es.render(n.Result)
		}
		return res
	case ir.AnnotationTag:
		args := []string{es.paint(ir.AnnotationTag, ValueColor, strconv.Quote(n.Options.Role))}
		args = append(args, es.renderAll(n.Elems)...)
		return es.call(n.Tag, "role", args)
	}
	return name
}

func (es *EncState) call(t ir.Tag, name string, args []string) string {
	return es.paint(t, TagColor, name) +
		es.paint(t, SepColor, "(") +
		strings.Join(args, es.paint(t, SepColor, ", ")) +
		es.paint(t, SepColor, ")")
}

func (es *EncState) renderAll(elems []*ir.Node) []string {
	res := make([]string, len(elems))
	for i, el := range elems {
		res[i] = es.render(el)
	}
	return res
}

func (es *EncState) renderPairs(n *ir.Node) string {
	name := es.paint(n.Tag, TagColor, n.Tag.String())
	open := es.paint(n.Tag, SepColor, "{")
	closing := es.paint(n.Tag, SepColor, "}")
	if len(n.Pairs) == 0 {
		return name + " " + open + closing
	}
	es.depth++
	pad := strings.Repeat(" ", es.indent*es.depth)
	var b strings.Builder
	b.WriteString(name + " " + open + "\n")
	for _, p := range n.Pairs {
		b.WriteString(pad)
		b.WriteString(es.renderKey(n.Tag, p.Key))
		b.WriteString(es.paint(n.Tag, SepColor, ": "))
		b.WriteString(es.render(p.Val))
		b.WriteString("\n")
	}
	es.depth--
	b.WriteString(strings.Repeat(" ", es.indent*es.depth) + closing)
	return b.String()
}

func (es *EncState) renderKey(parent ir.Tag, key *ir.Node) string {
	if key.Tag == ir.StringTag && key.Options.IsZero() {
		switch {
		case key.Value != nil:
			return es.paint(parent, FieldColor, strconv.Quote(*key.Value))
		case key.Pattern != nil:
			return es.paint(ir.PatternTag, ValueColor, "/"+key.Pattern.String()+"/")
		}
	}
	// schema-valued key, render it in full
	return es.render(key)
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
