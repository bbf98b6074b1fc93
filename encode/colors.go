package encode

import (
	"strings"

	"github.com/varshape/go-varshape/ir"

	"github.com/fatih/color"
)

type Colorable struct {
	Tag  ir.Tag
	Attr ColorAttr
}

type ColorAttr int

const (
	TagColor ColorAttr = iota
	ValueColor
	FieldColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range ir.Tags() {
		able := Colorable{
			Tag:  t,
			Attr: TagColor,
		}
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
		able.Attr = SepColor
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
	}

	// payload colors are keyed by the descriptor tags
	able := Colorable{Attr: ValueColor}
	able.Tag = ir.ValueTag
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()
	able.Tag = ir.PatternTag
	colors.Map[able] = color.RGB(198, 198, 46).SprintfFunc()
	able.Tag = ir.IntervalTag
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Tag = ir.ReferenceTag
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()
	able.Tag = ir.NumberTag
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able = Colorable{Tag: ir.ObjectTag, Attr: FieldColor}
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
	able.Tag = ir.DictTag
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()

	able = Colorable{Tag: ir.AnnotationTag, Attr: ValueColor}
	colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t ir.Tag, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t ir.Tag, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Tag: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
