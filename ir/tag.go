package ir

import "fmt"

type Tag int

const (
	StringTag Tag = iota
	NumberTag
	BoolTag
	NullTag
	OrTag
	ArrayTag
	TupleTag
	ListTag
	ObjectTag
	DictTag
	FuncTag
	AnnotationTag
	ValueTag
	PatternTag
	IntervalTag
	ReferenceTag
)

func (t Tag) String() string {
	s, ok := map[Tag]string{
		StringTag:     "string",
		NumberTag:     "number",
		BoolTag:       "boolean",
		NullTag:       "null",
		OrTag:         "or",
		ArrayTag:      "array",
		TupleTag:      "tuple",
		ListTag:       "list",
		ObjectTag:     "object",
		DictTag:       "dict",
		FuncTag:       "function",
		AnnotationTag: "annotation",
		ValueTag:      "value",
		PatternTag:    "pattern",
		IntervalTag:   "interval",
		ReferenceTag:  "reference",
	}[t]
	if ok {
		return s
	}
	return "<unknown tag>"
}

func (t Tag) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Tag) UnmarshalText(d []byte) error {
	tt, ok := map[string]Tag{
		"string":     StringTag,
		"number":     NumberTag,
		"boolean":    BoolTag,
		"null":       NullTag,
		"or":         OrTag,
		"array":      ArrayTag,
		"tuple":      TupleTag,
		"list":       ListTag,
		"object":     ObjectTag,
		"dict":       DictTag,
		"function":   FuncTag,
		"annotation": AnnotationTag,
		"value":      ValueTag,
		"pattern":    PatternTag,
		"interval":   IntervalTag,
		"reference":  ReferenceTag,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized tag %q", d)
	}
	*t = tt
	return nil
}

func Tags() []Tag {
	return []Tag{
		StringTag,
		NumberTag,
		BoolTag,
		NullTag,
		OrTag,
		ArrayTag,
		TupleTag,
		ListTag,
		ObjectTag,
		DictTag,
		FuncTag,
		AnnotationTag,
		ValueTag,
		PatternTag,
		IntervalTag,
		ReferenceTag,
	}
}

func (t Tag) IsLeaf() bool {
	switch t {
	case StringTag, NumberTag, BoolTag, NullTag:
		return true
	default:
		return false
	}
}
