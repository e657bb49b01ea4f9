package xpath

import (
	"strconv"

	"github.com/gocleaner/htmlxpath/dom"
)

// Kind tags the four cases a Value can hold.
type Kind int

const (
	KindElement Kind = iota
	KindString
	KindNumber
	KindBoolean
)

// Value is the evaluator's uniform result type.
type Value struct {
	Kind    Kind
	Element dom.Element
	Str     string
	Num     float64
	Bool    bool
}

func ElementValue(e dom.Element) Value { return Value{Kind: KindElement, Element: e} }
func StringValue(s string) Value       { return Value{Kind: KindString, Str: s} }
func NumberValue(n float64) Value      { return Value{Kind: KindNumber, Num: n} }
func BooleanValue(b bool) Value        { return Value{Kind: KindBoolean, Bool: b} }

// Values is an ordered Value-list. Position 1 is Values[0].
type Values []Value

// String renders v the way a caller is expected to serialize it:
// element text content, exact integers without a decimal point, and
// booleans as "true"/"false".
func (v Value) String() string {
	switch v.Kind {
	case KindElement:
		if v.Element == nil {
			return ""
		}
		return v.Element.TextContent()
	case KindString:
		return v.Str
	case KindNumber:
		return formatNumber(v.Num)
	case KindBoolean:
		if v.Bool {
			return "true"
		}
		return "false"
	default:
		return ""
	}
}

func formatNumber(n float64) string {
	if i := int64(n); float64(i) == n {
		return strconv.FormatInt(i, 10)
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}
