package xpath

import "strings"

// comparison implements dispatch case 5: tokens[from] is "=", "<", or ">",
// only reachable inside filter context. It consumes a second "=" to form
// "<=" or ">=", evaluates the remainder of the range against filterSource
// (not against values) to obtain the right-hand side, and returns a
// terminal boolean value-list.
func (ev *Evaluator) comparison(values Values, op string, from, to int, position, last int, filterSource Values) (Values, error) {
	rhsFrom := from + 1
	if (op == "<" || op == ">") && rhsFrom <= to && ev.tokens[rhsFrom] == "=" {
		op += "="
		rhsFrom++
	}

	rhs, err := ev.eval(filterSource, rhsFrom, to, false, position, last, true, filterSource)
	if err != nil {
		return nil, err
	}

	if len(values) == 0 || len(rhs) == 0 {
		return Values{BooleanValue(false)}, nil
	}

	ok, err := compareValues(op, values[0], rhs[0])
	if err != nil {
		return nil, err
	}
	return Values{BooleanValue(ok)}, nil
}

// compareValues does numeric comparison when both sides are numbers,
// otherwise coerces each side to text and compares by codepoint ordering.
func compareValues(op string, lhs, rhs Value) (bool, error) {
	if lhs.Kind == KindNumber && rhs.Kind == KindNumber {
		return compareOrdering(op, sign(lhs.Num-rhs.Num))
	}
	return compareOrdering(op, strings.Compare(toText(lhs), toText(rhs)))
}

func sign(f float64) int {
	switch {
	case f < 0:
		return -1
	case f > 0:
		return 1
	default:
		return 0
	}
}

func compareOrdering(op string, cmp int) (bool, error) {
	switch op {
	case "=":
		return cmp == 0, nil
	case "<":
		return cmp < 0, nil
	case ">":
		return cmp > 0, nil
	case "<=":
		return cmp <= 0, nil
	case ">=":
		return cmp >= 0, nil
	default:
		return false, newEvalError("unknown comparison operator", op)
	}
}

// toText coerces a Value to a string for comparison: element
// text content, else the value's natural stringification.
func toText(v Value) string {
	if v.Kind == KindElement && v.Element != nil {
		return v.Element.TextContent()
	}
	return v.String()
}
