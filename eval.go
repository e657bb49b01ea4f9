// Package xpath evaluates the restricted XPath subset implemented by
// HtmlCleaner 2.24: a tokenizer, a bracket matcher, and a single
// mutually-recursive evaluator threading a rolling value-list through a
// flat token array.
package xpath

import (
	"strings"

	"github.com/gocleaner/htmlxpath/dom"
)

// Evaluator owns the immutable token array for one expression evaluation.
// A fresh instance is created per expression and discarded after it
// returns its final value-list; nothing persists between calls.
type Evaluator struct {
	tokens []string
}

// NewEvaluator tokenizes expr and returns an Evaluator ready to run
// against a root element.
func NewEvaluator(expr string) *Evaluator {
	return &Evaluator{tokens: Tokenize(expr)}
}

// Evaluate is the package's single public entry point.
func Evaluate(root dom.Element, expr string) (Values, error) {
	if root == nil {
		return nil, ErrNilRoot
	}
	return NewEvaluator(expr).Run(root)
}

// Run evaluates the receiver's expression against root.
func (ev *Evaluator) Run(root dom.Element) (Values, error) {
	return ev.eval(Values{ElementValue(root)}, 0, len(ev.tokens)-1, false, 1, 0, false, nil)
}

// eval is the recursive dispatcher. It consumes tokens[from] and either
// returns a final value-list or tail-recurses with an advanced cursor.
// Cases are checked in order; first match wins.
func (ev *Evaluator) eval(values Values, from, to int, isRecursive bool, position, last int, isFilterContext bool, filterSource Values) (Values, error) {
	if from > to {
		return values, nil
	}

	tok := ev.tokens[from]
	trimmed := strings.TrimSpace(tok)

	enterStep(from, to, tok)
	defer leaveStep(from, to, tok)

	switch {
	case trimmed == "":
		// 1. Empty token: skip.
		return ev.eval(values, from+1, to, isRecursive, position, last, isFilterContext, filterSource)

	case tok == "(":
		// 2. Grouping.
		close, err := ev.closer(from, to)
		if err != nil {
			return nil, err
		}
		inner, err := ev.eval(values, from+1, close-1, false, position, last, isFilterContext, filterSource)
		if err != nil {
			return nil, err
		}
		return ev.eval(inner, close+1, to, false, position, last, isFilterContext, filterSource)

	case tok == "[":
		// 3. Predicate.
		close, err := ev.closer(from, to)
		if err != nil {
			return nil, err
		}
		filtered, err := ev.filterValues(values, from+1, close-1)
		if err != nil {
			return nil, err
		}
		return ev.eval(filtered, close+1, to, false, position, last, isFilterContext, filterSource)

	case tok == `"` || tok == `'`:
		// 4. String literal.
		close, err := ev.closer(from, to)
		if err != nil {
			return nil, err
		}
		literal := strings.Join(ev.tokens[from+1:close], "")
		return ev.eval(Values{StringValue(literal)}, close+1, to, false, position, last, isFilterContext, filterSource)

	case isFilterContext && (tok == "=" || tok == "<" || tok == ">"):
		// 5. Comparison — only inside filter context. Terminal.
		return ev.comparison(values, tok, from, to, position, last, filterSource)

	case tok == "/":
		// 6. Step.
		return ev.step(values, from, to, position, last, isFilterContext, filterSource)

	case trimmed != "" && !isSpecialToken(trimmed) && from+1 <= to && ev.tokens[from+1] == "(":
		// 7. Function call. Per the design note on HtmlCleaner's
		// isIdentifier bug, any non-empty, non-delimiter token directly
		// followed by "(" is a candidate; unknown names error out in
		// callFunction rather than being rejected here.
		return ev.functionCall(values, trimmed, from, to, position, last, isFilterContext, filterSource)

	case isIntegerLiteral(trimmed):
		// 8. Integer literal.
		n, err := parseIntegerLiteral(trimmed)
		if err != nil {
			return nil, err
		}
		return ev.eval(Values{NumberValue(n)}, from+1, to, false, position, last, isFilterContext, filterSource)

	case isDoubleLiteral(trimmed):
		// 9. Double literal.
		n, err := parseDoubleLiteral(trimmed)
		if err != nil {
			return nil, err
		}
		return ev.eval(Values{NumberValue(n)}, from+1, to, false, position, last, isFilterContext, filterSource)

	default:
		// 10. Name step.
		return ev.nameStep(values, trimmed, from, to, isRecursive, position, last, isFilterContext, filterSource)
	}
}
