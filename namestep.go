package xpath

import (
	"strings"

	"github.com/gocleaner/htmlxpath/dom"
)

// nameStep implements dispatch case 10: name is ".", "..",
// "*", an element name, or an attribute reference starting with "@".
func (ev *Evaluator) nameStep(values Values, name string, from, to int, isRecursive bool, position, last int, isFilterContext bool, filterSource Values) (Values, error) {
	if strings.HasPrefix(name, "@") {
		return ev.attributeAxis(values, name, from, to, isRecursive, position, last, isFilterContext, filterSource)
	}
	return ev.elementAxis(values, name, from, to, isRecursive, isFilterContext, filterSource)
}

// attributeAxis resolves an "@name" or "@*" step. Attribute-axis results
// are always strings, never elements.
func (ev *Evaluator) attributeAxis(values Values, name string, from, to int, isRecursive bool, position, last int, isFilterContext bool, filterSource Values) (Values, error) {
	pool, err := ev.attributePool(values, isRecursive)
	if err != nil {
		return nil, err
	}

	var stepResult Values
	for _, e := range pool {
		if name == "@*" {
			for _, a := range e.Attributes() {
				stepResult = append(stepResult, StringValue(a.Value))
			}
			continue
		}
		if v, ok := e.Attribute(name[1:]); ok {
			stepResult = append(stepResult, StringValue(v))
		}
	}

	return ev.eval(stepResult, from+1, to, false, position, last, isFilterContext, filterSource)
}

func (ev *Evaluator) attributePool(values Values, isRecursive bool) ([]dom.Element, error) {
	if !isRecursive {
		pool := make([]dom.Element, 0, len(values))
		for _, v := range values {
			if v.Kind != KindElement {
				return nil, newEvalError("attribute axis applied to non-element", "")
			}
			pool = append(pool, v.Element)
		}
		return pool, nil
	}

	seen := make(map[dom.Element]bool)
	var pool []dom.Element
	for _, v := range values {
		if v.Kind != KindElement {
			return nil, newEvalError("attribute axis applied to non-element", "")
		}
		for _, d := range v.Element.DescendantElements() {
			if !seen[d] {
				seen[d] = true
				pool = append(pool, d)
			}
		}
	}
	return pool, nil
}

// elementAxis resolves a ".", "..", "*", or element-name step, including
// the bug-compatible leak: when descending recursively, a child c that
// happens to also be a member of its parent's own refined result is added
// to the accumulator (once; the accumulator suppresses duplicate
// elements), even though under standard XPath a predicate like
// [//span] should not leak the recursive axis into the surrounding step's
// result set.
func (ev *Evaluator) elementAxis(values Values, name string, from, to int, isRecursive, isFilterContext bool, filterSource Values) (Values, error) {
	source := dedupeElementValues(values)

	var accumulator Values
	seen := make(map[dom.Element]bool)

	for i, v := range source {
		if v.Kind != KindElement {
			continue
		}
		e := v.Element

		subnodes := dedupeNodes(childCandidates(e, name))
		refined, err := ev.eval(elementsToValues(subnodes), from+1, to, false, i+1, len(subnodes), isFilterContext, filterSource)
		if err != nil {
			return nil, err
		}

		if !isRecursive {
			accumulator = append(accumulator, refined...)
			continue
		}

		if isSelfAxis(name) {
			appendUniqueValues(&accumulator, seen, refined)
		}
		for _, c := range e.ChildElements() {
			childResult, err := ev.elementAxis(Values{ElementValue(c)}, name, from, to, true, isFilterContext, filterSource)
			if err != nil {
				return nil, err
			}
			appendUniqueValues(&accumulator, seen, childResult)

			if !isSelfAxis(name) && containsElement(refined, c) {
				appendUniqueValues(&accumulator, seen, Values{ElementValue(c)})
			}
		}
	}

	return accumulator, nil
}

func isSelfAxis(name string) bool {
	return name == "." || name == ".." || name == "*"
}

func childCandidates(e dom.Element, name string) []dom.Element {
	switch name {
	case ".":
		return []dom.Element{e}
	case "..":
		if p, ok := e.Parent(); ok {
			return []dom.Element{p}
		}
		return nil
	case "*":
		return e.ChildElements()
	default:
		return e.ChildElementsNamed(name)
	}
}
