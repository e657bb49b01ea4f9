package xpath

import "github.com/gocleaner/htmlxpath/dom"

// dedupeElementValues removes duplicate element values, preserving
// first-occurrence order.
func dedupeElementValues(values Values) Values {
	seen := make(map[dom.Element]bool, len(values))
	out := make(Values, 0, len(values))
	for _, v := range values {
		if v.Kind == KindElement {
			if seen[v.Element] {
				continue
			}
			seen[v.Element] = true
		}
		out = append(out, v)
	}
	return out
}

// dedupeNodes removes duplicate elements from a slice, preserving
// first-occurrence order.
func dedupeNodes(nodes []dom.Element) []dom.Element {
	if len(nodes) < 2 {
		return nodes
	}
	seen := make(map[dom.Element]bool, len(nodes))
	out := make([]dom.Element, 0, len(nodes))
	for _, n := range nodes {
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func elementsToValues(nodes []dom.Element) Values {
	out := make(Values, len(nodes))
	for i, n := range nodes {
		out[i] = ElementValue(n)
	}
	return out
}

// containsElement reports whether e appears as an element value in values
// (used by the bug-compatible recursive-descent branch in elementAxis).
func containsElement(values Values, e dom.Element) bool {
	for _, v := range values {
		if v.Kind == KindElement && v.Element == e {
			return true
		}
	}
	return false
}

// appendUniqueValues appends each element of chunk to *accumulator,
// suppressing elements already recorded in seen. Non-element values
// (strings, numbers, booleans) are always appended; only elements are
// deduplicated, matching the set-backed recursive accumulator used by
// elementAxis.
func appendUniqueValues(accumulator *Values, seen map[dom.Element]bool, chunk Values) {
	for _, v := range chunk {
		if v.Kind == KindElement {
			if seen[v.Element] {
				continue
			}
			seen[v.Element] = true
		}
		*accumulator = append(*accumulator, v)
	}
}
