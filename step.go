package xpath

// step implements dispatch case 6: tokens[from] is "/". A
// second consecutive "/" marks recursive descent for the step that
// follows. The step's extent is found by matching the slash that opened
// it; when that match lands at or before from+1 — the immediate next
// slash is just the second half of "//", not a genuine terminator — the
// step runs to the end of the range instead.
func (ev *Evaluator) step(values Values, from, to int, position, last int, isFilterContext bool, filterSource Values) (Values, error) {
	goRecursive := false
	nextIdx := from + 1
	slashOpener := from

	if nextIdx <= to && ev.tokens[nextIdx] == "/" {
		goRecursive = true
		slashOpener = nextIdx
		nextIdx++
	}
	if nextIdx > to {
		return nil, newEvalError("missing step after /", "")
	}

	close := ev.MatchBracket(slashOpener, to)
	stepEnd := to
	if close != -1 && close > from+1 {
		stepEnd = close - 1
	}

	stepResult, err := ev.eval(values, nextIdx, stepEnd, goRecursive, position, last, isFilterContext, filterSource)
	if err != nil {
		return nil, err
	}

	if close == -1 || close <= from+1 {
		return stepResult, nil
	}
	return ev.eval(stepResult, close, to, false, position, last, isFilterContext, filterSource)
}
