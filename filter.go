package xpath

// filterValues is the filter subroutine, invoked by dispatch
// case 3 whenever a "[" predicate is encountered against the current
// value-list.
func (ev *Evaluator) filterValues(values Values, predFrom, predTo int) (Values, error) {
	var kept Values
	for i, v := range values {
		single := Values{v}
		result, err := ev.eval(single, predFrom, predTo, false, i+1, len(values), true, single)
		if err != nil {
			return nil, err
		}
		if len(result) == 0 {
			continue
		}
		switch first := result[0]; first.Kind {
		case KindBoolean:
			if first.Bool {
				kept = append(kept, v)
			}
		case KindNumber:
			if first.Num == float64(i+1) {
				kept = append(kept, v)
			}
		default:
			kept = append(kept, v)
		}
	}
	return kept, nil
}
