package xpath

import "fmt"

// EvalError is the single error kind the evaluator raises. Reason
// is a short, machine-stable phrase; Detail is optional free-form context.
type EvalError struct {
	Reason string
	Detail string
}

func newEvalError(reason, detail string) *EvalError {
	return &EvalError{Reason: reason, Detail: detail}
}

func (e *EvalError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("xpath: %s", e.Reason)
	}
	return fmt.Sprintf("xpath: %s: %s", e.Reason, e.Detail)
}

// ErrNilRoot is returned by Evaluate when the caller passes a nil root
// element.
var ErrNilRoot = &EvalError{Reason: "nil root element"}
