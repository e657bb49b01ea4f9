package xpath

import (
	"fmt"
	"strings"
)

const indent = " "

var (
	debugIndentLevel int
	doDebug          bool
)

// SetDebug turns dispatch tracing on or off for the process. Off by
// default; strictly a development aid, with zero cost when disabled.
func SetDebug(enabled bool) {
	doDebug = enabled
}

func enterStep(from, to int, tok string) {
	if doDebug {
		fmt.Println(strings.Repeat(indent, debugIndentLevel), ">>", from, to, fmt.Sprintf("%q", tok))
		debugIndentLevel++
	}
}

func leaveStep(from, to int, tok string) {
	if doDebug {
		debugIndentLevel--
		fmt.Println(strings.Repeat(indent, debugIndentLevel), "<<", from, to, fmt.Sprintf("%q", tok))
	}
}
