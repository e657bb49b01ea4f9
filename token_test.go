package xpath

import (
	"reflect"
	"strings"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		expr string
		want []string
	}{
		{"//div//a", []string{"/", "/", "div", "/", "/", "a"}},
		{"/body/*[1]/@type", []string{"/", "body", "/", "*", "[", "1", "]", "/", "@type"}},
		{`//a['v' < @id]/@id`, []string{"/", "/", "a", "[", "'", "v", "'", " ", "<", " @id", "]", "/", "@id"}},
		{"", nil},
		{"count(//a)", []string{"count", "(", "/", "/", "a", ")"}},
	}
	for _, tt := range tests {
		got := Tokenize(tt.expr)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Tokenize(%q) = %#v, want %#v", tt.expr, got, tt.want)
		}
	}
}

func TestTokenizeWhitespaceInsertionIsIdempotent(t *testing.T) {
	base := Tokenize("//div/a")
	// A whitespace run standing alone next to a delimiter becomes its own
	// whitespace-only token, which the evaluator skips (dispatch case 1);
	// the remaining tokens must line up with the unpadded ones.
	var padded []string
	for _, tok := range Tokenize("  //  div  /  a  ") {
		if strings.TrimSpace(tok) != "" {
			padded = append(padded, tok)
		}
	}
	if len(base) != len(padded) {
		t.Fatalf("padded tokenization produced %d tokens, want %d", len(padded), len(base))
	}
	for i := range base {
		if strings.TrimSpace(padded[i]) != base[i] {
			t.Errorf("token %d: padded=%q trimmed=%q, want %q", i, padded[i], strings.TrimSpace(padded[i]), base[i])
		}
	}
}
