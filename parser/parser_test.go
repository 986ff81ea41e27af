package parser_test

import (
	"strings"
	"testing"

	"github.com/slisp-lang/slisp/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLVal(t *testing.T) {
	tests := []struct {
		source string
		want   []string
	}{
		{"3", []string{"3"}},
		{"-3", []string{"-3"}},
		{"+", []string{"+"}},
		{"abc", []string{"abc"}},
		{"equal?", []string{"equal?"}},
		// atoms that do not fully parse as integers are symbols
		{"1abc", []string{"1abc"}},
		{"2+", []string{"2+"}},
		{"(+ 1abc 2)", []string{"(+ 1abc 2)"}},
		{`"a string"`, []string{`"a string"`}},
		{"()", []string{"()"}},
		{"(+ 1 2)", []string{"(+ 1 2)"}},
		{"(a (b (c)))", []string{"(a (b (c)))"}},
		{"'a", []string{"(quote a)"}},
		{"'(1 2)", []string{"(quote (1 2))"}},
		{"''a", []string{"(quote (quote a))"}},
		{"1 2 3", []string{"1", "2", "3"}},
		{"(a)\n(b)", []string{"(a)", "(b)"}},
		{"; just a comment", nil},
		{"(+ 1 2) ; trailing comment", []string{"(+ 1 2)"}},
		{";; leading comment\n(+ 1 2)", []string{"(+ 1 2)"}},
		{"  \n\t ", nil},
		{"(a\n\t(b c) ; comment\n\td)", []string{"(a (b c) d)"}},
	}
	for _, test := range tests {
		v, _, err := parser.ParseLVal([]byte(test.source))
		if !assert.NoError(t, err, "source: %q", test.source) {
			continue
		}
		require.Len(t, v, len(test.want), "source: %q", test.source)
		for i := range v {
			assert.Equal(t, test.want[i], v[i].String(), "source: %q", test.source)
		}
	}
}

func TestParseLValError(t *testing.T) {
	incomplete := []string{
		"(",
		"(+ 1 2",
		"(a (b)",
		"(a \"b)\"",
		"(a ; )\n",
	}
	for _, source := range incomplete {
		_, _, err := parser.ParseLVal([]byte(source))
		assert.EqualError(t, err, "unexpected end of input", "source: %q", source)
	}

	malformed := []string{
		")",
		"(a))",
		"1)",
	}
	for _, source := range malformed {
		_, _, err := parser.ParseLVal([]byte(source))
		assert.EqualError(t, err, "invalid syntax", "source: %q", source)
	}
}

func TestReader(t *testing.T) {
	r := parser.NewReader()
	v, err := r.Read("test", strings.NewReader("(+ 1 2) (- 3 4)"))
	require.NoError(t, err)
	require.Len(t, v, 2)
	assert.Equal(t, "(+ 1 2)", v[0].String())
	assert.Equal(t, "(- 3 4)", v[1].String())

	_, err = r.Read("test", strings.NewReader("(+ 1"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "test")
}

var benchmarkSource = []byte(`
(defun fib (n)
  (if (< n 2)
      n
      (+ (fib (- n 1)) (fib (- n 2)))))
(defun make-adder (n) (lambda (x) (+ x n)))
(setf add2 (make-adder 2))
(add2 (fib 10)) ; 57
`)

func BenchmarkParser(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _, err := parser.ParseLVal(benchmarkSource)
		if err != nil {
			b.Fatal(err)
		}
	}
}
