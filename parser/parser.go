/*
Package parser provides a lisp parser.

	expr   := '(' <expr>* ')' | "'" <expr> | <string> | <atom>
	string := '"' <strcontent> '"'
	strcontent := /[^"]+/ | '\' '"'
	atom   := /[^\s()';"]+/

An atom that parses completely as a signed integer is an integer; any other
atom is a symbol.
*/
package parser

import (
	"fmt"
	"io"
	"strconv"

	parsec "github.com/prataprc/goparsec"
	"github.com/slisp-lang/slisp/lisp"
)

const (
	nodeInvalid nodeType = iota
	nodeTerm
	nodeSExpr
	nodeQExpr
)

var nodeTypeStrings = []string{
	nodeInvalid: "INVALID",
	nodeTerm:    "TERM",
	nodeSExpr:   "SEXPR",
	nodeQExpr:   "QEXPR",
}

// NewReader returns a lisp.Reader backed by this package's parser.
func NewReader() lisp.Reader {
	return &reader{}
}

type reader struct{}

func (*reader) Read(name string, r io.Reader) ([]*lisp.LVal, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	v, pos, err := ParseLVal(b)
	if err != nil {
		return nil, fmt.Errorf("%s: offset %d: %w", name, pos, err)
	}
	return v, nil
}

// Parse parses the lisp expressions in text and evaluates them in order
// within env, printing each result to stdout when print is true.  The
// returned bool reports whether text contained a syntactically complete
// sequence of expressions; a false value with a nil error signals that the
// caller may supply more input (e.g. a repl continuation line).
func Parse(env *lisp.LEnv, print bool, text []byte) (bool, error) {
	exprs, _, err := ParseLVal(text)
	if err == errUnexpectedEOF {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	for _, expr := range exprs {
		v := env.Eval(expr)
		if print {
			fmt.Println(v)
		}
	}
	return true, nil
}

// ParseLVal parses LVal values from text and returns them.  The number of
// bytes read is returned along with any error that was encountered in
// parsing.
func ParseLVal(text []byte) ([]*lisp.LVal, int, error) {
	var v []*lisp.LVal
	s := parsec.NewScanner(text)
	parser := newParsecParser()
	root, s := parser(s)
	for root != nil {
		if lval := getLVal(root); lval != nil {
			v = append(v, lval)
		}
		root, s = parser(s)
	}
	_, s = s.SkipWS()
	if !s.Endof() {
		if parenDepth(text) > 0 {
			return v, s.GetCursor(), errUnexpectedEOF
		}
		return v, s.GetCursor(), errSyntax
	}
	return v, s.GetCursor(), nil
}

var errUnexpectedEOF = fmt.Errorf("unexpected end of input")
var errSyntax = fmt.Errorf("invalid syntax")

func newParsecParser() parsec.Parser {
	openP := parsec.Atom("(", "OPENP")
	closeP := parsec.Atom(")", "CLOSEP")
	q := parsec.Atom("'", "QUOTE")
	comment := parsec.Token(`;([^\n]*[^\s])?`, "COMMENT")
	// tokens split on whitespace and delimiters only; whether an atom is an
	// integer or a symbol is decided after the full token is consumed so
	// that 1abc reads as one symbol, not the integer 1 and the symbol abc.
	atom := parsec.Token(`[^\s()';"]+`, "ATOM")
	term := parsec.OrdChoice(astNode(nodeTerm), // terminal token
		parsec.String(),
		atom,
	)
	var expr parsec.Parser // forward declaration allows for recursive parsing
	exprList := parsec.Kleene(nil, &expr)
	sexpr := parsec.And(astNode(nodeSExpr), openP, exprList, closeP)
	qexpr := parsec.And(astNode(nodeQExpr), q, &expr)
	expr = parsec.OrdChoice(nil, comment, term, sexpr, qexpr)
	return expr
}

type nodeType uint

func (t nodeType) String() string {
	if int(t) >= len(nodeTypeStrings) {
		return "INVALID"
	}
	return nodeTypeStrings[t]
}

func newAST(typ nodeType, nodes []parsec.ParsecNode) parsec.ParsecNode {
	nodes = cleanParsecNodeList(nodes)
	switch typ {
	case nodeTerm:
		var lval *lisp.LVal
		switch term := nodes[0].(type) {
		case string:
			lval = lisp.String(unquoteString(term))
		case *parsec.Terminal:
			if x, err := strconv.Atoi(term.Value); err == nil {
				lval = lisp.Int(x)
			} else {
				lval = lisp.Symbol(term.Value)
			}
		}
		return lval
	case nodeSExpr:
		// terminal parsec nodes '(' and ')' are dropped
		var cells []*lisp.LVal
		for _, c := range nodes {
			if lval, ok := c.(*lisp.LVal); ok {
				cells = append(cells, lval)
			}
		}
		return lisp.List(cells)
	case nodeQExpr:
		// 'expr is sugar for (quote expr)
		c := nodes[1].(*lisp.LVal)
		return lisp.List([]*lisp.LVal{lisp.Symbol("quote"), c})
	default:
		panic(fmt.Sprintf("unknown nodeType: %s (%d)", typ, typ))
	}
}

func astNode(t nodeType) parsec.Nodify {
	return func(nodes []parsec.ParsecNode) parsec.ParsecNode {
		return newAST(t, nodes)
	}
}

func cleanParsecNodeList(lis []parsec.ParsecNode) []parsec.ParsecNode {
	var nodes []parsec.ParsecNode
	for _, n := range lis {
		switch node := n.(type) {
		case []parsec.ParsecNode:
			nodes = append(nodes, cleanParsecNodeList(node)...)
		default:
			nodes = append(nodes, node)
		}
	}
	return nodes
}

func getLVal(root parsec.ParsecNode) *lisp.LVal {
	nodes := cleanParsecNodeList([]parsec.ParsecNode{root})
	if len(nodes) == 0 {
		// only whitespace remained
		return nil
	}
	lval, ok := nodes[0].(*lisp.LVal)
	if !ok {
		// only a comment remained
		return nil
	}
	return lval
}

// parenDepth computes the depth of unclosed parens at the end of text,
// ignoring parens inside strings and comments.  A positive depth means the
// input is incomplete rather than malformed.
func parenDepth(text []byte) int {
	depth := 0
	instr := false
	incomment := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case incomment:
			if c == '\n' {
				incomment = false
			}
		case instr:
			if c == '\\' {
				i++
			} else if c == '"' {
				instr = false
			}
		case c == '"':
			instr = true
		case c == ';':
			incomment = true
		case c == '(':
			depth++
		case c == ')':
			depth--
		}
	}
	return depth
}

func unquoteString(s string) string {
	return s[1 : len(s)-1]
}
