package lisptest

import (
	"testing"
)

func TestErrors(t *testing.T) {
	tests := TestSuite{
		{"unbound symbols", TestSequence{
			{"a", "unbound-symbol: unbound symbol: a"},
			{"(+ 1 b)", "unbound-symbol: unbound symbol: b"},
			// a token that is not entirely an integer reads as one symbol.
			{"1abc", "unbound-symbol: unbound symbol: 1abc"},
		}},
		{"not callable", TestSequence{
			{"(1 2)", "not-callable: first element of expression is not a function: 1"},
			{`("f" 2)`, `not-callable: first element of expression is not a function: "f"`},
		}},
		{"type errors", TestSequence{
			{"(car 1)", "type-error: car: argument is not a pair: 1"},
			{"(car '())", "type-error: car: argument is not a pair: ()"},
			{"(cdr '())", "type-error: cdr: argument is not a pair: ()"},
			{`(+ 1 "x")`, `type-error: +: argument is not an integer: "x"`},
			{"(< 'a 1)", "type-error: <: first argument is not an integer: a"},
			{"(length (cons 1 2))", "type-error: length: argument is not a list: (1 . 2)"},
		}},
		{"arity errors", TestSequence{
			{"(car)", "arity-error: car: expects 1 arguments (got 0)"},
			{"(cons 1)", "arity-error: cons: expects 2 arguments (got 1)"},
			{"(cons 1 2 3)", "arity-error: cons: expects 2 arguments (got 3)"},
			// subtraction and division need a seed argument.
			{"(-)", "arity-error: -: expects 1 arguments (got 0)"},
			{"(/)", "arity-error: /: expects 1 arguments (got 0)"},
			{"(defun f (a b) a)", "ok"},
			{"(f 1)", "arity-error: f: expects 2 arguments (got 1)"},
		}},
		{"division by zero", TestSequence{
			{"(/ 1 0)", "divide-by-zero: /: division by zero"},
			{"(/ 10 2 0)", "divide-by-zero: /: division by zero"},
		}},
		{"constants", TestSequence{
			{"(setf t 1)", "type-error: setf: cannot rebind constant: t"},
			{"(defun t () 1)", "type-error: defun: cannot rebind constant: t"},
			{"(let ((t 1)) t)", "type-error: let: cannot rebind constant: t"},
			{"((lambda (t) t) 1)", "type-error: lambda: cannot rebind constant: t"},
			{"(defun f (t) 1)", "type-error: defun: cannot rebind constant: t"},
			// a failed rebinding leaves the constant untouched.
			{"t", "t"},
		}},
		{"special operator misuse", TestSequence{
			{"(cond (else 'a) (t 'b))", "syntax-error: cond: invalid syntax: else"},
			{"(cond (1 2 3))", "type-error: cond: branch is not a pair (length 3)"},
			{"(defun g 5 1)", "type-error: defun: argument is not a list: int"},
			{"(lambda (x 1) x)", "type-error: lambda: formal argument is not a symbol: int"},
			{"(defun h (& ) 1)", "syntax-error: defun: invalid rest argument in formals list: (&)"},
		}},
		{"errors abort evaluation", TestSequence{
			{"(setf x 1)", "1"},
			{"(progn (setf x 2) (car '()) (setf x 3))", "type-error: car: argument is not a pair: ()"},
			// forms before the failure took effect; forms after did not.
			{"x", "2"},
		}},
	}
	RunTestSuite(t, tests)
}

func TestStackOverflow(t *testing.T) {
	tests := TestSuite{
		{"runaway recursion", TestSequence{
			{"(defun spin () (spin))", "ok"},
			{"(spin)", "stack-overflow: maximum stack height reached (10000 frames)"},
			// the stack unwinds fully so the environment remains usable.
			{"(+ 1 2)", "3"},
		}},
	}
	RunTestSuite(t, tests)
}
