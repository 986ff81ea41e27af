package lisp

// VarArgSymbol is the symbol that indicates a variadic function argument in a
// function's list of formal arguments.
const VarArgSymbol = "&"

// TrueSymbol is the conventional truthy constant.  It always evaluates to
// itself and cannot be rebound.
const TrueSymbol = "t"

// ElseSymbol may appear as the test of a final cond branch and is always
// considered truthy there.
const ElseSymbol = "else"

// OKSymbol is returned by defun to confirm a function definition.
const OKSymbol = "ok"
