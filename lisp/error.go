package lisp

import "fmt"

// Error conditions produced by the interpreter.  Every LError carries one of
// these in its Condition field so that callers can dispatch on the kind of
// failure without parsing messages.
const (
	SyntaxErrorCondition   = "syntax-error"
	UnboundSymbolCondition = "unbound-symbol"
	NotCallableCondition   = "not-callable"
	ArityErrorCondition    = "arity-error"
	TypeErrorCondition     = "type-error"
	DivideByZeroCondition  = "divide-by-zero"
	StackOverflowCondition = "stack-overflow"
	ErrorCondition         = "error"
)

// ErrorVal implements the error interface so that errors can be first class
// lisp objects.
type ErrorVal LVal

// Error implements the error interface.
func (e *ErrorVal) Error() string {
	return e.Condition + ": " + e.Message
}

// Error returns an LVal wrapping err.
func Error(err error) *LVal {
	return &LVal{
		Type:      LError,
		Condition: ErrorCondition,
		Message:   err.Error(),
	}
}

// Errorf returns an error LVal with a formatted message and the generic
// error condition.
func Errorf(format string, v ...interface{}) *LVal {
	return ErrorConditionf(ErrorCondition, format, v...)
}

// ErrorConditionf returns an error LVal with the given condition and a
// formatted message.
func ErrorConditionf(condition string, format string, v ...interface{}) *LVal {
	return &LVal{
		Type:      LError,
		Condition: condition,
		Message:   fmt.Sprintf(format, v...),
	}
}

// GoError returns an error that represents v.  If v is not LError then nil
// is returned.
func GoError(v *LVal) error {
	if v.Type != LError {
		return nil
	}
	return (*ErrorVal)(v)
}

// berrf returns an error attributed to the named builtin or special
// operator.
func berrf(name string, condition string, format string, v ...interface{}) *LVal {
	return ErrorConditionf(condition, "%s: %s", name, fmt.Sprintf(format, v...))
}
