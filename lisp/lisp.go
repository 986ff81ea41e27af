package lisp

import (
	"bytes"
	"fmt"
	"strconv"
)

// LType is the type of an LVal
type LType uint

// Possible LType values
const (
	LInvalid LType = iota
	LNil
	LInt
	LSymbol
	LString
	LCons
	LFun
	LError
)

var ltypeStrings = []string{
	LInvalid: "INVALID",
	LNil:     "nil",
	LInt:     "int",
	LSymbol:  "symbol",
	LString:  "string",
	LCons:    "pair",
	LFun:     "function",
	LError:   "error",
}

func (t LType) String() string {
	if int(t) >= len(ltypeStrings) {
		return ltypeStrings[LInvalid]
	}
	return ltypeStrings[t]
}

// LFunType distinguishes regular functions, which receive evaluated
// arguments, from special operators, which receive their argument
// expressions unevaluated.
type LFunType uint

// Possible LFunType values
const (
	LFunNone LFunType = iota
	LFunSpecialOp
)

// LVal is a lisp value.  Which fields are meaningful depends on Type.  Cons
// cells reference their head and tail as shared pointers so that structure
// produced by cons may alias the lists it was built from.
type LVal struct {
	Type LType
	Int  int
	Str  string // symbol name or string contents

	// Head and Tail are the fields of a cons cell.  A proper list is LNil
	// or an LCons whose Tail is a proper list.
	Head *LVal
	Tail *LVal

	// Fields needed for function values
	FunType LFunType
	FID     string
	Name    string
	Builtin LBuiltin
	Formals *LVal
	Body    []*LVal
	Env     *LEnv

	// Fields needed for error values
	Condition string
	Message   string
}

// Nil returns an LVal representing nil, the empty list, falsity.
func Nil() *LVal {
	return &LVal{Type: LNil}
}

// Int returns an LVal representing the integer x.
func Int(x int) *LVal {
	return &LVal{
		Type: LInt,
		Int:  x,
	}
}

// Symbol returns an LVal representing the symbol s.
func Symbol(s string) *LVal {
	return &LVal{
		Type: LSymbol,
		Str:  s,
	}
}

// String returns an LVal representing the string s.
func String(s string) *LVal {
	return &LVal{
		Type: LString,
		Str:  s,
	}
}

// Bool returns the symbol t when b is true and () otherwise.
func Bool(b bool) *LVal {
	if b {
		return Symbol(TrueSymbol)
	}
	return Nil()
}

// Cons returns a new cons cell referencing head and tail.  The arguments are
// shared with the new cell, not copied, so the result aliases tail.
func Cons(head, tail *LVal) *LVal {
	return &LVal{
		Type: LCons,
		Head: head,
		Tail: tail,
	}
}

// List returns a proper list containing cells in order.
func List(cells []*LVal) *LVal {
	lis := Nil()
	for i := len(cells) - 1; i >= 0; i-- {
		lis = Cons(cells[i], lis)
	}
	return lis
}

// Fun returns an LVal representing a builtin function.
func Fun(fid string, formals *LVal, fn LBuiltin) *LVal {
	return &LVal{
		Type:    LFun,
		FID:     fid,
		Formals: formals,
		Builtin: fn,
	}
}

// SpecialOp returns an LVal representing a special operator, a function
// whose arguments are not evaluated before it is invoked.
func SpecialOp(fid string, formals *LVal, fn LBuiltin) *LVal {
	return &LVal{
		Type:    LFun,
		FunType: LFunSpecialOp,
		FID:     fid,
		Formals: formals,
		Builtin: fn,
	}
}

// Lambda returns an anonymous function with the given formals and body
// forms.  The returned function holds a live reference to env, the
// environment active at its creation, so bindings mutated in env later are
// visible inside the function's body.
func Lambda(env *LEnv, formals *LVal, body []*LVal) *LVal {
	return &LVal{
		Type:    LFun,
		FID:     fmt.Sprintf("anon%d", getEnvID()),
		Formals: formals,
		Body:    body,
		Env:     env,
	}
}

// IsNil returns true if v is the empty list.
func (v *LVal) IsNil() bool {
	return v.Type == LNil
}

// IsSpecialFun returns true if v is a function whose arguments should not be
// evaluated before invocation.
func (v *LVal) IsSpecialFun() bool {
	return v.Type == LFun && v.FunType == LFunSpecialOp
}

// Slice returns the elements of a proper list.  The second return value is
// false when v is neither nil nor a proper list.
func (v *LVal) Slice() ([]*LVal, bool) {
	var cells []*LVal
	for ; v.Type == LCons; v = v.Tail {
		cells = append(cells, v.Head)
	}
	if v.Type != LNil {
		return nil, false
	}
	return cells, true
}

// Len returns the number of elements in a proper list and -1 for any other
// value.
func (v *LVal) Len() int {
	n := 0
	for ; v.Type == LCons; v = v.Tail {
		n++
	}
	if v.Type != LNil {
		return -1
	}
	return n
}

// Equal returns the symbol t when v and other are structurally equal and ()
// otherwise.  Integers compare by value, symbols and strings by contents,
// cons cells by deep structure, and functions by identity.
func (v *LVal) Equal(other *LVal) *LVal {
	if v.Type != other.Type {
		return Nil()
	}
	switch v.Type {
	case LNil:
		return Bool(true)
	case LInt:
		return Bool(v.Int == other.Int)
	case LSymbol, LString:
		return Bool(v.Str == other.Str)
	case LCons:
		if v.Head.Equal(other.Head).IsNil() {
			return Nil()
		}
		return v.Tail.Equal(other.Tail)
	case LFun:
		return Bool(v == other)
	default:
		return Nil()
	}
}

func (v *LVal) String() string {
	switch v.Type {
	case LNil:
		return "()"
	case LInt:
		return strconv.Itoa(v.Int)
	case LSymbol:
		return v.Str
	case LString:
		return strconv.Quote(v.Str)
	case LCons:
		return consString(v)
	case LFun:
		if v.Builtin != nil {
			return v.FID
		}
		return fmt.Sprintf("(lambda %v %v)", v.Formals, bodyString(v.Body))
	case LError:
		return v.Condition + ": " + v.Message
	default:
		return fmt.Sprintf("%#v", v)
	}
}

func consString(v *LVal) string {
	var buf bytes.Buffer
	buf.WriteString("(")
	buf.WriteString(v.Head.String())
	for v = v.Tail; ; v = v.Tail {
		switch v.Type {
		case LNil:
			buf.WriteString(")")
			return buf.String()
		case LCons:
			buf.WriteString(" ")
			buf.WriteString(v.Head.String())
		default:
			buf.WriteString(" . ")
			buf.WriteString(v.String())
			buf.WriteString(")")
			return buf.String()
		}
	}
}

func bodyString(body []*LVal) string {
	var buf bytes.Buffer
	for i, v := range body {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(v.String())
	}
	return buf.String()
}
