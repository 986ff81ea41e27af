package lisp

import "fmt"

// LBuiltin is a Go function that executes a lisp function.  Special
// operators receive unevaluated argument expressions; all other functions
// receive fully evaluated arguments.
type LBuiltin func(env *LEnv, args []*LVal) *LVal

// LBuiltinDef is a built-in function definition.
type LBuiltinDef interface {
	Name() string
	Formals() *LVal
	Eval(env *LEnv, args []*LVal) *LVal
}

type langBuiltin struct {
	name    string
	formals *LVal
	fun     LBuiltin
}

func (fun *langBuiltin) Name() string {
	return fun.name
}

func (fun *langBuiltin) Formals() *LVal {
	return fun.formals
}

func (fun *langBuiltin) Eval(env *LEnv, args []*LVal) *LVal {
	return fun.fun(env, args)
}

// Formals returns a list of formal argument symbols with the given names.
func Formals(names ...string) *LVal {
	syms := make([]*LVal, len(names))
	for i, name := range names {
		syms[i] = Symbol(name)
	}
	return List(syms)
}

var userBuiltins []*langBuiltin
var langBuiltins = []*langBuiltin{
	{"car", Formals("pair"), builtinCAR},
	{"cdr", Formals("pair"), builtinCDR},
	{"cons", Formals("head", "tail"), builtinCons},
	{"list", Formals(VarArgSymbol, "args"), builtinList},
	{"length", Formals("lis"), builtinLength},
	{"reverse", Formals("lis"), builtinReverse},
	{"not", Formals("expr"), builtinNot},
	{"equal?", Formals("a", "b"), builtinEqual},
	{"eq", Formals("a", "b"), builtinEqual},
	{"=", Formals("a", "b"), builtinEqual},
	{">", Formals("a", "b"), builtinGT},
	{"<", Formals("a", "b"), builtinLT},
	{">=", Formals("a", "b"), builtinGEq},
	{"<=", Formals("a", "b"), builtinLEq},
	{"+", Formals(VarArgSymbol, "x"), builtinAdd},
	{"-", Formals("x", VarArgSymbol, "rest"), builtinSub},
	{"*", Formals(VarArgSymbol, "x"), builtinMul},
	{"/", Formals("x", VarArgSymbol, "rest"), builtinDiv},
	{"debug-print", Formals(VarArgSymbol, "args"), builtinDebugPrint},
	{"debug-stack", Formals(), builtinDebugStack},
}

// RegisterDefaultBuiltin adds the given function to the list returned by
// DefaultBuiltins.
func RegisterDefaultBuiltin(name string, formals *LVal, fn LBuiltin) {
	userBuiltins = append(userBuiltins, &langBuiltin{name, formals, fn})
}

// DefaultBuiltins returns the default set of LBuiltinDefs added to LEnv
// objects when LEnv.AddBuiltins is called without arguments.
func DefaultBuiltins() []LBuiltinDef {
	funs := make([]LBuiltinDef, 0, len(langBuiltins)+len(userBuiltins))
	for _, f := range langBuiltins {
		funs = append(funs, f)
	}
	for _, f := range userBuiltins {
		funs = append(funs, f)
	}
	return funs
}

func builtinCAR(env *LEnv, args []*LVal) *LVal {
	if args[0].Type != LCons {
		return berrf("car", TypeErrorCondition, "argument is not a pair: %v", args[0])
	}
	return args[0].Head
}

func builtinCDR(env *LEnv, args []*LVal) *LVal {
	if args[0].Type != LCons {
		return berrf("cdr", TypeErrorCondition, "argument is not a pair: %v", args[0])
	}
	return args[0].Tail
}

func builtinCons(env *LEnv, args []*LVal) *LVal {
	// the new cell shares args[1] as its tail; the original list is not
	// copied or mutated
	return Cons(args[0], args[1])
}

func builtinList(env *LEnv, args []*LVal) *LVal {
	return List(args)
}

func builtinLength(env *LEnv, args []*LVal) *LVal {
	n := args[0].Len()
	if n < 0 {
		return berrf("length", TypeErrorCondition, "argument is not a list: %v", args[0])
	}
	return Int(n)
}

func builtinReverse(env *LEnv, args []*LVal) *LVal {
	cells, ok := args[0].Slice()
	if !ok {
		return berrf("reverse", TypeErrorCondition, "argument is not a list: %v", args[0])
	}
	lis := Nil()
	for _, c := range cells {
		lis = Cons(c, lis)
	}
	return lis
}

func builtinNot(env *LEnv, args []*LVal) *LVal {
	return Bool(args[0].IsNil())
}

func builtinEqual(env *LEnv, args []*LVal) *LVal {
	return args[0].Equal(args[1])
}

func builtinGT(env *LEnv, args []*LVal) *LVal {
	a, b, lerr := twoInts(">", args)
	if lerr != nil {
		return lerr
	}
	return Bool(a > b)
}

func builtinLT(env *LEnv, args []*LVal) *LVal {
	a, b, lerr := twoInts("<", args)
	if lerr != nil {
		return lerr
	}
	return Bool(a < b)
}

func builtinGEq(env *LEnv, args []*LVal) *LVal {
	a, b, lerr := twoInts(">=", args)
	if lerr != nil {
		return lerr
	}
	return Bool(a >= b)
}

func builtinLEq(env *LEnv, args []*LVal) *LVal {
	a, b, lerr := twoInts("<=", args)
	if lerr != nil {
		return lerr
	}
	return Bool(a <= b)
}

func builtinAdd(env *LEnv, args []*LVal) *LVal {
	sum := 0
	for _, c := range args {
		if c.Type != LInt {
			return berrf("+", TypeErrorCondition, "argument is not an integer: %v", c)
		}
		sum += c.Int
	}
	return Int(sum)
}

func builtinMul(env *LEnv, args []*LVal) *LVal {
	prod := 1
	for _, c := range args {
		if c.Type != LInt {
			return berrf("*", TypeErrorCondition, "argument is not an integer: %v", c)
		}
		prod *= c.Int
	}
	return Int(prod)
}

func builtinSub(env *LEnv, args []*LVal) *LVal {
	if args[0].Type != LInt {
		return berrf("-", TypeErrorCondition, "argument is not an integer: %v", args[0])
	}
	diff := args[0].Int
	for _, c := range args[1:] {
		if c.Type != LInt {
			return berrf("-", TypeErrorCondition, "argument is not an integer: %v", c)
		}
		diff -= c.Int
	}
	return Int(diff)
}

func builtinDiv(env *LEnv, args []*LVal) *LVal {
	if args[0].Type != LInt {
		return berrf("/", TypeErrorCondition, "argument is not an integer: %v", args[0])
	}
	// integer division truncates toward zero
	div := args[0].Int
	for _, c := range args[1:] {
		if c.Type != LInt {
			return berrf("/", TypeErrorCondition, "argument is not an integer: %v", c)
		}
		if c.Int == 0 {
			return berrf("/", DivideByZeroCondition, "division by zero")
		}
		div /= c.Int
	}
	return Int(div)
}

func builtinDebugPrint(env *LEnv, args []*LVal) *LVal {
	w := env.root().Stderr
	fmtargs := make([]interface{}, len(args))
	for i := range args {
		fmtargs[i] = args[i]
	}
	fmt.Fprintln(w, fmtargs...)
	return Nil()
}

func builtinDebugStack(env *LEnv, args []*LVal) *LVal {
	env.Stack.DebugPrint(env.root().Stderr)
	return Nil()
}

func twoInts(name string, args []*LVal) (int, int, *LVal) {
	if args[0].Type != LInt {
		return 0, 0, berrf(name, TypeErrorCondition, "first argument is not an integer: %v", args[0])
	}
	if args[1].Type != LInt {
		return 0, 0, berrf(name, TypeErrorCondition, "second argument is not an integer: %v", args[1])
	}
	return args[0].Int, args[1].Int, nil
}
