package lisp

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"
)

var envCount uint64

func getEnvID() uint {
	return uint(atomic.AddUint64(&envCount, 1))
}

// LEnv is a lisp environment, one frame of symbol bindings chained to a
// parent frame.  Frames are shared, never copied; a closure holds a live
// reference to the frame it was created in.
type LEnv struct {
	ID     uint
	Scope  map[string]*LVal
	Parent *LEnv
	Stack  *CallStack
	Reader Reader
	Stderr io.Writer
}

// NewEnv initializes and returns a new LEnv.  If parent is nil the returned
// frame is a root environment with its own call stack.
func NewEnv(parent *LEnv) *LEnv {
	env := &LEnv{
		ID:     getEnvID(),
		Scope:  make(map[string]*LVal),
		Parent: parent,
	}
	if parent != nil {
		env.Stack = parent.Stack
		env.Reader = parent.Reader
		env.Stderr = parent.Stderr
	} else {
		env.Stack = &CallStack{MaxHeight: DefaultMaxStackHeight}
		env.Stderr = os.Stderr
	}
	return env
}

// InitializeUserEnv installs the default special operators and builtins into
// env and applies the given configuration.
func InitializeUserEnv(env *LEnv, config ...Config) *LVal {
	env.AddSpecialOps()
	env.AddBuiltins()
	for _, fn := range config {
		lerr := fn(env)
		if lerr.Type == LError {
			return lerr
		}
	}
	return Nil()
}

func (env *LEnv) root() *LEnv {
	for env.Parent != nil {
		env = env.Parent
	}
	return env
}

// Get takes an LSymbol k and returns the LVal it is bound to, searching
// frames innermost to outermost.  The returned value is shared with the
// binding, not copied.
func (env *LEnv) Get(k *LVal) *LVal {
	if k.Type != LSymbol {
		return ErrorConditionf(TypeErrorCondition, "not a symbol: %v", k.Type)
	}
	if k.Str == TrueSymbol {
		return Symbol(TrueSymbol)
	}
	for e := env; e != nil; e = e.Parent {
		if v, ok := e.Scope[k.Str]; ok {
			return v
		}
	}
	return ErrorConditionf(UnboundSymbolCondition, "unbound symbol: %v", k)
}

// Put takes an LSymbol k and binds it to v in env's own frame, inserting or
// overwriting.  Ancestor frames are never touched.
func (env *LEnv) Put(k, v *LVal) {
	if k.Type != LSymbol {
		return
	}
	if k.Str == TrueSymbol {
		panic("constant value")
	}
	if v == nil {
		panic("nil value")
	}
	env.Scope[k.Str] = v
}

// Set binds k to v in the nearest frame that already binds k, searching from
// env outward.  When no frame binds k the binding is created in env itself.
func (env *LEnv) Set(k, v *LVal) {
	for e := env; e != nil; e = e.Parent {
		if _, ok := e.Scope[k.Str]; ok {
			e.Scope[k.Str] = v
			return
		}
	}
	env.Scope[k.Str] = v
}

// AddSpecialOps binds the given special operators to their names in env.
// When called with no arguments AddSpecialOps adds the DefaultSpecialOps to
// env.
func (env *LEnv) AddSpecialOps(ops ...LBuiltinDef) {
	if len(ops) == 0 {
		ops = DefaultSpecialOps()
	}
	for _, op := range ops {
		k := Symbol(op.Name())
		if _, ok := env.Scope[k.Str]; ok {
			panic("symbol already defined: " + op.Name())
		}
		id := fmt.Sprintf("<special-op ``%s''>", op.Name())
		v := SpecialOp(id, op.Formals(), op.Eval)
		v.Name = op.Name()
		env.Put(k, v)
	}
}

// AddBuiltins binds the given funs to their names in env.  When called with
// no arguments AddBuiltins adds the DefaultBuiltins to env.
func (env *LEnv) AddBuiltins(funs ...LBuiltinDef) {
	if len(funs) == 0 {
		funs = DefaultBuiltins()
	}
	for _, f := range funs {
		k := Symbol(f.Name())
		if _, ok := env.Scope[k.Str]; ok {
			panic("symbol already defined: " + f.Name())
		}
		id := fmt.Sprintf("<builtin-function ``%s''>", f.Name())
		v := Fun(id, f.Formals(), f.Eval)
		v.Name = f.Name()
		env.Put(k, v)
	}
}

// Eval evaluates v in the context (scope) of env and returns the resulting
// LVal.
func (env *LEnv) Eval(v *LVal) *LVal {
	switch v.Type {
	case LSymbol:
		return env.Get(v)
	case LCons:
		return env.EvalSExpr(v)
	default:
		// nil, integers, strings, functions, and errors are self-evaluating
		return v
	}
}

// EvalSExpr evaluates the compound expression s.  The head is evaluated to
// obtain an operator; special operators receive the remaining elements
// unevaluated while regular functions have them evaluated left to right.
func (env *LEnv) EvalSExpr(s *LVal) *LVal {
	cells, ok := s.Slice()
	if !ok {
		return ErrorConditionf(TypeErrorCondition, "cannot evaluate an improper list: %v", s)
	}
	f := env.Eval(cells[0])
	if f.Type == LError {
		return f
	}
	if f.Type != LFun {
		return ErrorConditionf(NotCallableCondition, "first element of expression is not a function: %v", f)
	}
	args := cells[1:]
	if !f.IsSpecialFun() {
		evaled := make([]*LVal, len(args))
		for i := range args {
			evaled[i] = env.Eval(args[i])
			if evaled[i].Type == LError {
				return evaled[i]
			}
		}
		args = evaled
	}
	return env.Call(f, args)
}

// Call invokes the LFun fun with args.  For builtins args are passed
// through; for lambdas a new frame is created with the function's captured
// environment as its parent and the formal parameters bound to args.
func (env *LEnv) Call(fun *LVal, args []*LVal) *LVal {
	if err := env.Stack.Push(fun.FID, fun.Name); err != nil {
		return ErrorConditionf(StackOverflowCondition, "%s", err)
	}
	defer env.Stack.Pop()

	formals, ok := fun.Formals.Slice()
	if !ok {
		return ErrorConditionf(TypeErrorCondition, "%s: invalid list of formals: %v", fun.name(), fun.Formals)
	}
	nargs, variadic := countFormals(formals)
	if len(args) < nargs || (!variadic && len(args) > nargs) {
		return berrf(fun.name(), ArityErrorCondition, "expects %d arguments (got %d)", nargs, len(args))
	}

	if fun.Builtin != nil {
		return fun.Builtin(env, args)
	}

	fenv := NewEnv(fun.Env)
	for i, sym := range formals {
		if sym.Str == VarArgSymbol {
			fenv.Put(formals[i+1], List(args[i:]))
			break
		}
		fenv.Put(sym, args[i])
	}
	r := Nil()
	for _, expr := range fun.Body {
		r = fenv.Eval(expr)
		if r.Type == LError {
			return r
		}
	}
	return r
}

// Load reads lisp source from r and evaluates each top-level form in order.
// Evaluation stops at the first error; the value of the final form is
// returned.  Mutations made before a failure persist.
func (env *LEnv) Load(name string, r io.Reader) *LVal {
	reader := env.root().Reader
	if reader == nil {
		return Errorf("no reader configured for the environment")
	}
	exprs, err := reader.Read(name, r)
	if err != nil {
		return ErrorConditionf(SyntaxErrorCondition, "%s", err)
	}
	ret := Nil()
	for _, expr := range exprs {
		ret = env.Eval(expr)
		if ret.Type == LError {
			return ret
		}
	}
	return ret
}

// LoadString evaluates the lisp source contained in the given string.  It is
// the contract offered to external drivers: one call evaluates the top-level
// forms in source against env and returns the final value or the error that
// aborted evaluation.
func (env *LEnv) LoadString(name, source string) *LVal {
	return env.Load(name, strings.NewReader(source))
}

func (fun *LVal) name() string {
	if fun.Name != "" {
		return fun.Name
	}
	return fun.FID
}

// countFormals returns the number of required parameters and whether the
// formals end with a rest parameter introduced by VarArgSymbol.
func countFormals(formals []*LVal) (int, bool) {
	for i, sym := range formals {
		if sym.Str == VarArgSymbol {
			return i, true
		}
	}
	return len(formals), false
}
