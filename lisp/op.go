package lisp

var userSpecialOps []*langBuiltin
var langSpecialOps = []*langBuiltin{
	{"quote", Formals("expr"), opQuote},
	{"setf", Formals("sym", "val"), opSetf},
	{"cond", Formals(VarArgSymbol, "branch"), opCond},
	{"defun", Formals("name", "formals", VarArgSymbol, "expr"), opDefun},
	{"lambda", Formals("formals", VarArgSymbol, "expr"), opLambda},
	{"progn", Formals(VarArgSymbol, "expr"), opProgn},
	{"if", Formals("condition", "then", "else"), opIf},
	{"let", Formals("bindings", VarArgSymbol, "expr"), opLet},
	{"and", Formals(VarArgSymbol, "expr"), opAnd},
	{"or", Formals(VarArgSymbol, "expr"), opOr},
}

// RegisterDefaultSpecialOp adds the given function to the list returned by
// DefaultSpecialOps.
func RegisterDefaultSpecialOp(name string, formals *LVal, fn LBuiltin) {
	userSpecialOps = append(userSpecialOps, &langBuiltin{name, formals, fn})
}

// DefaultSpecialOps returns the default set of LBuiltinDefs added to LEnv
// objects when LEnv.AddSpecialOps is called without arguments.
func DefaultSpecialOps() []LBuiltinDef {
	ops := make([]LBuiltinDef, 0, len(langSpecialOps)+len(userSpecialOps))
	for _, op := range langSpecialOps {
		ops = append(ops, op)
	}
	for _, op := range userSpecialOps {
		ops = append(ops, op)
	}
	return ops
}

func opQuote(env *LEnv, args []*LVal) *LVal {
	// the argument is returned without evaluation
	return args[0]
}

func opSetf(env *LEnv, args []*LVal) *LVal {
	k := args[0]
	if k.Type != LSymbol {
		return berrf("setf", TypeErrorCondition, "first argument is not a symbol: %v", k.Type)
	}
	if k.Str == TrueSymbol {
		return berrf("setf", TypeErrorCondition, "cannot rebind constant: %s", k.Str)
	}
	v := env.Eval(args[1])
	if v.Type == LError {
		return v
	}
	env.Set(k, v)
	return v
}

// (cond (test-form then-form)*)
func opCond(env *LEnv, args []*LVal) *LVal {
	last := len(args) - 1
	for i, branch := range args {
		cells, ok := branch.Slice()
		if !ok || branch.Type != LCons {
			return berrf("cond", TypeErrorCondition, "branch is not a list: %v", branch.Type)
		}
		if len(cells) != 2 {
			return berrf("cond", TypeErrorCondition, "branch is not a pair (length %d)", len(cells))
		}
		var test *LVal
		if cells[0].Type == LSymbol && cells[0].Str == ElseSymbol {
			if i != last {
				return berrf("cond", SyntaxErrorCondition, "invalid syntax: else")
			}
			// the value here doesn't matter as long as it isn't nil
			test = cells[0]
		} else {
			test = env.Eval(cells[0])
		}
		if test.Type == LError {
			return test
		}
		if test.IsNil() {
			continue
		}
		return env.Eval(cells[1])
	}
	return Nil()
}

// (defun name (formals*) body*)
func opDefun(env *LEnv, args []*LVal) *LVal {
	name := args[0]
	if name.Type != LSymbol {
		return berrf("defun", TypeErrorCondition, "first argument is not a symbol: %v", name.Type)
	}
	if name.Str == TrueSymbol {
		return berrf("defun", TypeErrorCondition, "cannot rebind constant: %s", name.Str)
	}
	if len(args) < 3 {
		return berrf("defun", ArityErrorCondition, "missing function body")
	}
	fun := makeLambda(env, "defun", args[1], args[2:])
	if fun.Type == LError {
		return fun
	}
	// The name is bound in the frame the closure captured, so the body can
	// resolve recursive calls to itself at call time.
	fun.Name = name.Str
	env.Put(name, fun)
	return Symbol(OKSymbol)
}

// (lambda (formals*) body*)
func opLambda(env *LEnv, args []*LVal) *LVal {
	if len(args) < 2 {
		return berrf("lambda", ArityErrorCondition, "missing function body")
	}
	return makeLambda(env, "lambda", args[0], args[1:])
}

func makeLambda(env *LEnv, name string, formals *LVal, body []*LVal) *LVal {
	syms, ok := formals.Slice()
	if !ok {
		return berrf(name, TypeErrorCondition, "argument is not a list: %v", formals.Type)
	}
	for i, sym := range syms {
		if sym.Type != LSymbol {
			return berrf(name, TypeErrorCondition, "formal argument is not a symbol: %v", sym.Type)
		}
		if sym.Str == TrueSymbol {
			return berrf(name, TypeErrorCondition, "cannot rebind constant: %s", sym.Str)
		}
		if sym.Str == VarArgSymbol && i != len(syms)-2 {
			return berrf(name, SyntaxErrorCondition, "invalid rest argument in formals list: %v", formals)
		}
	}
	return Lambda(env, formals, body)
}

func opProgn(env *LEnv, args []*LVal) *LVal {
	val := Nil()
	for _, expr := range args {
		val = env.Eval(expr)
		if val.Type == LError {
			return val
		}
	}
	return val
}

// (if test-form then-form else-form)
func opIf(env *LEnv, args []*LVal) *LVal {
	r := env.Eval(args[0])
	if r.Type == LError {
		return r
	}
	if r.IsNil() {
		return env.Eval(args[2])
	}
	return env.Eval(args[1])
}

// (let ((sym val)*) body*)
func opLet(env *LEnv, args []*LVal) *LVal {
	letenv := NewEnv(env)
	binds, ok := args[0].Slice()
	if !ok {
		return berrf("let", TypeErrorCondition, "first argument is not a list: %v", args[0].Type)
	}
	for _, bind := range binds {
		cells, ok := bind.Slice()
		if !ok || len(cells) != 2 || cells[0].Type != LSymbol {
			return berrf("let", TypeErrorCondition, "first argument is not a list of binding pairs")
		}
		if cells[0].Str == TrueSymbol {
			return berrf("let", TypeErrorCondition, "cannot rebind constant: %s", cells[0].Str)
		}
		val := env.Eval(cells[1])
		if val.Type == LError {
			return val
		}
		letenv.Put(cells[0], val)
	}
	return opProgn(letenv, args[1:])
}

func opAnd(env *LEnv, args []*LVal) *LVal {
	for _, expr := range args {
		r := env.Eval(expr)
		if r.Type == LError {
			return r
		}
		if r.IsNil() {
			return Bool(false)
		}
	}
	return Bool(true)
}

func opOr(env *LEnv, args []*LVal) *LVal {
	for _, expr := range args {
		r := env.Eval(expr)
		if r.Type == LError {
			return r
		}
		if !r.IsNil() {
			return Bool(true)
		}
	}
	return Bool(false)
}
