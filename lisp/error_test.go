package lisp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors(t *testing.T) {
	testerr := errors.New("test error message")
	lerr := Error(testerr)
	msg := GoError(lerr).Error()
	assert.Equal(t, "error: test error message", msg)

	lerr = Errorf("test error message")
	msg = GoError(lerr).Error()
	assert.Equal(t, "error: test error message", msg)

	lerr = ErrorConditionf(TypeErrorCondition, "not a pair: %v", LInt)
	msg = GoError(lerr).Error()
	assert.Equal(t, "type-error: not a pair: int", msg)

	lerr = berrf("car", TypeErrorCondition, "argument is not a pair: %v", Int(1))
	msg = GoError(lerr).Error()
	assert.Equal(t, "type-error: car: argument is not a pair: 1", msg)

	// non-error values have no error representation
	assert.Nil(t, GoError(Int(1)))
	assert.Nil(t, GoError(Nil()))
}

func TestRuntimeErrors(t *testing.T) {
	env := NewEnv(nil)
	lerr := InitializeUserEnv(env)
	if GoError(lerr) != nil {
		t.Fatal(GoError(lerr))
	}
	testsrc := List([]*LVal{
		Symbol("car"),
		List([]*LVal{Symbol("quote"), Nil()}),
	})
	lerr = env.Eval(testsrc)
	msg := GoError(lerr).Error()
	assert.Equal(t, "type-error: car: argument is not a pair: ()", msg)
	assert.Equal(t, TypeErrorCondition, lerr.Condition)
}
