package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLValString(t *testing.T) {
	assert.Equal(t, "()", Nil().String())
	assert.Equal(t, "5", Int(5).String())
	assert.Equal(t, "-5", Int(-5).String())
	assert.Equal(t, "abc", Symbol("abc").String())
	assert.Equal(t, `"abc"`, String("abc").String())
	assert.Equal(t, `"a\"b"`, String(`a"b`).String())
	assert.Equal(t, "t", Bool(true).String())
	assert.Equal(t, "()", Bool(false).String())

	assert.Equal(t, "(1 . 2)", Cons(Int(1), Int(2)).String())
	assert.Equal(t, "(1 2 3)", List([]*LVal{Int(1), Int(2), Int(3)}).String())
	assert.Equal(t, "()", List(nil).String())
	assert.Equal(t, "(1 2 . 3)", Cons(Int(1), Cons(Int(2), Int(3))).String())
	assert.Equal(t, "((1) 2)", List([]*LVal{List([]*LVal{Int(1)}), Int(2)}).String())
}

func TestLValSlice(t *testing.T) {
	cells, ok := List([]*LVal{Int(1), Int(2)}).Slice()
	assert.True(t, ok)
	assert.Len(t, cells, 2)

	cells, ok = Nil().Slice()
	assert.True(t, ok)
	assert.Len(t, cells, 0)

	// a dotted pair is not a proper list
	_, ok = Cons(Int(1), Int(2)).Slice()
	assert.False(t, ok)
	_, ok = Int(1).Slice()
	assert.False(t, ok)
}

func TestLValLen(t *testing.T) {
	assert.Equal(t, 0, Nil().Len())
	assert.Equal(t, 3, List([]*LVal{Int(1), Int(2), Int(3)}).Len())
	assert.Equal(t, -1, Cons(Int(1), Int(2)).Len())
	assert.Equal(t, -1, Int(1).Len())
}

func TestLValEqual(t *testing.T) {
	assert.False(t, Int(1).Equal(Int(1)).IsNil())
	assert.True(t, Int(1).Equal(Int(2)).IsNil())
	assert.True(t, Int(1).Equal(Symbol("1")).IsNil())
	assert.False(t, Symbol("a").Equal(Symbol("a")).IsNil())
	assert.False(t, String("a").Equal(String("a")).IsNil())
	assert.True(t, String("a").Equal(Symbol("a")).IsNil())
	assert.False(t, Nil().Equal(Nil()).IsNil())

	a := List([]*LVal{Int(1), List([]*LVal{Int(2)})})
	b := List([]*LVal{Int(1), List([]*LVal{Int(2)})})
	c := List([]*LVal{Int(1), List([]*LVal{Int(3)})})
	assert.False(t, a.Equal(b).IsNil())
	assert.True(t, a.Equal(c).IsNil())

	// functions compare by identity
	fn := Fun("f", Formals(), func(env *LEnv, args []*LVal) *LVal { return Nil() })
	other := Fun("f", Formals(), func(env *LEnv, args []*LVal) *LVal { return Nil() })
	assert.False(t, fn.Equal(fn).IsNil())
	assert.True(t, fn.Equal(other).IsNil())
}

func TestConsSharing(t *testing.T) {
	tail := List([]*LVal{Int(2), Int(3)})
	lis := Cons(Int(1), tail)
	assert.Equal(t, "(1 2 3)", lis.String())
	// the new cell references tail rather than copying it
	assert.True(t, lis.Tail == tail)
}
