package seek

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"reflect"
)

// Addable enumerates the built-in type kinds supporting the binary “+”
// operator.
type Addable interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~complex64 | ~complex128 | ~string
}

// Add returns a + b under the operands' native addition semantics.
// Types without a “+” operator are rejected at compile time.
func Add[T Addable](a, b T) T {
	return a + b
}

// Adder is the contract for types carrying their own addition behavior.
type Adder[T any] interface {
	Add(T) T
}

// AddOf returns the sum of a and b as defined by the type's own Add method.
func AddOf[T Adder[T]](a, b T) T {
	return a.Add(b)
}

// Sum adds two values of arbitrary dynamic type.
//
// Both operands must share a dynamic type. If that type provides an
// Add method in the shape of Adder, the method decides the sum; otherwise
// Sum falls back to the built-in addition for numeric and string kinds.
// Operands of a type with no addition behavior yield ErrUnsupportedOperand,
// operands of differing types ErrOperandMismatch. Sum never recovers from
// either condition on the caller's behalf.
func Sum(a, b any) (any, error) {
	if a == nil || b == nil {
		return nil, ErrUnsupportedOperand
	}
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if av.Type() != bv.Type() {
		return nil, ErrOperandMismatch
	}
	if m := av.MethodByName("Add"); m.IsValid() {
		if mt := m.Type(); mt.NumIn() == 1 && mt.NumOut() == 1 &&
			mt.In(0) == bv.Type() && mt.Out(0) == bv.Type() {
			return m.Call([]reflect.Value{bv})[0].Interface(), nil
		}
	}
	out := reflect.New(av.Type()).Elem()
	switch av.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		out.SetInt(av.Int() + bv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64, reflect.Uintptr:
		out.SetUint(av.Uint() + bv.Uint())
	case reflect.Float32, reflect.Float64:
		out.SetFloat(av.Float() + bv.Float())
	case reflect.Complex64, reflect.Complex128:
		out.SetComplex(av.Complex() + bv.Complex())
	case reflect.String:
		out.SetString(av.String() + bv.String())
	default:
		T().Debugf("no addition behavior for %s operands", av.Kind())
		return nil, ErrUnsupportedOperand
	}
	return out.Interface(), nil
}
