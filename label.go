package typelabel

import (
	"reflect"
)

// Label is implemented by types having a label.
//
// TypeLabel must return the same string for every value of the type,
// including its zero value.
type Label interface {
	TypeLabel() string
}

// Of returns the label of T. A pointer type reports the label of a new
// value it points to, so Of[*T] works for labels declared on T. Of panics
// when T is an interface type.
func Of[T Label]() string {
	var zero T
	switch t := reflect.TypeFor[T](); t.Kind() {
	case reflect.Interface:
		panic("typelabel: Of called with interface type " + t.String())
	case reflect.Pointer:
		zero = reflect.New(t.Elem()).Interface().(T)
	}

	return zero.TypeLabel()
}
