// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jgram

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// A Type identifies which of the six JSON kinds a Value holds.
// Kinds are either scalar (null, boolean, number, string), whose
// payload is copied with the Value, or reference (array, object),
// whose payload is a shared container aliased by every copy.
type Type byte

// Constants defining the valid Type values.
const (
	TypeNull    Type = iota // the null value; the zero Value
	TypeBoolean             // a boolean flag
	TypeNumber              // a 64-bit floating-point number
	TypeString              // an owned character sequence
	TypeArray               // a shared, ordered sequence of values
	TypeObject              // a shared mapping from names to values
)

var typeStr = [...]string{
	TypeNull:    "null",
	TypeBoolean: "boolean",
	TypeNumber:  "number",
	TypeString:  "string",
	TypeArray:   "array",
	TypeObject:  "object",
}

func (t Type) String() string {
	if int(t) < len(typeStr) {
		return typeStr[t]
	}
	return "invalid"
}

// An Array is an ordered, resizable sequence of values.
type Array []Value

// An Object is a collection of named properties. Property names are
// case-sensitive and unique per object; the empty string is a valid
// name. Iteration order is key order, not insertion order.
type Object map[string]Value

// Keys returns the property names of o in sorted order.
func (o Object) Keys() []string {
	keys := make([]string, 0, len(o))
	for key := range o {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// MaxElements is the exclusive upper bound on array indices accepted
// by Element and SetElement.
const MaxElements = 1 << 24

// ErrRange is reported when an array or path index is out of range.
var ErrRange = errors.New("index out of range")

// A Value is a JSON value of any kind. The zero Value is null.
//
// A Value of array or object kind holds a reference to a shared
// container: copying the Value yields a new handle on the same
// container, mutations through either handle are visible through
// both, and the container lives as long as any handle does. Values
// of the other kinds own their payload outright.
//
// Values are not safe for concurrent mutation; the caller is
// responsible for synchronizing shared containers.
type Value struct {
	typ Type
	b   bool
	n   float64
	s   string
	a   *Array
	o   Object
}

// New constructs a Value from v. It accepts nil, bool, string, any
// integer or floating-point type, Value, Array, []Value, Object, and
// map[string]Value, along with []any and map[string]any combinations
// of those. Constructing from a container copies the container into a
// fresh shared cell; the member Values themselves are copied
// Value-wise, so members of reference kind still alias their
// containers.
//
// New panics if v does not have one of these types.
func New(v any) Value {
	switch t := v.(type) {
	case nil:
		return Value{}
	case Value:
		return t
	case bool:
		return Value{typ: TypeBoolean, b: t}
	case float64:
		return newNumber(t)
	case float32:
		return newNumber(float64(t))
	case int:
		return newNumber(float64(t))
	case int8:
		return newNumber(float64(t))
	case int16:
		return newNumber(float64(t))
	case int32:
		return newNumber(float64(t))
	case int64:
		return newNumber(float64(t))
	case uint:
		return newNumber(float64(t))
	case uint8:
		return newNumber(float64(t))
	case uint16:
		return newNumber(float64(t))
	case uint32:
		return newNumber(float64(t))
	case uint64:
		return newNumber(float64(t))
	case string:
		return newString(t)
	case Array:
		return newArray(t)
	case []Value:
		return newArray(t)
	case Object:
		return newObject(t)
	case map[string]Value:
		return newObject(t)
	case []any:
		vs := make(Array, len(t))
		for i, elt := range t {
			vs[i] = New(elt)
		}
		return Value{typ: TypeArray, a: &vs}
	case map[string]any:
		o := make(Object, len(t))
		for key, elt := range t {
			o[key] = New(elt)
		}
		return Value{typ: TypeObject, o: o}
	default:
		panic(fmt.Sprintf("jgram: cannot convert %T to a Value", v))
	}
}

func newNumber(n float64) Value { return Value{typ: TypeNumber, n: n} }
func newString(s string) Value  { return Value{typ: TypeString, s: s} }

// newArray allocates a fresh shared container holding a copy of vs.
func newArray(vs Array) Value {
	a := make(Array, len(vs))
	copy(a, vs)
	return Value{typ: TypeArray, a: &a}
}

// newObject allocates a fresh shared container holding a copy of
// the members of fields.
func newObject(fields Object) Value {
	o := make(Object, len(fields))
	maps.Copy(o, fields)
	return Value{typ: TypeObject, o: o}
}

// Type reports the kind of value v currently holds.
func (v Value) Type() Type { return v.typ }

// IsValid reports whether v holds a non-null value.
func (v Value) IsValid() bool { return v.typ != TypeNull }

// IsReference reports whether v is of a reference kind, meaning
// copies of v share its underlying container.
func (v Value) IsReference() bool { return v.typ == TypeArray || v.typ == TypeObject }

// AsBoolean returns the boolean payload of v, or a *TypeError if v is
// not a boolean.
func (v Value) AsBoolean() (bool, error) {
	if v.typ != TypeBoolean {
		return false, &TypeError{Op: "AsBoolean", Want: TypeBoolean, Got: v.typ}
	}
	return v.b, nil
}

// AsNumber returns the numeric payload of v, or a *TypeError if v is
// not a number.
func (v Value) AsNumber() (float64, error) {
	if v.typ != TypeNumber {
		return 0, &TypeError{Op: "AsNumber", Want: TypeNumber, Got: v.typ}
	}
	return v.n, nil
}

// AsString returns the string payload of v, or a *TypeError if v is
// not a string.
func (v Value) AsString() (string, error) {
	if v.typ != TypeString {
		return "", &TypeError{Op: "AsString", Want: TypeString, Got: v.typ}
	}
	return v.s, nil
}

// AsArray returns the shared container of v, or a *TypeError if v is
// not an array. Mutations of the returned container are visible
// through every copy of v.
func (v Value) AsArray() (*Array, error) {
	if v.typ != TypeArray {
		return nil, &TypeError{Op: "AsArray", Want: TypeArray, Got: v.typ}
	}
	return v.a, nil
}

// AsObject returns the shared container of v, or a *TypeError if v is
// not an object. Mutations of the returned container are visible
// through every copy of v.
func (v Value) AsObject() (Object, error) {
	if v.typ != TypeObject {
		return nil, &TypeError{Op: "AsObject", Want: TypeObject, Got: v.typ}
	}
	return v.o, nil
}

// Length reports the number of elements of an array value, or 0 if v
// is not an array.
func (v Value) Length() int {
	if v.typ != TypeArray {
		return 0
	}
	return len(*v.a)
}

// Element returns element i of an array value. If i is past the end
// of the array, the shared container grows to length i+1 with null
// elements to accommodate it; the growth is visible through every
// copy of v. Element reports ErrRange if i is negative or at least
// MaxElements, and a *TypeError if v is not an array.
func (v Value) Element(i int) (Value, error) {
	a, err := v.AsArray()
	if err != nil {
		return Value{}, err
	}
	if err := growTo(a, i); err != nil {
		return Value{}, err
	}
	return (*a)[i], nil
}

// SetElement assigns element i of an array value, growing the shared
// container with nulls as Element does.
func (v Value) SetElement(i int, e Value) error {
	a, err := v.AsArray()
	if err != nil {
		return err
	}
	if err := growTo(a, i); err != nil {
		return err
	}
	(*a)[i] = e
	return nil
}

func growTo(a *Array, i int) error {
	if i < 0 || i >= MaxElements {
		return fmt.Errorf("element %d: %w", i, ErrRange)
	}
	for len(*a) <= i {
		*a = append(*a, Value{})
	}
	return nil
}

// HasProperty reports whether v is an object with a property of the
// given name. Unlike Property, it does not create the property.
func (v Value) HasProperty(name string) bool {
	if v.typ != TypeObject {
		return false
	}
	_, ok := v.o[name]
	return ok
}

// Property returns the named property of an object value. If the
// property does not exist it is created as null, and the insertion is
// visible through every copy of v. Property reports a *TypeError if v
// is not an object.
func (v Value) Property(name string) (Value, error) {
	o, err := v.AsObject()
	if err != nil {
		return Value{}, err
	}
	p, ok := o[name]
	if !ok {
		o[name] = Value{}
	}
	return p, nil
}

// SetProperty assigns the named property of an object value.
func (v Value) SetProperty(name string, e Value) error {
	o, err := v.AsObject()
	if err != nil {
		return err
	}
	o[name] = e
	return nil
}

// Equal reports whether v and w hold equal content. Values of
// different kinds are unequal; scalars compare by payload; arrays and
// objects compare element-by-element and key-by-key, regardless of
// whether they share a container.
func (v Value) Equal(w Value) bool {
	if v.typ != w.typ {
		return false
	}
	switch v.typ {
	case TypeNull:
		return true
	case TypeBoolean:
		return v.b == w.b
	case TypeNumber:
		return v.n == w.n
	case TypeString:
		return v.s == w.s
	case TypeArray:
		if len(*v.a) != len(*w.a) {
			return false
		}
		for i, e := range *v.a {
			if !e.Equal((*w.a)[i]) {
				return false
			}
		}
		return true
	case TypeObject:
		if len(v.o) != len(w.o) {
			return false
		}
		for key, e := range v.o {
			f, ok := w.o[key]
			if !ok || !e.Equal(f) {
				return false
			}
		}
		return true
	}
	return false
}

// JSON renders v to compact JSON text.
func (v Value) JSON() string { return FormatToString(v) }

// Path traverses v by the given path elements and returns the value
// it arrives at. A string element selects an object property; an int
// element selects an array index, with negative indices counting
// backward from the end. An empty path returns v itself.
//
// Unlike Element and Property, Path never modifies the values it
// traverses: a missing property or an out-of-range index is an error.
func Path(v Value, path ...any) (Value, error) {
	cur := v
	for _, elt := range path {
		switch t := elt.(type) {
		case string:
			obj, err := cur.AsObject()
			if err != nil {
				return Value{}, fmt.Errorf("path %q: %w", t, err)
			}
			p, ok := obj[t]
			if !ok {
				return Value{}, fmt.Errorf("path %q: no such property", t)
			}
			cur = p
		case int:
			arr, err := cur.AsArray()
			if err != nil {
				return Value{}, fmt.Errorf("path %d: %w", t, err)
			}
			i := t
			if i < 0 {
				i += len(*arr)
			}
			if i < 0 || i >= len(*arr) {
				return Value{}, fmt.Errorf("path %d: %w", t, ErrRange)
			}
			cur = (*arr)[i]
		default:
			return Value{}, fmt.Errorf("invalid path element %T", elt)
		}
	}
	return cur, nil
}
