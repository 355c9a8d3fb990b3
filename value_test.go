// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jgram_test

import (
	"errors"
	"testing"

	"github.com/creachadair/jgram"
	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  jgram.Type
		valid bool
	}{
		{"Nil", nil, jgram.TypeNull, false},
		{"Bool", true, jgram.TypeBoolean, true},
		{"Int", 25, jgram.TypeNumber, true},
		{"Uint", uint16(9), jgram.TypeNumber, true},
		{"Float", 3.14, jgram.TypeNumber, true},
		{"String", "pear", jgram.TypeString, true},
		{"EmptyString", "", jgram.TypeString, true},
		{"Array", jgram.Array{jgram.New(1)}, jgram.TypeArray, true},
		{"ValueSlice", []jgram.Value{jgram.New(1)}, jgram.TypeArray, true},
		{"AnySlice", []any{1, "two", nil}, jgram.TypeArray, true},
		{"Object", jgram.Object{"a": jgram.New(1)}, jgram.TypeObject, true},
		{"AnyMap", map[string]any{"a": true}, jgram.TypeObject, true},
		{"Value", jgram.New("wrapped"), jgram.TypeString, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := jgram.New(tc.input)
			if got := v.Type(); got != tc.want {
				t.Errorf("New(%v).Type() = %v, want %v", tc.input, got, tc.want)
			}
			if got := v.IsValid(); got != tc.valid {
				t.Errorf("New(%v).IsValid() = %v, want %v", tc.input, got, tc.valid)
			}
		})
	}
}

func TestNewInvalid(t *testing.T) {
	mtest.MustPanic(t, func() { jgram.New(struct{}{}) })
	mtest.MustPanic(t, func() { jgram.New(make(chan int)) })
	mtest.MustPanic(t, func() { jgram.New([]bool{true}) })
	mtest.MustPanic(t, func() { jgram.New(map[int]string{1: "no"}) })
}

func TestAccessors(t *testing.T) {
	if got, err := jgram.New(true).AsBoolean(); err != nil || got != true {
		t.Errorf("AsBoolean: got %v, %v; want true, nil", got, err)
	}
	if got, err := jgram.New(-2.5).AsNumber(); err != nil || got != -2.5 {
		t.Errorf("AsNumber: got %v, %v; want -2.5, nil", got, err)
	}
	if got, err := jgram.New("apple").AsString(); err != nil || got != "apple" {
		t.Errorf("AsString: got %q, %v; want apple, nil", got, err)
	}

	// Each accessor reports a type error for a value of the wrong kind, and
	// the error carries both sides of the mismatch.
	var terr *jgram.TypeError
	if _, err := jgram.New(5).AsString(); !errors.As(err, &terr) {
		t.Errorf("AsString on number: got error %v, want TypeError", err)
	} else if terr.Want != jgram.TypeString || terr.Got != jgram.TypeNumber {
		t.Errorf("AsString error: want=%v got=%v", terr.Want, terr.Got)
	}
	if _, err := jgram.New(5).AsArray(); !errors.As(err, &terr) {
		t.Errorf("AsArray on number: got error %v, want TypeError", err)
	}
	if _, err := jgram.New(nil).AsBoolean(); !errors.As(err, &terr) {
		t.Errorf("AsBoolean on null: got error %v, want TypeError", err)
	}
	if _, err := jgram.New("x").AsObject(); !errors.As(err, &terr) {
		t.Errorf("AsObject on string: got error %v, want TypeError", err)
	}
}

func TestReferenceAliasing(t *testing.T) {
	v1 := jgram.New(jgram.Array{jgram.New("dog"), jgram.New("cat")})
	v2 := v1 // shares the underlying array

	if !v1.Equal(v2) {
		t.Error("copies of an array value are not equal")
	}
	a, err := v2.AsArray()
	if err != nil {
		t.Fatalf("AsArray: unexpected error: %v", err)
	}
	(*a)[0] = jgram.New("bird")
	got, err := v1.Element(0)
	if err != nil {
		t.Fatalf("Element(0): unexpected error: %v", err)
	}
	if s, _ := got.AsString(); s != "bird" {
		t.Errorf("after aliased update: element 0 is %q, want bird", s)
	}
	*a = append(*a, jgram.New("fish"))
	if got := v1.Length(); got != 3 {
		t.Errorf("after aliased append: length is %d, want 3", got)
	}

	o1 := jgram.New(jgram.Object{"n": jgram.New(1)})
	o2 := o1
	if err := o2.SetProperty("n", jgram.New(2)); err != nil {
		t.Fatalf("SetProperty: unexpected error: %v", err)
	}
	p, err := o1.Property("n")
	if err != nil {
		t.Fatalf("Property: unexpected error: %v", err)
	}
	if n, _ := p.AsNumber(); n != 2 {
		t.Errorf("after aliased update: property n is %v, want 2", n)
	}
}

func TestScalarIndependence(t *testing.T) {
	v1 := jgram.New("ABC")
	v2 := v1
	v1 = jgram.New("xyz")
	if s, _ := v2.AsString(); s != "ABC" {
		t.Errorf("copy changed with its source: got %q, want ABC", s)
	}
	if v1.Equal(v2) {
		t.Error("distinct strings reported equal")
	}
}

func TestElementGrowth(t *testing.T) {
	v := jgram.New(jgram.Array{})

	// Reading past the end extends the array with nulls.
	e, err := v.Element(3)
	if err != nil {
		t.Fatalf("Element(3): unexpected error: %v", err)
	}
	if e.IsValid() {
		t.Errorf("Element(3) = %v, want null", e)
	}
	if got := v.Length(); got != 4 {
		t.Errorf("after growth: length is %d, want 4", got)
	}
	for i := range 3 {
		if e, err := v.Element(i); err != nil || e.IsValid() {
			t.Errorf("Element(%d) = %v, %v; want null, nil", i, e, err)
		}
	}

	if err := v.SetElement(5, jgram.New(true)); err != nil {
		t.Fatalf("SetElement(5): unexpected error: %v", err)
	}
	if got := v.Length(); got != 6 {
		t.Errorf("after SetElement(5): length is %d, want 6", got)
	}

	if _, err := v.Element(-1); !errors.Is(err, jgram.ErrRange) {
		t.Errorf("Element(-1): got %v, want %v", err, jgram.ErrRange)
	}
	if _, err := v.Element(jgram.MaxElements); !errors.Is(err, jgram.ErrRange) {
		t.Errorf("Element(MaxElements): got %v, want %v", err, jgram.ErrRange)
	}
	if err := v.SetElement(-1, jgram.New(1)); !errors.Is(err, jgram.ErrRange) {
		t.Errorf("SetElement(-1): got %v, want %v", err, jgram.ErrRange)
	}

	var terr *jgram.TypeError
	if _, err := jgram.New(5).Element(0); !errors.As(err, &terr) {
		t.Errorf("Element on number: got %v, want TypeError", err)
	}
	if got := jgram.New(5).Length(); got != 0 {
		t.Errorf("Length of non-array: got %d, want 0", got)
	}
}

func TestPropertyCreation(t *testing.T) {
	v := jgram.New(jgram.Object{})
	if v.HasProperty("x") {
		t.Error("empty object reports property x")
	}

	// Reading a missing property inserts a null member.
	p, err := v.Property("x")
	if err != nil {
		t.Fatalf("Property(x): unexpected error: %v", err)
	}
	if p.IsValid() {
		t.Errorf("Property(x) = %v, want null", p)
	}
	if !v.HasProperty("x") {
		t.Error("property x was not created")
	}

	// The empty string is a legal property name.
	if _, err := v.Property(""); err != nil {
		t.Errorf(`Property(""): unexpected error: %v`, err)
	}
	if !v.HasProperty("") {
		t.Error(`property "" was not created`)
	}

	if err := v.SetProperty("x", jgram.New(5)); err != nil {
		t.Fatalf("SetProperty: unexpected error: %v", err)
	}
	p, err = v.Property("x")
	if err != nil {
		t.Fatalf("Property(x): unexpected error: %v", err)
	}
	if n, _ := p.AsNumber(); n != 5 {
		t.Errorf("Property(x) = %v, want 5", p)
	}

	var terr *jgram.TypeError
	if _, err := jgram.New(5).Property("x"); !errors.As(err, &terr) {
		t.Errorf("Property on number: got %v, want TypeError", err)
	}
	if jgram.New(nil).HasProperty("x") {
		t.Error("HasProperty true on null")
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b jgram.Value
		want bool
	}{
		{"Nulls", jgram.New(nil), jgram.Value{}, true},
		{"NullBool", jgram.New(nil), jgram.New(false), false},
		{"Bools", jgram.New(true), jgram.New(true), true},
		{"IntFloat", jgram.New(1), jgram.New(1.0), true},
		{"Numbers", jgram.New(1), jgram.New(2), false},
		{"NumberString", jgram.New(1), jgram.New("1"), false},
		{"Strings", jgram.New("ok"), jgram.New("ok"), true},
		{"EmptyArrays", jgram.New(jgram.Array{}), jgram.New(jgram.Array{}), true},
		{"EmptyKinds", jgram.New(jgram.Array{}), jgram.New(jgram.Object{}), false},
		{"Arrays",
			jgram.New([]any{1, "two", nil}),
			jgram.New([]any{1, "two", nil}), true},
		{"ArrayOrder",
			jgram.New([]any{1, 2}),
			jgram.New([]any{2, 1}), false},
		{"ArrayLength",
			jgram.New([]any{1}),
			jgram.New([]any{1, 2}), false},
		{"Objects",
			jgram.New(map[string]any{"a": 1, "b": []any{true}}),
			jgram.New(map[string]any{"b": []any{true}, "a": 1}), true},
		{"ObjectKeys",
			jgram.New(map[string]any{"a": 1}),
			jgram.New(map[string]any{"b": 1}), false},
		{"ObjectValues",
			jgram.New(map[string]any{"a": 1}),
			jgram.New(map[string]any{"a": 2}), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Equal(tc.b); got != tc.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
			if got := tc.b.Equal(tc.a); got != tc.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tc.b, tc.a, got, tc.want)
			}
		})
	}
}

func TestKeys(t *testing.T) {
	o := jgram.Object{
		"banana": jgram.New(1),
		"":       jgram.New(2),
		"apple":  jgram.New(3),
	}
	got := o.Keys()
	want := []string{"", "apple", "banana"}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("Keys (-got, +want):\n%s", diff)
	}
}

func TestPath(t *testing.T) {
	root := jgram.New(map[string]any{
		"list": []any{1, 2, 3},
		"y": map[string]any{
			"hello": "there",
		},
	})

	t.Run("OK", func(t *testing.T) {
		tests := []struct {
			path []any
			want jgram.Value
		}{
			{nil, root},
			{[]any{"list"}, jgram.New([]any{1, 2, 3})},
			{[]any{"list", 1}, jgram.New(2)},
			{[]any{"list", -1}, jgram.New(3)},
			{[]any{"y", "hello"}, jgram.New("there")},
		}
		for _, tc := range tests {
			got, err := jgram.Path(root, tc.path...)
			if err != nil {
				t.Errorf("Path(%v): unexpected error: %v", tc.path, err)
				continue
			}
			if !got.Equal(tc.want) {
				t.Errorf("Path(%v) = %v, want %v", tc.path, got, tc.want)
			}
		}
	})
	t.Run("Errors", func(t *testing.T) {
		// Missing properties, out-of-range indexes in either
		// direction, traversal into a non-container, and path
		// elements of unsupported type are all reported as errors.
		paths := [][]any{
			{"nonesuch"},
			{"list", 5},
			{"list", -4},
			{0},
			{"y", "hello", "x"},
			{"list", 3.5},
		}
		for _, path := range paths {
			if got, err := jgram.Path(root, path...); err == nil {
				t.Errorf("Path(%v) = %v, want error", path, got)
			}
		}
	})
}

func TestValueJSON(t *testing.T) {
	v := jgram.New(map[string]any{"a": []any{1, 2}})
	const want = `{"a": [1, 2]}`
	if got := v.JSON(); got != want {
		t.Errorf("JSON: got %#q, want %#q", got, want)
	}
}
