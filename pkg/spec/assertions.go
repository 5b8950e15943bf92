package spec

import (
	"cmp"
	"errors"
	"reflect"
	"strings"

	"github.com/onsi/gomega"
	"github.com/onsi/gomega/types"
)

// Be expects the subject to equal expected. Numbers compare by value
// across numeric types; everything else compares deeply.
func (t *Target) Be(expected any) *Target {
	t.Evaluate(equal(t.subject, expected), "be", expected)
	return t
}

// BeLessThan expects subject < expected.
func (t *Target) BeLessThan(expected any) *Target {
	t.Evaluate(compare(t.subject, "<", expected), "be less than", expected)
	return t
}

// BeLessOrEqual expects subject <= expected.
func (t *Target) BeLessOrEqual(expected any) *Target {
	t.Evaluate(compare(t.subject, "<=", expected), "be less or equal", expected)
	return t
}

// BeGreaterThan expects subject > expected.
func (t *Target) BeGreaterThan(expected any) *Target {
	t.Evaluate(compare(t.subject, ">", expected), "be greater than", expected)
	return t
}

// BeGreaterOrEqual expects subject >= expected.
func (t *Target) BeGreaterOrEqual(expected any) *Target {
	t.Evaluate(compare(t.subject, ">=", expected), "be greater or equal", expected)
	return t
}

// Hold expects the subject to be truthy.
func (t *Target) Hold() *Target {
	t.Evaluate(truthy(t.subject), "be", true)
	return t
}

// Have expects the subject to expose a method, field or string map key
// called name.
func (t *Target) Have(name string) *Target {
	t.Evaluate(hasMember(t.subject, name), "have", name)
	return t
}

// Contain expects element to be in the subject: a substring or rune of a
// string, a key of a map, or an element of a slice or array.
func (t *Target) Contain(element any) *Target {
	t.Evaluate(contains(t.subject, element), "contain", element)
	return t
}

// Throw calls the subject, a func without arguments, and expects it to
// panic or return a non-nil error matching kind. kind is a reflect.Type
// (see Kind), an error matched with errors.Is, an exact error message or a
// func(error) bool predicate; a predicate that panics does not match. A nil
// kind matches anything raised.
// Whatever the subject raises never propagates past Throw.
func (t *Target) Throw(kind any) *Target {
	t.raised = invoke(t.subject)
	t.Evaluate(t.raised != nil && matchesKind(t.raised, kind), "throw", kind)
	return t
}

// Match expects the regular expression pattern to be found anywhere in the
// subject.
func (t *Target) Match(pattern string) *Target {
	t.Evaluate(succeeds(gomega.MatchRegexp(pattern), t.subject), "match", pattern)
	return t
}

// Succeed expects the subject, itself a *Target, to have been evaluated
// successfully.
func (t *Target) Succeed() *Target {
	inner, ok := t.subject.(*Target)
	t.Evaluate(ok && inner.done && inner.success, "succeed", NoValue)
	return t
}

// Fail expects the subject, itself a *Target, to have been evaluated
// unsuccessfully.
func (t *Target) Fail() *Target {
	inner, ok := t.subject.(*Target)
	t.Evaluate(ok && inner.done && !inner.success, "fail", NoValue)
	return t
}

// succeeds runs a gomega matcher and treats a matcher error as a plain
// false.
func succeeds(m types.GomegaMatcher, actual any) bool {
	ok, err := m.Match(actual)
	return err == nil && ok
}

func equal(actual, expected any) bool {
	if isNil(actual) || isNil(expected) {
		return isNil(actual) && isNil(expected)
	}
	if isNumber(actual) && isNumber(expected) {
		return succeeds(gomega.BeNumerically("==", expected), actual)
	}
	return succeeds(gomega.Equal(expected), actual)
}

func compare(actual any, op string, expected any) bool {
	if isNumber(actual) && isNumber(expected) {
		return succeeds(gomega.BeNumerically(op, expected), actual)
	}
	av, ev := reflect.ValueOf(actual), reflect.ValueOf(expected)
	if !av.IsValid() || !ev.IsValid() || av.Kind() != reflect.String || ev.Kind() != reflect.String {
		return false
	}
	c := cmp.Compare(av.String(), ev.String())
	switch op {
	case "<":
		return c < 0
	case "<=":
		return c <= 0
	case ">":
		return c > 0
	case ">=":
		return c >= 0
	}
	return false
}

func isNumber(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

func truthy(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.Complex64, reflect.Complex128:
		return rv.Complex() != 0
	case reflect.String, reflect.Array:
		return rv.Len() > 0
	case reflect.Slice, reflect.Map:
		return !rv.IsNil() && rv.Len() > 0
	case reflect.Pointer, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return !rv.IsNil()
	}
	return true
}

func hasMember(v any, name string) bool {
	if v == nil || name == "" {
		return false
	}
	typ := reflect.TypeOf(v)
	if _, ok := typ.MethodByName(name); ok {
		return true
	}
	if typ.Kind() != reflect.Pointer {
		if _, ok := reflect.PointerTo(typ).MethodByName(name); ok {
			return true
		}
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Struct:
		_, ok := rv.Type().FieldByName(name)
		return ok
	case reflect.Map:
		keyType := rv.Type().Key()
		if keyType.Kind() != reflect.String {
			return false
		}
		return rv.MapIndex(reflect.ValueOf(name).Convert(keyType)).IsValid()
	}
	return false
}

func contains(subject, element any) bool {
	if subject == nil {
		return false
	}
	rv := reflect.ValueOf(subject)
	switch rv.Kind() {
	case reflect.String:
		s := rv.String()
		if r, ok := element.(rune); ok {
			return strings.ContainsRune(s, r)
		}
		ev := reflect.ValueOf(element)
		if ev.IsValid() && ev.Kind() == reflect.String {
			return strings.Contains(s, ev.String())
		}
		return false
	case reflect.Map:
		return succeeds(gomega.HaveKey(gomega.Satisfy(func(k any) bool {
			return equal(k, element)
		})), subject)
	}
	return succeeds(gomega.ContainElement(gomega.Satisfy(func(e any) bool {
		return equal(e, element)
	})), subject)
}

// invoke calls fn and returns what it raised: a recovered panic wrapped in
// a PanicError, or the non-nil error returned as its last result.
func invoke(fn any) (raised error) {
	fv := reflect.ValueOf(fn)
	if !fv.IsValid() || fv.Kind() != reflect.Func || fv.IsNil() || fv.Type().NumIn() != 0 {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			raised = newPanicError(r)
		}
	}()
	out := fv.Call(nil)
	if n := len(out); n > 0 && fv.Type().Out(n-1) == errorType && !out[n-1].IsNil() {
		return out[n-1].Interface().(error)
	}
	return nil
}

func matchesKind(err error, kind any) bool {
	switch k := kind.(type) {
	case nil:
		return true
	case reflect.Type:
		if k.Kind() != reflect.Interface && !k.Implements(errorType) {
			return false
		}
		return errors.As(err, reflect.New(k).Interface())
	case func(error) bool:
		return predicateHolds(k, err)
	}
	return succeeds(gomega.MatchError(kind), err)
}

// predicateHolds treats a panicking predicate as no match.
func predicateHolds(pred func(error) bool, err error) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return pred(err)
}
