package spec

import (
	"fmt"
	"reflect"
	"strconv"
)

// Repr renders a subject or expected value for diagnostics. NoValue renders
// as an empty string.
func Repr(v any) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case void:
		return ""
	case string:
		return strconv.Quote(x)
	case reflect.Type:
		return x.String()
	case *Feature, *Case, *Target:
		if isNil(x) {
			return "nil"
		}
		return x.(fmt.Stringer).String()
	case error:
		if isNil(x) {
			return fmt.Sprintf("%T(nil)", x)
		}
		return fmt.Sprintf("%T(%q)", x, x.Error())
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Func {
		return rv.Type().String()
	}
	return fmt.Sprintf("%#v", v)
}

// Phrase renders a target as an English sentence, e.g. `42 should be 21`.
func Phrase(t *Target) string {
	return Repr(t.subject) + " " + t.meaning + " " + t.verb + " " + Repr(t.expected)
}

func (t *Target) String() string {
	return fmt.Sprintf("Target(%s)", Repr(t.subject))
}
