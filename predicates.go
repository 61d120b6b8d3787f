package lounge

import (
	"errors"
	"math"
	"reflect"
	"regexp"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"time"
)

var timeType = reflect.TypeFor[time.Time]()

// anonymousFunc matches the symbol suffix the compiler gives closures.
var anonymousFunc = regexp.MustCompile(`^(func)?\d+$`)

// IsUndefined reports whether v is absent: untyped nil, or a nil pointer,
// map, slice, interface, func or chan.
func IsUndefined(v any) bool {
	if v == nil {
		return true
	}
	return isNilValue(reflect.ValueOf(v))
}

// IsNull reports whether v is absent. Go has a single nil, so IsNull and
// IsUndefined agree on every value.
func IsNull(v any) bool {
	return IsUndefined(v)
}

// isNilValue reports whether rv is invalid or a nil reference.
func isNilValue(rv reflect.Value) bool {
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// IsPlainObject reports whether v is a non-nil map keyed by strings.
// Structs, dates, documents and other specialized types are not plain.
func IsPlainObject(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Map && !rv.IsNil() && rv.Type().Key().Kind() == reflect.String
}

// IsArray reports whether v is a slice or an array.
func IsArray(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}

// IsFunction reports whether v is a func value.
func IsFunction(v any) bool {
	return reflect.ValueOf(v).Kind() == reflect.Func
}

// IsBoolean reports whether v has a bool kind. Named bool types count.
func IsBoolean(v any) bool {
	return reflect.ValueOf(v).Kind() == reflect.Bool
}

// IsString reports whether v has a string kind. Named string types count.
func IsString(v any) bool {
	return reflect.ValueOf(v).Kind() == reflect.String
}

// IsObject reports whether v is a non-nil reference or composite value:
// map, struct, slice, array, func, chan or pointer.
func IsObject(v any) bool {
	rv := reflect.ValueOf(v)
	if isNilValue(rv) {
		return false
	}
	switch rv.Kind() {
	case reflect.Map, reflect.Struct, reflect.Slice, reflect.Array, reflect.Func, reflect.Chan, reflect.Ptr:
		return true
	default:
		return false
	}
}

// IsNaN reports whether v, coerced to a number, is NaN. Strings that do not
// parse as a number, absent values and composites coerce to NaN; bools and
// dates never do. Use IsTrueNaN to test for the IEEE-754 value itself.
func IsNaN(v any) bool {
	if IsUndefined(v) {
		return true
	}
	if _, ok := v.(time.Time); ok {
		return false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return false
	case reflect.Float32, reflect.Float64:
		return math.IsNaN(rv.Float())
	case reflect.Complex64, reflect.Complex128:
		c := rv.Complex()
		return math.IsNaN(real(c)) || math.IsNaN(imag(c))
	case reflect.String:
		s := strings.TrimSpace(rv.String())
		if s == "" {
			return false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			// Out of range still coerces to ±Inf.
			return !errors.Is(err, strconv.ErrRange)
		}
		return math.IsNaN(f)
	default:
		return true
	}
}

// IsTrueNaN reports whether v is a floating point NaN. Unlike IsNaN no
// coercion happens: a non-numeric string is not a true NaN.
func IsTrueNaN(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return math.IsNaN(rv.Float())
	default:
		return false
	}
}

// InArray reports whether needle occurs in s.
func InArray[T comparable](s []T, needle T) bool {
	return slices.Index(s, needle) >= 0
}

// FunctionName returns the declared name of fn. Methods resolve to the
// method name. Closures and non-function values yield "".
func FunctionName(fn any) string {
	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return ""
	}

	f := runtime.FuncForPC(rv.Pointer())
	if f == nil {
		return ""
	}

	name := f.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, "-fm")
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	if name == "" || anonymousFunc.MatchString(name) {
		return ""
	}
	return name
}

// TypeName returns the name of v's dynamic type with pointers removed,
// or "" for untyped nil and unnamed types.
func TypeName(v any) string {
	if v == nil {
		return ""
	}
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
