package lounge

import (
	"bytes"
	"database/sql/driver"
	"encoding"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// isoLayout is ISO-8601 with millisecond precision, the format stores and
// JavaScript clients agree on.
const isoLayout = "2006-01-02T15:04:05.000Z07:00"

// valueKind is the closed set of shapes the clone engine dispatches on.
type valueKind int

const (
	kindAbsent valueKind = iota
	kindSequence
	kindDocument
	kindObject
	kindDate
	kindScalar
	kindUnsupported
)

var (
	valuerType        = reflect.TypeFor[driver.Valuer]()
	textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()
)

// Clone returns a plain, store-safe copy of v.
//
// Slices and arrays become []any, maps and structs become map[string]any,
// dates become time.Time (or ISO strings with DateToISO), and values that
// implement Document convert themselves. Containers are always rebuilt, so
// the result never aliases v. Funcs and chans are never copied.
//
// Errors returned by a document's conversion method are passed through
// unchanged. Cyclic values are not supported.
func Clone(v any, opts Options) (any, error) {
	c := &cloner{opts: opts}
	return c.clone(v)
}

// cloner carries the options and the current path through one Clone call.
type cloner struct {
	opts Options
	path []string
}

// clone handles the common decoded-JSON shapes without reflection.
func (c *cloner) clone(v any) (any, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case string, bool, float64, int, int64:
		return t, nil
	case map[string]any:
		if t == nil {
			return t, nil
		}
		return c.cloneMap(t)
	case []any:
		if t == nil {
			return t, nil
		}
		out := make([]any, len(t))
		for i, elem := range t {
			c.push(strconv.Itoa(i))
			val, err := c.clone(elem)
			c.pop()
			if err != nil {
				return nil, err
			}
			out[i] = val
		}
		return out, nil
	}
	return c.cloneValue(reflect.ValueOf(v))
}

// cloneMap clones a plain map without reflection.
func (c *cloner) cloneMap(m map[string]any) (any, error) {
	out := make(map[string]any, len(m))
	for k, elem := range m {
		c.push(k)
		val, err := c.clone(elem)
		c.pop()
		if err != nil {
			return nil, err
		}
		if !c.opts.Minimize || !IsUndefined(val) {
			out[k] = val
		}
	}
	return c.finishObject(out), nil
}

// cloneValue dispatches on the classified shape of rv.
func (c *cloner) cloneValue(rv reflect.Value) (any, error) {
	kind, rv := classify(rv)

	switch kind {
	case kindAbsent:
		if !rv.IsValid() {
			return nil, nil
		}
		return rv.Interface(), nil
	case kindSequence:
		return c.cloneSequence(rv)
	case kindDocument:
		return c.cloneDocument(rv.Interface().(Document))
	case kindDate:
		return c.cloneDate(rv.Interface().(time.Time)), nil
	case kindObject:
		if rv.Kind() == reflect.Struct {
			return c.cloneStruct(rv)
		}
		return c.cloneReflectMap(rv)
	case kindScalar:
		return c.cloneScalar(rv)
	case kindUnsupported:
		if c.opts.Strict {
			return nil, newUnsupportedError(strings.Join(c.path, "."), rv.Type().String())
		}
		return nil, nil
	default:
		panic("lounge: unhandled value kind " + strconv.Itoa(int(kind)))
	}
}

// classify decides which clone branch applies to rv, dereferencing
// pointers and interfaces on the way. The returned value is the one the
// branch operates on.
func classify(rv reflect.Value) (valueKind, reflect.Value) {
	for {
		switch rv.Kind() {
		case reflect.Func, reflect.Chan, reflect.UnsafePointer:
			// Unsupported whether nil or not.
			return kindUnsupported, rv
		}
		if isNilValue(rv) {
			return kindAbsent, rv
		}

		switch rv.Kind() {
		case reflect.Slice:
			if rv.Type().Elem().Kind() == reflect.Uint8 {
				return kindScalar, rv
			}
			return kindSequence, rv
		case reflect.Array:
			if rv.Type().Elem().Kind() == reflect.Uint8 {
				return kindScalar, rv
			}
			return kindSequence, rv
		}

		if rv.CanInterface() {
			if IsLoungeObject(rv.Interface()) {
				return kindDocument, rv
			}
			if rv.Type().Implements(valuerType) {
				return kindScalar, rv
			}
		}

		switch rv.Kind() {
		case reflect.Ptr, reflect.Interface:
			rv = rv.Elem()
			continue
		case reflect.Struct:
			if rv.Type() == timeType {
				return kindDate, rv
			}
			return kindObject, rv
		case reflect.Map:
			if !stringableKey(rv.Type().Key()) {
				return kindUnsupported, rv
			}
			return kindObject, rv
		case reflect.Bool, reflect.String,
			reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
			reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
			return kindScalar, rv
		default:
			return kindUnsupported, rv
		}
	}
}

func stringableKey(t reflect.Type) bool {
	if t.Implements(textMarshalerType) {
		return true
	}
	switch t.Kind() {
	case reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}

func (c *cloner) cloneSequence(rv reflect.Value) (any, error) {
	out := make([]any, rv.Len())
	for i := range out {
		c.push(strconv.Itoa(i))
		val, err := c.cloneValue(rv.Index(i))
		c.pop()
		if err != nil {
			return nil, err
		}
		out[i] = val
	}
	return out, nil
}

func (c *cloner) cloneDocument(doc Document) (any, error) {
	if c.opts.JSON {
		if jd, ok := doc.(JSONDocument); ok {
			return jd.ToJSON(c.opts)
		}
	}
	return doc.ToObject(c.opts)
}

func (c *cloner) cloneDate(t time.Time) any {
	if c.opts.DateToISO {
		return t.UTC().Format(isoLayout)
	}
	return t.Round(0)
}

func (c *cloner) cloneStruct(rv reflect.Value) (any, error) {
	plan := planFor(rv.Type())
	out := make(map[string]any, len(plan.fields))

	for _, f := range plan.fields {
		fv, ok := f.field(rv)
		if !ok {
			continue
		}
		if f.omitEmpty && isEmptyValue(fv) {
			continue
		}

		c.push(f.key)
		val, err := c.cloneValue(fv)
		c.pop()
		if err != nil {
			return nil, err
		}
		if !c.opts.Minimize || !IsUndefined(val) {
			out[f.key] = val
		}
	}
	return c.finishObject(out), nil
}

func (c *cloner) cloneReflectMap(rv reflect.Value) (any, error) {
	out := make(map[string]any, rv.Len())

	iter := rv.MapRange()
	for iter.Next() {
		key, err := mapKey(iter.Key())
		if err != nil {
			return nil, err
		}

		c.push(key)
		val, err := c.cloneValue(iter.Value())
		c.pop()
		if err != nil {
			return nil, err
		}
		if !c.opts.Minimize || !IsUndefined(val) {
			out[key] = val
		}
	}
	return c.finishObject(out), nil
}

// finishObject applies the minimize rule: an object that kept no key
// collapses to nil.
func (c *cloner) finishObject(out map[string]any) any {
	if c.opts.Minimize && len(out) == 0 {
		return nil
	}
	return out
}

func mapKey(k reflect.Value) (string, error) {
	if k.Kind() == reflect.String {
		return k.String(), nil
	}
	if tm, ok := k.Interface().(encoding.TextMarshaler); ok {
		text, err := tm.MarshalText()
		if err != nil {
			return "", err
		}
		return string(text), nil
	}
	switch k.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(k.Int(), 10), nil
	default:
		return strconv.FormatUint(k.Uint(), 10), nil
	}
}

// baseTypes maps scalar kinds to their unnamed Go type.
var baseTypes = map[reflect.Kind]reflect.Type{
	reflect.Bool:       reflect.TypeFor[bool](),
	reflect.String:     reflect.TypeFor[string](),
	reflect.Int:        reflect.TypeFor[int](),
	reflect.Int8:       reflect.TypeFor[int8](),
	reflect.Int16:      reflect.TypeFor[int16](),
	reflect.Int32:      reflect.TypeFor[int32](),
	reflect.Int64:      reflect.TypeFor[int64](),
	reflect.Uint:       reflect.TypeFor[uint](),
	reflect.Uint8:      reflect.TypeFor[uint8](),
	reflect.Uint16:     reflect.TypeFor[uint16](),
	reflect.Uint32:     reflect.TypeFor[uint32](),
	reflect.Uint64:     reflect.TypeFor[uint64](),
	reflect.Uintptr:    reflect.TypeFor[uintptr](),
	reflect.Float32:    reflect.TypeFor[float32](),
	reflect.Float64:    reflect.TypeFor[float64](),
	reflect.Complex64:  reflect.TypeFor[complex64](),
	reflect.Complex128: reflect.TypeFor[complex128](),
}

// cloneScalar coerces rv to a primitive value. What a driver.Valuer
// returns is cloned again, so dates and byte slices follow the options.
func (c *cloner) cloneScalar(rv reflect.Value) (any, error) {
	if rv.Type().Implements(valuerType) {
		v, err := rv.Interface().(driver.Valuer).Value()
		if err != nil {
			return nil, err
		}
		return c.clone(v)
	}

	switch rv.Kind() {
	case reflect.Slice:
		return bytes.Clone(rv.Bytes()), nil
	case reflect.Array:
		return rv.Interface(), nil
	}

	if base, ok := baseTypes[rv.Kind()]; ok && rv.Type() != base {
		return rv.Convert(base).Interface(), nil
	}
	return rv.Interface(), nil
}

// isEmptyValue reports whether v is empty in the encoding/json sense,
// which decides omitempty. Structs are never empty.
func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Pointer:
		return v.IsNil()
	default:
		return false
	}
}

func (c *cloner) push(seg string) {
	c.path = append(c.path, seg)
}

func (c *cloner) pop() {
	c.path = c.path[:len(c.path)-1]
}
