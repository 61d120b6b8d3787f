package lounge

import (
	"reflect"
)

// CloneDeep returns a deep copy of v that keeps its Go types, unlike Clone
// which flattens to plain maps and slices. Maps, slices, arrays, pointers
// and exported struct fields are copied recursively. Unexported fields,
// funcs and chans are copied shallowly. Cyclic values are not supported.
func CloneDeep[T any](v T) T {
	out := deepCopy(reflect.ValueOf(&v).Elem())
	if res, ok := out.Interface().(T); ok {
		return res
	}
	var zero T
	return zero
}

func deepCopy(rv reflect.Value) reflect.Value {
	switch rv.Kind() {
	case reflect.Ptr:
		if rv.IsNil() {
			return reflect.Zero(rv.Type())
		}
		out := reflect.New(rv.Type().Elem())
		out.Elem().Set(deepCopy(rv.Elem()))
		return out

	case reflect.Interface:
		if rv.IsNil() {
			return reflect.Zero(rv.Type())
		}
		out := reflect.New(rv.Type()).Elem()
		out.Set(deepCopy(rv.Elem()))
		return out

	case reflect.Map:
		if rv.IsNil() {
			return reflect.Zero(rv.Type())
		}
		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), deepCopy(iter.Value()))
		}
		return out

	case reflect.Slice:
		if rv.IsNil() {
			return reflect.Zero(rv.Type())
		}
		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out.Index(i).Set(deepCopy(rv.Index(i)))
		}
		return out

	case reflect.Array:
		out := reflect.New(rv.Type()).Elem()
		for i := 0; i < rv.Len(); i++ {
			out.Index(i).Set(deepCopy(rv.Index(i)))
		}
		return out

	case reflect.Struct:
		out := reflect.New(rv.Type()).Elem()
		out.Set(rv)
		if rv.Type() == timeType {
			return out
		}
		for i := 0; i < rv.NumField(); i++ {
			if !rv.Type().Field(i).IsExported() {
				continue
			}
			out.Field(i).Set(deepCopy(rv.Field(i)))
		}
		return out

	default:
		return rv
	}
}
