package typetree

import (
	"math"
	"reflect"
)

// assignValue stores a scalar, string or []byte payload decoded from the
// reader into v, converting between Go numeric kinds as needed and
// rejecting integer conversions that would overflow the destination or
// drop a sign. Floating-point stores (including an integer stored into a
// float field) are not checked for lost precision. v is always an
// addressable, settable value; a record, array or map decode that has no
// matching destination routes into a discard scratch value instead of
// calling this function with an invalid one.
func assignValue(v reflect.Value, val any) error {
	if !v.IsValid() {
		return nil
	}
	if v.Kind() == reflect.Interface {
		v.Set(reflect.ValueOf(val))
		return nil
	}

	switch vv := val.(type) {
	case bool:
		if v.Kind() != reflect.Bool {
			return customErrorf("cannot assign bool into %s", v.Type())
		}
		v.SetBool(vv)
		return nil

	case string:
		if v.Kind() != reflect.String {
			return customErrorf("cannot assign string into %s", v.Type())
		}
		v.SetString(vv)
		return nil

	case []byte:
		if v.Kind() == reflect.Slice && v.Type().Elem().Kind() == reflect.Uint8 {
			v.SetBytes(vv)
			return nil
		}
		return customErrorf("cannot assign []byte into %s", v.Type())

	case float32, float64:
		f, _ := toFloat64(val)
		if v.Kind() != reflect.Float32 && v.Kind() != reflect.Float64 {
			return customErrorf("cannot assign float into %s", v.Type())
		}
		v.SetFloat(f)
		return nil

	default:
		return assignInt(v, val)
	}
}

func assignInt(v reflect.Value, val any) error {
	switch {
	case isIntKind(v.Kind()):
		n, ok := toInt64(val)
		if !ok {
			return customErrorf("cannot assign %T into %s", val, v.Type())
		}
		if v.OverflowInt(n) {
			return customErrorf("value %d overflows %s", n, v.Type())
		}
		v.SetInt(n)
		return nil

	case isUintKind(v.Kind()):
		n, ok := toUint64(val)
		if !ok {
			return customErrorf("cannot assign %T into %s", val, v.Type())
		}
		if v.OverflowUint(n) {
			return customErrorf("value %d overflows %s", n, v.Type())
		}
		v.SetUint(n)
		return nil

	case v.Kind() == reflect.Float32 || v.Kind() == reflect.Float64:
		n, ok := toInt64(val)
		if !ok {
			return customErrorf("cannot assign %T into %s", val, v.Type())
		}
		v.SetFloat(float64(n))
		return nil

	default:
		return customErrorf("cannot assign %T into %s", val, v.Type())
	}
}

func isIntKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUintKind(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func toInt64(val any) (int64, bool) {
	switch x := val.(type) {
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	case uint64:
		if x > math.MaxInt64 {
			return 0, false
		}
		return int64(x), true
	}
	return 0, false
}

func toUint64(val any) (uint64, bool) {
	switch x := val.(type) {
	case uint8:
		return uint64(x), true
	case uint16:
		return uint64(x), true
	case uint32:
		return uint64(x), true
	case uint64:
		return x, true
	case int8:
		if x < 0 {
			return 0, false
		}
		return uint64(x), true
	case int16:
		if x < 0 {
			return 0, false
		}
		return uint64(x), true
	case int32:
		if x < 0 {
			return 0, false
		}
		return uint64(x), true
	case int64:
		if x < 0 {
			return 0, false
		}
		return uint64(x), true
	}
	return 0, false
}

func toFloat64(val any) (float64, bool) {
	switch x := val.(type) {
	case float32:
		return float64(x), true
	case float64:
		return x, true
	}
	return 0, false
}
