package check

import (
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"strconv"
)

type undefined struct{}

func (undefined) String() string { return "undefined" }

// Undefined is the value a Dict field reads as when its key is missing.
// Callers may pass it explicitly to stand for an absent value.
var Undefined any = undefined{}

// kind is the runtime tag of a candidate value.
type kind uint8

const (
	kindUndefined kind = iota
	kindNull
	kindNumber
	kindString
	kindBool
	kindArray
	kindObject
	kindOther
)

// numForm records which Go representation a number came from so that
// integers can be compared without a lossy trip through float64.
type numForm uint8

const (
	numInt numForm = iota
	numUint
	numFloat
)

type number struct {
	form numForm
	i    int64
	u    uint64
	f    float64
}

func (n number) float() float64 {
	switch n.form {
	case numInt:
		return float64(n.i)
	case numUint:
		return float64(n.u)
	default:
		return n.f
	}
}

// equal follows strict equality on IEEE doubles: NaN never equals anything
// and 0 equals -0.
func (n number) equal(m number) bool {
	switch {
	case n.form == numFloat || m.form == numFloat:
		return n.float() == m.float()
	case n.form == numInt && m.form == numInt:
		return n.i == m.i
	case n.form == numUint && m.form == numUint:
		return n.u == m.u
	case n.form == numInt:
		return n.i >= 0 && uint64(n.i) == m.u
	default:
		return m.i >= 0 && uint64(m.i) == n.u
	}
}

func (n number) String() string {
	switch n.form {
	case numInt:
		return strconv.FormatInt(n.i, 10)
	case numUint:
		return strconv.FormatUint(n.u, 10)
	}
	switch {
	case math.IsNaN(n.f):
		return "NaN"
	case math.IsInf(n.f, 1):
		return "Infinity"
	case math.IsInf(n.f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(n.f, 'g', -1, 64)
}

// value is a classified candidate.
type value struct {
	kind kind
	rv   reflect.Value // set for arrays and objects
	num  number
	str  string
	b    bool
}

var jsonNumberType = reflect.TypeOf(json.Number(""))

// maxIndirect bounds how many pointers and interfaces inspect follows, so a
// pointer that refers back to itself classifies as other instead of looping.
const maxIndirect = 32

// inspect classifies v without ever panicking.
func inspect(v any) value {
	switch x := v.(type) {
	case nil:
		return value{kind: kindNull}
	case undefined:
		return value{kind: kindUndefined}
	case string:
		return value{kind: kindString, str: x}
	case bool:
		return value{kind: kindBool, b: x}
	case float64:
		return value{kind: kindNumber, num: number{form: numFloat, f: x}}
	case int:
		return value{kind: kindNumber, num: number{form: numInt, i: int64(x)}}
	case json.Number:
		return inspectJSONNumber(x)
	}

	rv := reflect.ValueOf(v)
	for depth := 0; rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface; depth++ {
		if depth == maxIndirect {
			return value{kind: kindOther}
		}
		if rv.IsNil() {
			return value{kind: kindNull}
		}
		rv = rv.Elem()
	}
	if rv.Type() == jsonNumberType {
		return inspectJSONNumber(json.Number(rv.String()))
	}

	switch rv.Kind() {
	case reflect.Bool:
		return value{kind: kindBool, b: rv.Bool()}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return value{kind: kindNumber, num: number{form: numInt, i: rv.Int()}}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return value{kind: kindNumber, num: number{form: numUint, u: rv.Uint()}}
	case reflect.Float32, reflect.Float64:
		return value{kind: kindNumber, num: number{form: numFloat, f: rv.Float()}}
	case reflect.String:
		return value{kind: kindString, str: rv.String()}
	case reflect.Slice, reflect.Array:
		return value{kind: kindArray, rv: rv}
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return value{kind: kindObject, rv: rv}
		}
	}
	return value{kind: kindOther}
}

func inspectJSONNumber(n json.Number) value {
	if i, err := n.Int64(); err == nil {
		return value{kind: kindNumber, num: number{form: numInt, i: i}}
	}
	// Out of range literals read as ±Inf or 0.
	if f, err := n.Float64(); err == nil || errors.Is(err, strconv.ErrRange) {
		return value{kind: kindNumber, num: number{form: numFloat, f: f}}
	}
	return value{kind: kindOther}
}

// isNullish reports whether v is null or undefined.
func isNullish(v any) bool {
	k := inspect(v).kind
	return k == kindNull || k == kindUndefined
}

// field reads key from an object value. A missing key reads as Undefined.
func (val value) field(key string) any {
	if m, ok := val.rv.Interface().(map[string]any); ok {
		if x, found := m[key]; found {
			return x
		}
		return Undefined
	}
	k := reflect.ValueOf(key).Convert(val.rv.Type().Key())
	x := val.rv.MapIndex(k)
	if !x.IsValid() {
		return Undefined
	}
	return x.Interface()
}

// each calls fn for every element of an array or every value of an object
// and stops at the first false.
func (val value) each(fn func(any) bool) bool {
	switch val.kind {
	case kindArray:
		if s, ok := val.rv.Interface().([]any); ok {
			for _, x := range s {
				if !fn(x) {
					return false
				}
			}
			return true
		}
		for i := 0; i < val.rv.Len(); i++ {
			if !fn(val.rv.Index(i).Interface()) {
				return false
			}
		}
		return true
	case kindObject:
		if m, ok := val.rv.Interface().(map[string]any); ok {
			for _, x := range m {
				if !fn(x) {
					return false
				}
			}
			return true
		}
		iter := val.rv.MapRange()
		for iter.Next() {
			if !fn(iter.Value().Interface()) {
				return false
			}
		}
		return true
	}
	return false
}
