package check

import (
	"fmt"
	"math"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// Narrow checks v against c and, on success, converts it to T.
//
// When v already has type T it is returned as is. Otherwise it is decoded
// with mapstructure using `json` struct tags, so a checked
// map[string]any from encoding/json lands in the struct the shape describes.
// Keys the struct does not declare are ignored, mirroring Dict. Numbers
// only land in integer fields when they are integral: 12.5 never becomes 12.
func Narrow[T any](c Checker, v any) (T, error) {
	var out T
	if !c.Check(v) {
		return out, fmt.Errorf("%w: expected %s", ErrRejected, c)
	}
	if t, ok := v.(T); ok {
		return t, nil
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:    "json",
		Result:     &out,
		DecodeHook: narrowHook,
	})
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrConvert, err)
	}
	if err := dec.Decode(v); err != nil {
		return out, fmt.Errorf("%w: %v", ErrConvert, err)
	}
	return out, nil
}

// narrowHook turns the Undefined sentinel into nil and refuses to truncate
// fractional numbers into integer fields.
func narrowHook(from, to reflect.Type, data any) (any, error) {
	if _, ok := data.(undefined); ok {
		return nil, nil
	}
	if !isFloatKind(from.Kind()) || !isIntegerKind(to.Kind()) {
		return data, nil
	}
	f := reflect.ValueOf(data).Float()
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return nil, fmt.Errorf("%v is not an integer", f)
	}
	return data, nil
}

func isFloatKind(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

func isIntegerKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

// Typed binds a checker to the Go type its accepted values narrow to.
type Typed[T any] struct {
	Checker
}

// Shape binds c to T.
func Shape[T any](c Checker) Typed[T] {
	return Typed[T]{Checker: c}
}

// Narrow checks v and converts it to T.
func (t Typed[T]) Narrow(v any) (T, error) {
	return Narrow[T](t.Checker, v)
}

// MustNarrow is like Narrow but panics on failure. It is meant for fixtures
// and values already known to be valid.
func (t Typed[T]) MustNarrow(v any) T {
	out, err := t.Narrow(v)
	if err != nil {
		panic(err)
	}
	return out
}

func (t Typed[T]) unwrap() Checker { return t.Checker }
