// Package check provides composable runtime checkers for untyped values.
//
// A Checker decides whether a value decoded from JSON, YAML or any other
// untrusted source conforms to a shape. Checkers are built once from a small
// set of primitives and combinators and then applied any number of times:
//
//	profile := check.Dict(check.Fields{
//	    "version": check.L(1),
//	    "name":    check.String,
//	    "age":     check.Number,
//	    "nick":    check.Optional(check.String),
//	    "tags":    check.Array(check.String),
//	})
//
//	var data any
//	_ = json.Unmarshal(payload, &data)
//	if profile.Check(data) {
//	    // data has the declared shape
//	}
//
// Combinators take Operands. An Operand is either a Checker or a bare literal
// built with L, so unions of exact values read naturally:
//
//	status := check.Union(check.L("active"), check.L("disabled"), check.L(0))
//
// Go has no way to derive the narrowed static type from a composite, so a
// successful check is paired with an explicit conversion step:
//
//	type Profile struct {
//	    Name string `json:"name"`
//	    Age  int    `json:"age"`
//	}
//
//	p, err := check.Narrow[Profile](profile, data)
//
// # Value model
//
// Candidates follow the shapes produced by encoding/json and yaml.v3:
// numbers are any Go integer, unsigned or float kind (and json.Number),
// arrays are slices or arrays, objects are maps keyed by a string kind.
// A nil interface or nil pointer is null. A key missing from a map reads as
// Undefined. Optional accepts both.
//
// Checkers hold no mutable state and are safe for concurrent use. They never
// panic, whatever the candidate.
package check
