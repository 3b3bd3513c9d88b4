package registry

import "github.com/aretw0/typecheck/pkg/check"

var choices = []check.Operand{check.L("literal1"), check.L(17), check.L(true)}

// Address is a postal address with optional second line and state.
var Address = check.Dict(check.Fields{
	"line1":   check.String,
	"line2":   check.Optional(check.String),
	"city":    check.String,
	"state":   check.Optional(check.String),
	"country": check.String,
})

// Profile is a versioned person record with a list of addresses.
var Profile = check.Dict(check.Fields{
	"version":    check.L(1),
	"test_value": check.Intersection(check.Union(choices...), check.Number),
	"name":       check.String,
	"surname":    check.String,
	"age":        check.Number,
	"addresses":  check.Array(Address),
})

// Builtin returns a registry seeded with the bundled shapes.
func Builtin() *Registry {
	r := NewRegistry()
	r.Register("address", "Postal address; line2 and state may be omitted", Address)
	r.Register("profile", "Versioned person record (version 1) with addresses", Profile)
	r.Register("choices", `Array whose elements are "literal1", 17 or true`, check.Array(check.Union(choices...)))
	r.Register("numeric-choices", "Array whose elements are the number 17", check.Array(check.Intersection(check.Union(choices...), check.Number)))
	r.Register("labels", "Map from label name to string value", check.StrDict(check.String))
	return r
}
