package check

import (
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// Array accepts slices and arrays whose every element satisfies op.
// An empty array passes. Maps never pass, even ones that mimic an array
// with numeric keys and a length.
func Array(op Operand) Checker {
	elem := predicate(op)
	return Checker{
		desc: group(elem) + "[]",
		fn: func(v any) bool {
			val := inspect(v)
			if val.kind != kindArray {
				return false
			}
			return val.each(elem.Check)
		},
	}
}

// Fields maps field names to the operand each field must satisfy.
type Fields map[string]Operand

type field struct {
	name  string
	check Checker
}

// Dict accepts string-keyed maps in which every declared field satisfies its
// operand. A missing key reads as Undefined, so only fields wrapped in
// Optional may be left out. Keys not declared in fields are ignored.
// Non-map candidates are rejected.
func Dict(fields Fields) Checker {
	declared := make([]field, 0, len(fields))
	for name, op := range fields {
		declared = append(declared, field{name: name, check: predicate(op)})
	}
	sort.Slice(declared, func(i, j int) bool { return declared[i].name < declared[j].name })

	return Checker{
		desc: describeFields(declared),
		fn: func(v any) bool {
			val := inspect(v)
			if val.kind != kindObject {
				return false
			}
			for _, f := range declared {
				if !f.check.Check(val.field(f.name)) {
					return false
				}
			}
			return true
		},
	}
}

func describeFields(declared []field) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, f := range declared {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(fieldName(f.name))
		if f.check.optional {
			b.WriteString("?: ")
			b.WriteString(f.check.base)
		} else {
			b.WriteString(": ")
			b.WriteString(f.check.String())
		}
	}
	b.WriteByte('}')
	return b.String()
}

// fieldName quotes names that would not read as a bare identifier.
func fieldName(name string) string {
	if name == "" {
		return strconv.Quote(name)
	}
	for i, r := range name {
		if r == '_' || r == '$' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return strconv.Quote(name)
	}
	return name
}

// StrDict accepts string-keyed maps whose every value satisfies op.
// An empty map passes. Arrays are rejected even though their elements could
// be addressed by index strings.
func StrDict(op Operand) Checker {
	elem := predicate(op)
	return Checker{
		desc: "{[key: string]: " + elem.String() + "}",
		fn: func(v any) bool {
			val := inspect(v)
			if val.kind != kindObject {
				return false
			}
			return val.each(elem.Check)
		},
	}
}
