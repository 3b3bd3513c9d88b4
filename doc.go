/*
Package typecheck is a composable runtime value-validation engine.

Data crossing a trust boundary (decoded JSON, YAML, external input) is checked
against shapes built from a small algebra of checkers. The algebra lives in
package check; this module adds a registry of named shapes, a validation
service with verdict caching and metrics, and three surfaces over it: a CLI,
an HTTP API and an MCP server.

# Checkers

	import "github.com/aretw0/typecheck/pkg/check"

	profile := check.Dict(check.Fields{
		"version": check.L(1),
		"name":    check.String,
		"age":     check.Number,
		"tags":    check.Optional(check.Array(check.String)),
	})

	profile.Check(value) // true or false, never panics

# Command line

	typecheck check --shape profile person.json
	typecheck shapes
	typecheck serve --port 8080 --redis localhost:6379
	typecheck mcp
*/
package typecheck
