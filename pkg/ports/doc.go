/*
Package ports defines the driven ports (interfaces) for the typecheck service.

These interfaces decouple the validation service from external
implementations, allowing verdicts to be cached in process or in Redis.

# Key Interfaces

  - VerdictCache: remembers whether a payload conformed to a shape.
*/
package ports
