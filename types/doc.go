// Package types turns parse trees and native values into validated native
// values, and native values back into iox text, driven by a schema.
//
// Every value type is a [Handler] registered by name in a [Registry]. The
// object handler walks a schema and hands each member to the handler its
// [schema.MemberDef] names, so objects, arrays and scalars nest without
// knowing about each other. All handlers run the same common checks first
// (see [CheckElement] and [CheckNative]): missing members take their
// default or are dropped when optional, nulls need an optional or nullable
// member, and values of the wrong kind are rejected.
//
// Per-call state lives in an [Env]: the registry, variables, and the
// nesting depth guard. A Registry is immutable once built and may be shared
// by any number of goroutines; an Env may not.
//
// Native values are map[string]any for objects, []any for arrays, string,
// int64 or float64, bool, and nil for null. A member that is absent is
// absent from its map.
package types
