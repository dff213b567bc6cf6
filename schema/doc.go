// Package schema describes the expected shape of iox documents.
//
// A [Schema] is an ordered list of member names with a [MemberDef] for
// each. Schemas are usually compiled from definition text:
//
//	name: string, age?: number, email*: string,
//	address: {street: string, city},
//	tags?: [string],
//	score: {number, default: 0, check: "value >= 0 && value <= 100"}
//
// A bare name has type any. A trailing ? marks a member optional, a
// trailing * marks it nullable. Braces holding member definitions declare a
// nested object; braces whose first value is a type name declare options
// for that type. Brackets declare an array of the enclosed definition.
//
// Schemas may also be loaded from YAML with [LoadYAML].
//
// Every type name must be known to the [TypeSet] a schema is compiled or
// validated against; an unknown type is reported when the schema is built,
// never while decoding.
package schema
