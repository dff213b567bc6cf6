// Package iox reads and writes iox documents.
//
// An iox document is a comma separated list of members. Members are matched
// to a schema by position until the first keyed member:
//
//	Alice, 30, address: {Main St, Springfield}
//
// A document may carry its own definition in a header, separated from the
// body by a line holding only ---. Header members whose names start with $
// are variables the body can refer to:
//
//	$adult: 18
//	name: string, age?: {number, check: "value >= 0"}
//	---
//	Alice, $adult
//
// [Decode] and [Encode] work with a schema the caller already has;
// [DecodeDocument] and [EncodeDocument] read and write the header too. The
// packages under this module hold the pieces: token, parse, schema, types
// and encode.
package iox
