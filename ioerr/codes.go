package ioerr

// Code identifies an entry of the error catalog.
type Code string

const (
	// syntax
	StringNotClosed        Code = "string-not-closed"
	PositionalAfterKeyword Code = "positional-member-after-keyword-member"
	UnexpectedToken        Code = "unexpected-token"
	UnclosedBracket        Code = "unclosed-bracket"
	KeyedMemberInArray     Code = "keyed-member-in-array"
	InvalidKey             Code = "invalid-key"

	// validation
	ValueRequired    Code = "value-required"
	NullNotAllowed   Code = "null-not-allowed"
	InvalidType      Code = "invalid-type"
	InvalidObject    Code = "invalid-object"
	InvalidArray     Code = "invalid-array"
	AdditionalValues Code = "additional-values"
	CheckFailed      Code = "check-failed"
	InvalidValue     Code = "invalid-value"

	// schema construction
	InvalidSchema Code = "invalid-schema"
	UnknownType   Code = "unknown-type"
	DuplicateKey  Code = "duplicate-key"

	// resources
	DepthExceeded Code = "depth-exceeded"
)

// Kind is the taxonomy a code belongs to.
type Kind int

const (
	SyntaxKind Kind = iota
	ValidationKind
	SchemaKind
	ResourceKind
)

func (k Kind) String() string {
	switch k {
	case SyntaxKind:
		return "syntax error"
	case ValidationKind:
		return "validation error"
	case SchemaKind:
		return "schema error"
	case ResourceKind:
		return "resource error"
	default:
		return "error"
	}
}

type entry struct {
	kind Kind
	msg  string
}

var catalog = map[Code]entry{
	StringNotClosed:        {SyntaxKind, "string not closed"},
	PositionalAfterKeyword: {SyntaxKind, "positional member after keyword member"},
	UnexpectedToken:        {SyntaxKind, "unexpected token"},
	UnclosedBracket:        {SyntaxKind, "bracket not closed"},
	KeyedMemberInArray:     {SyntaxKind, "keyed member inside an array"},
	InvalidKey:             {SyntaxKind, "member key must be a scalar"},

	ValueRequired:    {ValidationKind, "value required"},
	NullNotAllowed:   {ValidationKind, "null not allowed"},
	InvalidType:      {ValidationKind, "value does not match the declared type"},
	InvalidObject:    {ValidationKind, "invalid object"},
	InvalidArray:     {ValidationKind, "invalid array"},
	AdditionalValues: {ValidationKind, "more values than the schema declares"},
	CheckFailed:      {ValidationKind, "value failed its check"},
	InvalidValue:     {ValidationKind, "invalid value"},

	InvalidSchema: {SchemaKind, "invalid schema"},
	UnknownType:   {SchemaKind, "unknown type"},
	DuplicateKey:  {SchemaKind, "duplicate member"},

	DepthExceeded: {ResourceKind, "maximum nesting depth exceeded"},
}

// Error makes a Code usable as an errors.Is target.
func (c Code) Error() string { return string(c) }

// Kind returns the taxonomy of c. Unknown codes are validation errors.
func (c Code) Kind() Kind {
	e, ok := catalog[c]
	if !ok {
		return ValidationKind
	}
	return e.kind
}

// Message returns the default message for c.
func (c Code) Message() string {
	e, ok := catalog[c]
	if !ok {
		return string(c)
	}
	return e.msg
}

// Codes lists the catalog.
func Codes() []Code {
	res := make([]Code, 0, len(catalog))
	for c := range catalog {
		res = append(res, c)
	}
	return res
}
