// Package token provides tokenization of iox text.
//
// # Usage
//
//	toks, err := token.Tokenize(`name: "Alice", age: 30`)
//	if err != nil {
//	    return err
//	}
//
//	// or, keeping the tokenizer around
//	tz := token.New(src)
//	if err := tz.ReadAll(); err != nil {
//	    return err
//	}
//	first := tz.Get(0)
//
// # Strings
//
// Three string forms are recognized. Open strings are unquoted runs ended
// by a structural delimiter; surrounding whitespace is trimmed and nothing is
// escaped. Quoted strings ("...") process backslash escapes. Raw strings
// ('...') process nothing except a doubled quote, which yields one quote.
// In every form \r\n and \r in the source are read as \n.
//
// # Related Packages
//
//   - github.com/iox-format/go-iox/parse - build parse trees from tokens
//   - github.com/iox-format/go-iox/ioerr - errors and positions
package token
