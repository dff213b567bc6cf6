// Package parse builds parse trees from iox tokens.
//
// # Usage
//
//	doc, err := parse.Parse("name: string, age?: number\n---\nAlice, 30")
//	if err != nil {
//	    return err
//	}
//	doc.Header // definitions before the --- separator, nil if none
//	doc.Body   // the data, as the root object node
//
// A [Node] is an ordered sequence of elements. Each element is a scalar
// *token.Token, a nested *Node, a *KeyVal pair, or nil for a position left
// empty (as in "a,,c"). Trees carry no schema knowledge; the types package
// gives them meaning.
//
// # Related Packages
//
//   - github.com/iox-format/go-iox/token - tokenization
//   - github.com/iox-format/go-iox/types - schema driven decoding of trees
package parse
