// Package encode writes iox parse trees back out as text, optionally
// indented and colored, and colors token streams in place.
package encode
