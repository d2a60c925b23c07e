// Package str implements a JavaScript-style string value over a Go string.
//
// Offsets and lengths are counted in code points (runes), never in bytes or
// UTF-16 units. Transforming methods mutate the receiver and return it so
// calls can be chained. Lookups that can miss return (T, false).
package str
