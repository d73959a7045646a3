// Package caret keeps a caret stable while a phone number is reformatted.
//
// Offsets are rune indices into the text, never byte offsets. A caret offset
// always means "before the rune at this index".
package caret
