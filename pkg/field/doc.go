// Package field owns the state of one phone number input: text, caret,
// region and focus. It turns keystrokes into edit operations and adopts the
// region the pipeline recognises.
package field
