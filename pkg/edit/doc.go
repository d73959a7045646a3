// Package edit applies character-level edits to a phone number field.
//
// Every keystroke is turned into an Operation and run through a Pipeline:
// the edit is validated, the buffer is reduced to its raw stream, a Formatter
// produces canonical text and the caret is carried across with a caret.Anchor.
// The pipeline never mutates anything; the caller adopts the Result.
package edit
