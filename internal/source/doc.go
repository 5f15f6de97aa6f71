// Package source loads the input text file into memory.
//
// The whole file is read at once. Missing inputs and content that is not
// valid UTF-8 are reported through the ErrNotFound and ErrDecode sentinel
// errors so that the command layer can turn them into user-facing messages.
package source
