// Package internal contains the SDL plumbing behind the landmarks screens:
// window and renderer setup, input mapping, fonts, text and image rendering,
// theming and logging. Types and functions in this package are not part of
// the public API.
package internal
