// Package interactive provides a full-screen terminal user interface (TUI)
// for the triangle calculator.
//
// It drives the same session.Machine as the line based loop: sides are typed
// one at a time, any text that is not a number abandons the triangle, and
// after the result Enter starts the next one.
//
// Launch with: heron tui
package interactive
