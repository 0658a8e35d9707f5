// Package widgets renders choice groups for the terminal.
//
// Allowed here:
// - the group widget (cursor, focus, filter query) and its key bindings
// - drawing of the four item kinds, the aggregate control, and box chrome
//
// Not allowed here:
// - selection-state decisions; every toggle is forwarded to package group
package widgets
