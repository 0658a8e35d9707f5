// Package group contains the selection-state controller for choice groups.
//
// Allowed here:
// - the selection value model (radio/checkbox semantics)
// - controlled/uncontrolled value authority and mutation handlers
// - aggregate (select all/some/none) derivation and the item kind table
//
// Not allowed here:
// - rendering, styling, or key handling (see package widgets)
// - any I/O
package group
