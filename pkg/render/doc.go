// Package render draws a document for hosts without a browser: a cell
// layout with menus placed against their triggers, a lipgloss-styled
// terminal screen with hit testing, and PNG placement diagrams.
package render
