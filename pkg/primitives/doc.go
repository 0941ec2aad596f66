// Package primitives provides the host widgets every other widget composes.
//
// Each primitive owns exactly one document node. Attributes carry semantics
// only (roles, aria state, data attributes); visual styling is left to the
// host that renders the document.
//
//	primitives.ColumnOf(
//	    primitives.Text{Content: "Courses"},
//	    primitives.ButtonOf("Add course", addCourse),
//	)
package primitives
