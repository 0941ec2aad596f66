package testing

import (
	"fmt"
	"strings"

	"github.com/campusui/campus/pkg/dom"
)

// Finder locates nodes in the document.
type Finder interface {
	// Evaluate returns all matching nodes under root in document order.
	Evaluate(root *dom.Node) []*dom.Node
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	nodes  []*dom.Node
	finder Finder
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() *dom.Node {
	if len(r.nodes) == 0 {
		panic(fmt.Sprintf("Finder found no nodes: %s", describe(r.finder)))
	}
	return r.nodes[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() *dom.Node {
	if len(r.nodes) == 0 {
		return nil
	}
	return r.nodes[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) *dom.Node {
	if index < 0 || index >= len(r.nodes) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.nodes), describe(r.finder)))
	}
	return r.nodes[index]
}

// All returns all matches in document order.
func (r FinderResult) All() []*dom.Node {
	return r.nodes
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.nodes)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.nodes) > 0
}

// Attr returns an attribute of the first match. Panics if no matches.
func (r FinderResult) Attr(name string) string {
	return r.First().GetAttr(name)
}

func describe(f Finder) string {
	if f == nil {
		return "unknown"
	}
	return f.Description()
}

// predicateFinder matches nodes satisfying a predicate.
type predicateFinder struct {
	fn   func(*dom.Node) bool
	desc string
}

func (f *predicateFinder) Evaluate(root *dom.Node) []*dom.Node {
	return dom.QueryAll(root, f.fn)
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByPredicate returns a finder that matches nodes satisfying fn.
func ByPredicate(fn func(*dom.Node) bool) Finder {
	return &predicateFinder{fn: fn, desc: "ByPredicate(...)"}
}

// ByRole matches elements whose role attribute equals role.
func ByRole(role string) Finder {
	return &predicateFinder{fn: dom.HasAttrValue("role", role), desc: fmt.Sprintf("ByRole(%q)", role)}
}

// ByAttr matches elements whose attribute equals value.
func ByAttr(name, value string) Finder {
	return &predicateFinder{fn: dom.HasAttrValue(name, value), desc: fmt.Sprintf("ByAttr(%s=%q)", name, value)}
}

// ByTestID matches elements by data-testid.
func ByTestID(id string) Finder {
	return &predicateFinder{fn: dom.HasAttrValue("data-testid", id), desc: fmt.Sprintf("ByTestID(%q)", id)}
}

// ByTag matches elements by tag.
func ByTag(tag string) Finder {
	return &predicateFinder{fn: func(n *dom.Node) bool { return n.Tag == tag }, desc: fmt.Sprintf("ByTag(%q)", tag)}
}

// textFinder matches the innermost elements whose trimmed text content
// satisfies match.
type textFinder struct {
	match func(string) bool
	desc  string
}

func (f *textFinder) Evaluate(root *dom.Node) []*dom.Node {
	return dom.QueryAll(root, func(n *dom.Node) bool {
		if n.IsText() || !f.match(strings.TrimSpace(n.TextContent())) {
			return false
		}
		for _, child := range n.Children() {
			if !child.IsText() && f.match(strings.TrimSpace(child.TextContent())) {
				return false
			}
		}
		return true
	})
}

func (f *textFinder) Description() string {
	return f.desc
}

// ByText returns a finder that matches the innermost elements whose text
// content equals text, ignoring surrounding whitespace.
func ByText(text string) Finder {
	return &textFinder{
		match: func(s string) bool { return s == text },
		desc:  fmt.Sprintf("ByText(%q)", text),
	}
}

// ByTextContaining returns a finder that matches the innermost elements
// whose text content contains substring.
func ByTextContaining(substring string) Finder {
	return &textFinder{
		match: func(s string) bool { return strings.Contains(s, substring) },
		desc:  fmt.Sprintf("ByTextContaining(%q)", substring),
	}
}

// descendantFinder finds nodes matching 'matching' that are descendants
// of nodes matching 'of'.
type descendantFinder struct {
	of       Finder
	matching Finder
}

func (f *descendantFinder) Evaluate(root *dom.Node) []*dom.Node {
	var results []*dom.Node
	seen := make(map[*dom.Node]bool)
	for _, ancestor := range f.of.Evaluate(root) {
		for _, child := range ancestor.Children() {
			for _, match := range f.matching.Evaluate(child) {
				if !seen[match] {
					seen[match] = true
					results = append(results, match)
				}
			}
		}
	}
	return results
}

func (f *descendantFinder) Description() string {
	return fmt.Sprintf("Descendant(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Descendant returns a finder that matches nodes satisfying 'matching'
// that are descendants of nodes matching 'of'.
func Descendant(of, matching Finder) Finder {
	return &descendantFinder{of: of, matching: matching}
}
