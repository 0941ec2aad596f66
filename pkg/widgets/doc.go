// Package widgets provides the admin screen's composite menus built on the
// disclosure engine: a generic [Dropdown], the account [ProfileMenu], the
// course [SearchBox] with fuzzy suggestions, and the video player's
// [SpeedMenu].
//
// Each widget is an ordinary composition of disclosure primitives, so the
// keyboard, dismissal and exit behavior is identical across them.
package widgets
