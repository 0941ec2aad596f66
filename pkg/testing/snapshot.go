package testing

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"gopkg.in/yaml.v3"

	"github.com/campusui/campus/pkg/dom"
)

// UpdateEnv names the variable that rewrites golden files instead of
// comparing against them.
const UpdateEnv = "CAMPUS_UPDATE_SNAPSHOTS"

// TestingT is the part of *testing.T that MatchesFile reports through.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot is a YAML-serializable copy of the document and its focus.
type Snapshot struct {
	Tree    *SnapshotNode `yaml:"tree"`
	Focused string        `yaml:"focused,omitempty"`
}

// SnapshotNode is either an element (Tag set) or a text node.
type SnapshotNode struct {
	Tag      string            `yaml:"tag,omitempty"`
	Text     string            `yaml:"text,omitempty"`
	Attrs    map[string]string `yaml:"attrs,omitempty"`
	Children []*SnapshotNode   `yaml:"children,omitempty"`
}

// CaptureSnapshot copies the document body. Focused describes the active
// node by tag, test id, role, slot and text.
func (t *WidgetTester) CaptureSnapshot() *Snapshot {
	snap := &Snapshot{Tree: snapshotOf(t.Document().Body())}
	if n := t.ActiveNode(); n != nil {
		snap.Focused = label(n)
	}
	return snap
}

func snapshotOf(n *dom.Node) *SnapshotNode {
	if n.IsText() {
		return &SnapshotNode{Text: n.Text}
	}
	out := &SnapshotNode{Tag: n.Tag}
	for _, name := range n.AttrNames() {
		if out.Attrs == nil {
			out.Attrs = map[string]string{}
		}
		out.Attrs[name] = n.GetAttr(name)
	}
	for _, c := range n.Children() {
		out.Children = append(out.Children, snapshotOf(c))
	}
	return out
}

func label(n *dom.Node) string {
	parts := []string{n.Tag}
	for _, attr := range []string{"data-testid", "role", "data-slot"} {
		if v, ok := n.Attr(attr); ok {
			parts[0] += "[" + attr + "=" + v + "]"
		}
	}
	if text := strings.TrimSpace(n.TextContent()); text != "" {
		parts = append(parts, fmt.Sprintf("%q", text))
	}
	return strings.Join(parts, " ")
}

// MatchesFile compares s with the golden file at path and reports a
// unified diff on mismatch. With CAMPUS_UPDATE_SNAPSHOTS=1 it rewrites the
// file instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()
	hint := fmt.Sprintf("%s=1 go test -run %s", UpdateEnv, t.Name())

	if os.Getenv(UpdateEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("updating snapshot %s: %v", path, err)
		}
		return
	}
	golden, err := ReadSnapshot(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		t.Fatalf("snapshot %s does not exist; create it with %s", path, hint)
		return
	case err != nil:
		t.Fatalf("reading snapshot: %v", err)
		return
	}
	if diff := golden.Diff(s); diff != "" {
		t.Errorf("snapshot %s differs:\n%s\nupdate with %s", path, diff, hint)
	}
}

// UpdateFile writes s to path, creating parent directories.
func (s *Snapshot) UpdateFile(path string) error {
	data, err := s.encode()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a unified diff from s to other, or "" when they encode
// identically.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := s.encode()
	b, _ := other.encode()
	if bytes.Equal(a, b) {
		return ""
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(a)),
		B:        difflib.SplitLines(string(b)),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}
	return diff
}

// ReadSnapshot decodes a golden file written by UpdateFile.
func ReadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot YAML in %s: %w", path, err)
	}
	return &snap, nil
}

func (s *Snapshot) encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
