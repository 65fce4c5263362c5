package gridapi

import (
	"fmt"
	"sort"
	"strings"
)

// MaskNode maps a field name to a child node. An empty (or nil) node is a
// leaf; a node with entries selects a strict subtree. Keys must not
// contain the '.' path separator.
type MaskNode map[string]MaskNode

// ObjectMask is a mutable field-selection tree. Mutations are addressed
// by dot-delimited paths resolved against the existing tree, and every
// mutation either applies fully or leaves the tree untouched.
//
// The zero value is an empty mask ready for use. A mask belongs to one
// request builder at a time; sharing one tree between builders shares
// its mutations.
type ObjectMask struct {
	root MaskNode
}

// NewObjectMask creates an empty mask.
func NewObjectMask() *ObjectMask {
	return &ObjectMask{root: MaskNode{}}
}

// Set validates value and assigns it as the subtree at path. An empty
// path replaces the entire tree. Otherwise every intermediate path
// segment must already exist; the final segment is overwritten whether
// or not it does.
func (m *ObjectMask) Set(value MaskNode, path string) error {
	m.init()

	err := checkKeys(value)
	if err != nil {
		return err
	}

	if value == nil {
		value = MaskNode{}
	}

	if path == "" {
		m.root = value

		return nil
	}

	segments := strings.Split(path, ".")

	parent, err := m.resolve(segments[:len(segments)-1], path)
	if err != nil {
		return err
	}

	parent[segments[len(segments)-1]] = value

	return nil
}

// Unset removes the subtree at path. An empty path clears the whole
// tree. Removing a key that is already absent is a no-op, but the
// intermediate segments leading to it must exist.
func (m *ObjectMask) Unset(path string) error {
	m.init()

	if path == "" {
		m.root = MaskNode{}

		return nil
	}

	segments := strings.Split(path, ".")

	parent, err := m.resolve(segments[:len(segments)-1], path)
	if err != nil {
		return err
	}

	delete(parent, segments[len(segments)-1])

	return nil
}

// Push assigns a subtree of leaf fields named by properties at path,
// replacing whatever the path's final key previously selected.
func (m *ObjectMask) Push(path string, properties ...string) error {
	if len(properties) == 0 {
		return &InvalidArgumentError{Reason: "push requires at least one property name"}
	}

	value := make(MaskNode, len(properties))

	for _, property := range properties {
		if property == "" {
			return &InvalidArgumentError{Reason: "property name must not be empty"}
		}

		value[property] = MaskNode{}
	}

	return m.Set(value, path)
}

// String serializes the tree to its wire form: every leaf contributes
// its dot-joined path from the root, and the paths are comma-joined
// inside "mask[...]". An empty tree serializes to "mask[]". Sibling
// keys are sorted so one tree always produces one canonical string.
func (m *ObjectMask) String() string {
	return "mask[" + strings.Join(m.leafPaths(), ",") + "]"
}

// Empty reports whether the mask selects no fields.
func (m *ObjectMask) Empty() bool {
	return len(m.root) == 0
}

// Len returns the number of selected leaf paths.
func (m *ObjectMask) Len() int {
	return len(m.leafPaths())
}

// ParseMask parses the wire form produced by String back into a mask.
// Paths sharing a prefix merge into one subtree.
func ParseMask(s string) (*ObjectMask, error) {
	body := strings.TrimSpace(s)
	if !strings.HasPrefix(body, "mask[") || !strings.HasSuffix(body, "]") {
		return nil, &InvalidArgumentError{Reason: fmt.Sprintf("%q is not a mask[...] string", s)}
	}

	body = body[len("mask[") : len(body)-1]

	mask := NewObjectMask()
	if body == "" {
		return mask, nil
	}

	for _, leaf := range strings.Split(body, ",") {
		leaf = strings.TrimSpace(leaf)
		if leaf == "" {
			return nil, &InvalidArgumentError{Reason: "empty path in mask string"}
		}

		node := mask.root

		for _, segment := range strings.Split(leaf, ".") {
			if segment == "" {
				return nil, &InvalidArgumentError{Reason: fmt.Sprintf("empty segment in path %q", leaf)}
			}

			child, ok := node[segment]
			if !ok || child == nil {
				child = MaskNode{}
				node[segment] = child
			}

			node = child
		}
	}

	return mask, nil
}

func (m *ObjectMask) init() {
	if m.root == nil {
		m.root = MaskNode{}
	}
}

// resolve walks the tree one segment at a time. A segment that is absent
// (or whose node is nil) fails with the segment, the full path, and the
// tree's current wire form for diagnostics.
func (m *ObjectMask) resolve(segments []string, fullPath string) (MaskNode, error) {
	node := m.root

	for _, segment := range segments {
		child, ok := node[segment]
		if !ok || child == nil {
			return nil, &MaskPathError{Segment: segment, Path: fullPath, Mask: m.String()}
		}

		node = child
	}

	return node, nil
}

// checkKeys validates every key of value, recursing through nested
// subtrees. Runs to completion before any mutation so an invalid
// assignment never partially mutates the tree.
func checkKeys(node MaskNode) error {
	for key, child := range node {
		if strings.Contains(key, ".") {
			return &MaskSyntaxError{Key: key}
		}

		if len(child) > 0 {
			err := checkKeys(child)
			if err != nil {
				return err
			}
		}
	}

	return nil
}

func (m *ObjectMask) leafPaths() []string {
	var leaves []string

	appendLeaves(&leaves, m.root, "")

	return leaves
}

func appendLeaves(out *[]string, node MaskNode, prefix string) {
	keys := make([]string, 0, len(node))
	for key := range node {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}

		child := node[key]
		if len(child) == 0 {
			*out = append(*out, path)
		} else {
			appendLeaves(out, child, path)
		}
	}
}
