package conftree

import "strings"

// Tree is a recursively nested mapping from string keys to either a scalar
// value or another mapping. It is the in-memory form of one whole
// configuration document; if non-empty it is always a mapping at the root,
// scalars appear only at leaves.
//
// Keys address into the tree with dot syntax: "a.b.c" names t["a"]["b"]["c"].
// There is no escape for a literal dot inside a key segment, so a key
// containing a dot cannot be addressed on its own. Known limitation.
type Tree map[string]any

func splitKey(key string) []string {
	return strings.Split(key, ".")
}

// asTree normalizes the two mapping shapes that occur after decoding.
func asTree(v any) (Tree, bool) {
	switch t := v.(type) {
	case Tree:
		return t, true
	case map[string]any:
		return t, true
	}
	return nil, false
}

// lookup walks the tree one path segment at a time. Any unsatisfiable
// segment, whether absent or a scalar with segments still remaining, is a
// miss, never an error.
func (t Tree) lookup(path []string) Value {
	var cur any = t
	for _, seg := range path {
		m, ok := asTree(cur)
		if !ok {
			return NotFound
		}
		if cur, ok = m[seg]; !ok {
			return NotFound
		}
	}
	return found(cur)
}

// put sets value at path, creating an empty mapping at every missing
// intermediate segment. An intermediate holding anything other than a
// mapping is replaced with a fresh mapping and its old value discarded.
// The final segment is set to value, replacing any prior value or subtree.
func (t Tree) put(path []string, value any) {
	inner, last := path[:len(path)-1], path[len(path)-1]
	cur := t
	for _, seg := range inner {
		next, ok := asTree(cur[seg])
		if !ok {
			next = Tree{}
			cur[seg] = next
		}
		cur = next
	}
	cur[last] = value
}

// Copy returns a deep copy of the tree: mappings are duplicated all the way
// down, leaf values are shared.
func (t Tree) Copy() Tree {
	if t == nil {
		return nil
	}
	out := make(Tree, len(t))
	for k, v := range t {
		if m, ok := asTree(v); ok {
			out[k] = m.Copy()
			continue
		}
		out[k] = v
	}
	return out
}
