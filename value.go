package conftree

// Value is the result of a lookup: either the value present at a key, or an
// explicit miss. A miss is a normal result rather than an error, and it is
// distinct from a key that is present holding nil.
type Value struct {
	raw   any
	found bool
}

// NotFound is the lookup miss marker.
var NotFound = Value{}

func found(v any) Value { return Value{raw: v, found: true} }

// HasValue reports whether the key was present.
func (v Value) HasValue() bool { return v.found }

// Raw returns the untyped value at the key, or nil on a miss.
func (v Value) Raw() any {
	if !v.found {
		return nil
	}
	return v.raw
}

// Get resolves a further dot-path relative to this value. It misses unless
// the value is itself a mapping that satisfies the whole path.
func (v Value) Get(key string) Value {
	if !v.found {
		return NotFound
	}
	if key == Root {
		return v
	}
	t, ok := asTree(v.raw)
	if !ok {
		return NotFound
	}
	return t.lookup(splitKey(key))
}
