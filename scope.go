package conftree

import "fmt"

// Scope is a view of a Config rooted at a key prefix: every Get and Set has
// the prefix prepended before delegation. It shares the underlying store.
type Scope struct {
	config *Config
	prefix string
}

// Scope returns a view of the configuration rooted at prefix.
func (c *Config) Scope(prefix string) *Scope {
	return &Scope{config: c, prefix: prefix}
}

func (s *Scope) key(key string) string {
	if s.prefix == "" {
		return key
	}
	if key == Root {
		return s.prefix
	}
	return fmt.Sprintf("%s.%s", s.prefix, key)
}

// Get retrieves a value relative to the scope's prefix; the Root key yields
// the scope's whole subtree.
func (s *Scope) Get(key string) Value {
	return s.config.Get(s.key(key))
}

// Set writes a value relative to the scope's prefix.
func (s *Scope) Set(key string, value any) (any, error) {
	return s.config.Set(s.key(key), value)
}
