package conftree

import "github.com/samber/oops"

// Store owns one in-memory configuration tree and mediates all
// path-addressed access through its currently bound provider. A store never
// holds more than one live provider at a time.
type Store struct {
	provider Provider
	tree     Tree
}

// newStore builds the descriptor's provider and adopts its loaded document
// as the in-memory tree.
func newStore(desc Descriptor) (*Store, error) {
	provider, tree, err := openProvider(desc)
	if err != nil {
		return nil, err
	}
	return &Store{provider: provider, tree: tree}, nil
}

// openProvider builds and loads in one step, so a failure can never leave a
// half-initialized store behind.
func openProvider(desc Descriptor) (Provider, Tree, error) {
	provider, err := desc.build()
	if err != nil {
		return nil, nil, err
	}
	tree, err := provider.Load()
	if err != nil {
		return nil, nil, err
	}
	return provider, tree, nil
}

// Get resolves a dot-path against the in-memory tree only; there is no
// provider round-trip. The Root key yields the whole tree. A miss is a
// normal result, reported through the returned Value.
func (s *Store) Get(key string) Value {
	if key == Root {
		return found(s.tree)
	}
	return s.tree.lookup(splitKey(key))
}

// Set writes value at key in memory, then persists that one value through
// the provider, keeping memory and store in lockstep at that path. On a
// persistence failure the in-memory mutation is kept: subsequent reads see
// the new value, and the returned error tells the caller that memory and
// store now disagree until a retry or reload. On success Set returns the
// post-mutation value read back at key.
func (s *Store) Set(key string, value any) (any, error) {
	if key == Root {
		return nil, oops.Wrapf(ErrInvalidPath, "set needs a non-empty key")
	}
	s.tree.put(splitKey(key), value)
	if err := s.provider.SaveValue(key, value); err != nil {
		return nil, err
	}
	return s.Get(key).Raw(), nil
}

// Switch binds a new provider built from desc. With overwrite true the new
// backend's freshly loaded document becomes the active tree; with overwrite
// false the current in-memory tree is carried over unchanged and the new
// backend is adopted purely as a write target, nothing being persisted
// until the next save. A failure while building or loading aborts the
// switch with the old provider and tree untouched; the swap itself happens
// last, so no interleaved operation observes a mixed state.
func (s *Store) Switch(desc Descriptor, overwrite bool) error {
	provider, tree, err := openProvider(desc)
	if err != nil {
		return err
	}
	if !overwrite {
		tree = s.tree
	}
	s.provider, s.tree = provider, tree
	log.WithField("provider", provider.Name()).
		WithField("overwrite", overwrite).Debug("switched provider")
	return nil
}

// SaveAll persists the entire in-memory tree through the provider.
func (s *Store) SaveAll() error {
	return s.provider.SaveAll(s.tree)
}

// Reload discards the in-memory tree and adopts whatever document the
// provider's store currently holds.
func (s *Store) Reload() error {
	tree, err := s.provider.Load()
	if err != nil {
		return err
	}
	s.tree = tree
	return nil
}
