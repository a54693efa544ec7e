// Package conftree is a hierarchical key-value configuration store with a
// pluggable persistence backend.
//
// Values are addressed with dot-separated keys ("employee.001.name")
// against an in-memory tree; every write is persisted through the provider
// the store is currently bound to, and the provider can be swapped at
// runtime with control over whether the in-memory state is kept or
// discarded. Config is the entry point: it picks the provider
// implementation from a Descriptor and delegates everything else.
package conftree

import "github.com/sirupsen/logrus"

var log = logrus.WithField("module", "conftree")

// Config is the single entry point client code uses. It validates provider
// descriptors, owns the store behind it, and otherwise delegates.
type Config struct {
	source Descriptor
	store  *Store
}

// New builds a Config whose initial document is loaded from the
// descriptor's provider. An invalid descriptor or a failed initial load
// aborts construction; a Config is never half-initialized.
func New(source Descriptor) (*Config, error) {
	store, err := newStore(source)
	if err != nil {
		return nil, err
	}
	log.WithField("provider", source.Type).Debug("configuration ready")
	return &Config{source: source, store: store}, nil
}

// Source returns the descriptor of the currently bound provider.
func (c *Config) Source() Descriptor { return c.source }

// Get returns the value at the dot-separated key, reading the in-memory
// tree only. The Root key returns the whole tree.
func (c *Config) Get(key string) Value {
	return c.store.Get(key)
}

// Set writes value at the dot-separated key and persists it, returning the
// post-mutation value at key. See Store.Set for the failure semantics.
func (c *Config) Set(key string, value any) (any, error) {
	return c.store.Set(key, value)
}

// Save persists the entire in-memory tree through the current provider.
func (c *Config) Save() error {
	return c.store.SaveAll()
}

// Reload re-imports the document from the current provider, replacing the
// in-memory tree and discarding any unpersisted divergence.
func (c *Config) Reload() error {
	return c.store.Reload()
}

// SwitchProvider rebinds the store to the provider described by source. See
// Store.Switch for the overwrite semantics.
func (c *Config) SwitchProvider(source Descriptor, overwrite bool) error {
	if err := c.store.Switch(source, overwrite); err != nil {
		return err
	}
	c.source = source
	return nil
}
