package conftree

// Root is a virtual key that addresses the entire configuration document.
// Using it as the key when calling Config.Get or Store.Get returns the whole
// tree; using it on a write is an InvalidPath error.
const Root = ""

// Provider is an abstraction over one configuration store, such as a JSON
// document on disk or a remote key-value service. A provider is bound to the
// settings it was constructed with for its whole lifetime, and holds no tree
// state of its own beyond what it just loaded or is about to persist.
type Provider interface {
	Name() string // provider kind, e.g. "File"

	// Load reads the full configuration document from the store.
	Load() (Tree, error)

	// SaveAll writes an entire document to the store, unconditionally
	// replacing whatever the store held before.
	SaveAll(tree Tree) error

	// SaveValue persists a single dot-path value to the store.
	SaveValue(key string, value any) error
}
