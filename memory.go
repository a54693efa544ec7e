package conftree

import "github.com/samber/oops"

func init() {
	Register("Memory", NewMemoryProvider)
}

// MemorySettings seeds the Memory provider.
type MemorySettings struct {
	// Seed is the document the provider starts with; nil means empty.
	Seed map[string]any `mapstructure:"seed"`
}

// memoryProvider keeps its document in process memory. Useful in tests and
// wherever provider switching needs a second store without touching disk.
type memoryProvider struct {
	doc Tree
}

// NewMemoryProvider builds a Memory provider from its seed document.
func NewMemoryProvider(settings map[string]any) (Provider, error) {
	var ms MemorySettings
	if err := decodeSettings(settings, &ms); err != nil {
		return nil, oops.In("Memory").Wrapf(ErrInvalidDescriptor, "decode settings: %v", err)
	}
	doc := Tree(ms.Seed).Copy()
	if doc == nil {
		doc = Tree{}
	}
	return &memoryProvider{doc: doc}, nil
}

// Name implements Provider.
func (p *memoryProvider) Name() string { return "Memory" }

// Load hands out a deep copy so store-side mutation never aliases the
// provider's own document.
func (p *memoryProvider) Load() (Tree, error) {
	return p.doc.Copy(), nil
}

func (p *memoryProvider) SaveAll(tree Tree) error {
	p.doc = tree.Copy()
	return nil
}

func (p *memoryProvider) SaveValue(key string, value any) error {
	p.doc.put(splitKey(key), value)
	return nil
}
