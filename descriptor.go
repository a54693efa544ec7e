package conftree

import (
	"sort"
	"sync"

	"github.com/samber/oops"
	"go.uber.org/multierr"
)

// Descriptor identifies a provider kind plus the settings that kind needs to
// reach its store:
//
//	Descriptor{
//		Type: "File",
//		Settings: map[string]any{"source": "my_config_file.json"},
//	}
//
// A descriptor is treated as an immutable value: providers snapshot the
// settings at construction, and switching backends requires a new descriptor.
type Descriptor struct {
	Type     string         `json:"type" yaml:"type" mapstructure:"type"`
	Settings map[string]any `json:"settings" yaml:"settings" mapstructure:"settings"`
}

// Factory builds a provider bound to one descriptor's settings. Construction
// validates reachability immediately: the factory performs the initial load
// and fails fast instead of deferring the error to first use.
type Factory func(settings map[string]any) (Provider, error)

var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{}
)

// Register makes a provider kind available to descriptors under the given
// discriminator string. Later registrations replace earlier ones.
func Register(kind string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[kind] = factory
}

func lookupFactory(kind string) (Factory, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	f, ok := registry[kind]
	return f, ok
}

// Kinds lists the registered provider kinds, sorted.
func Kinds() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Validate checks the descriptor before any provider is constructed,
// reporting every problem at once.
func (d Descriptor) Validate() error {
	var err error
	if d.Type == "" {
		err = multierr.Append(err, oops.Errorf("descriptor has no type"))
	} else if _, ok := lookupFactory(d.Type); !ok {
		err = multierr.Append(err, oops.With("known", Kinds()).Errorf("unknown provider type %q", d.Type))
	}
	if len(d.Settings) == 0 {
		err = multierr.Append(err, oops.Errorf("descriptor has no settings"))
	}
	if err != nil {
		return oops.With("descriptor_type", d.Type).Wrapf(ErrInvalidDescriptor, "%v", err)
	}
	return nil
}

// build validates the descriptor and constructs its provider. Selecting the
// implementation from the discriminator string is the one piece of dynamic
// dispatch in the package.
func (d Descriptor) build() (Provider, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	factory, _ := lookupFactory(d.Type)
	return factory(d.Settings)
}
