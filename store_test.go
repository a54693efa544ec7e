package conftree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// brokenProvider loads fine but every persist fails, for exercising the
// no-rollback policy.
type brokenProvider struct{}

func (brokenProvider) Name() string                { return "Broken" }
func (brokenProvider) Load() (Tree, error)         { return Tree{}, nil }
func (brokenProvider) SaveAll(Tree) error          { return ErrPersistence }
func (brokenProvider) SaveValue(string, any) error { return ErrPersistence }

func init() {
	Register("Broken", func(map[string]any) (Provider, error) {
		return brokenProvider{}, nil
	})
}

func memoryDescriptor(seed map[string]any) Descriptor {
	if seed == nil {
		seed = map[string]any{}
	}
	return Descriptor{
		Type:     "Memory",
		Settings: map[string]any{"seed": seed},
	}
}

func TestStoreSetGetRoundTrip(t *testing.T) {
	s, err := newStore(memoryDescriptor(nil))
	require.NoError(t, err)

	back, err := s.Set("employee.001.name", "Bob")
	require.NoError(t, err)
	assert.Equal(t, "Bob", back, "set returns the post-mutation value")
	assert.Equal(t, "Bob", s.Get("employee.001.name").Raw())
}

func TestStoreGetRootIdentity(t *testing.T) {
	s, err := newStore(memoryDescriptor(map[string]any{"a": "1"}))
	require.NoError(t, err)

	v := s.Get(Root)
	require.True(t, v.HasValue())
	equal, err := sameTree(s.tree, v.Raw().(Tree))
	require.NoError(t, err)
	assert.True(t, equal)
}

func TestStoreGetMissIsNotAnError(t *testing.T) {
	s, err := newStore(memoryDescriptor(nil))
	require.NoError(t, err)

	v := s.Get("no.such.key")
	assert.False(t, v.HasValue())
	assert.Nil(t, v.Raw())
}

func TestStoreSetEmptyKey(t *testing.T) {
	s, err := newStore(memoryDescriptor(nil))
	require.NoError(t, err)

	_, err = s.Set(Root, "v")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPath)
	assert.Len(t, s.tree, 0, "a rejected write leaves no side effect")
}

func TestStoreSetKeepsMutationOnPersistFailure(t *testing.T) {
	s, err := newStore(Descriptor{
		Type:     "Broken",
		Settings: map[string]any{"any": true},
	})
	require.NoError(t, err)

	_, err = s.Set("a.b", "1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPersistence)

	// memory keeps the write even though the store never saw it
	assert.Equal(t, "1", s.Get("a.b").Raw())
}

func TestStoreSwitchKeepsCurrentTree(t *testing.T) {
	s, err := newStore(memoryDescriptor(map[string]any{"mine": "1"}))
	require.NoError(t, err)

	require.NoError(t, s.Switch(memoryDescriptor(map[string]any{"theirs": "2"}), false))

	assert.Equal(t, "1", s.Get("mine").Raw())
	assert.False(t, s.Get("theirs").HasValue())
	assert.Equal(t, "Memory", s.provider.Name())
}

func TestStoreSwitchOverwriteAdoptsNewTree(t *testing.T) {
	s, err := newStore(memoryDescriptor(map[string]any{"mine": "1"}))
	require.NoError(t, err)

	require.NoError(t, s.Switch(memoryDescriptor(map[string]any{"theirs": "2"}), true))

	assert.False(t, s.Get("mine").HasValue())
	assert.Equal(t, "2", s.Get("theirs").Raw())
}

func TestStoreSwitchFailureLeavesStoreUntouched(t *testing.T) {
	s, err := newStore(memoryDescriptor(map[string]any{"mine": "1"}))
	require.NoError(t, err)
	before := s.provider

	err = s.Switch(Descriptor{
		Type:     "File",
		Settings: map[string]any{"source": "/no/such/dir/cfg.json"},
	}, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBackendUnavailable)

	assert.Same(t, before, s.provider)
	assert.Equal(t, "1", s.Get("mine").Raw())
}

func TestStoreReload(t *testing.T) {
	s, err := newStore(memoryDescriptor(map[string]any{"a": "1"}))
	require.NoError(t, err)

	// diverge in memory only, then reload from the provider's document
	s.tree.put(splitKey("b"), "2")
	require.NoError(t, s.Reload())

	assert.Equal(t, "1", s.Get("a").Raw())
	assert.False(t, s.Get("b").HasValue())
}
