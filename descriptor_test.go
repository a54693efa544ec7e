package conftree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindsContainsBuiltins(t *testing.T) {
	kinds := Kinds()
	assert.Contains(t, kinds, "File")
	assert.Contains(t, kinds, "Consul")
	assert.Contains(t, kinds, "Memory")
	assert.IsIncreasing(t, kinds)
}

func TestValidateReportsEveryProblem(t *testing.T) {
	err := Descriptor{}.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDescriptor)
	assert.Contains(t, err.Error(), "no type")
	assert.Contains(t, err.Error(), "no settings")
}

func TestValidateUnknownType(t *testing.T) {
	err := Descriptor{
		Type:     "ZooKeeper",
		Settings: map[string]any{"url": "x"},
	}.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDescriptor)
	assert.Contains(t, err.Error(), "ZooKeeper")
}

func TestRegisterCustomKind(t *testing.T) {
	Register("Custom", func(settings map[string]any) (Provider, error) {
		return NewMemoryProvider(settings)
	})

	conf, err := New(Descriptor{
		Type:     "Custom",
		Settings: map[string]any{"seed": map[string]any{"a": "1"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "1", conf.Get("a").Raw())
}

func TestDecodeSettingsRejectsBadShape(t *testing.T) {
	_, err := NewFileProvider(map[string]any{"source": 42})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDescriptor)
}
