package conftree

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Serializer converts between a Tree and its on-disk byte form.
type Serializer interface {
	Encode(t Tree) (out []byte, err error)
	Decode(blob []byte, t *Tree) (err error)
}

// Driver pairs a format name (plus alias names) with its serializer.
type Driver struct {
	name       string
	aliases    []string
	serializer Serializer
}

// NewDriver new driver instance.
func NewDriver(name string, serializer Serializer) *Driver {
	return &Driver{name: name, serializer: serializer}
}

// WithAliases set aliases for driver
func (d *Driver) WithAliases(aliases ...string) *Driver {
	d.aliases = append(d.aliases, aliases...)
	return d
}

// Name of driver
func (d *Driver) Name() string { return d.name }

// Aliases format name of driver
func (d *Driver) Aliases() []string { return d.aliases }

// Decode of driver
func (d *Driver) Decode(blob []byte, t *Tree) error { return d.serializer.Decode(blob, t) }

// Encode of driver
func (d *Driver) Encode(t Tree) ([]byte, error) { return d.serializer.Encode(t) }

var (
	// JSONDriver is the canonical file format. Encoding is deterministic:
	// keys sorted, four-space indent, HTML escaping off, trailing newline.
	// Saving equal trees yields byte-identical files.
	JSONDriver = NewDriver("json", &jsonSerializer{})

	// YamlDriver instance for yaml
	YamlDriver = NewDriver("yaml", &yamlSerializer{}).WithAliases("yml")

	drivers = []*Driver{JSONDriver, YamlDriver}
)

// resolveDriver resolves a format name, checking aliases; json is the
// fallback for anything unrecognized.
func resolveDriver(format string) *Driver {
	for _, d := range drivers {
		if d.name == format {
			return d
		}
		for _, alias := range d.aliases {
			if alias == format {
				return d
			}
		}
	}
	return JSONDriver
}

type jsonSerializer struct{}

// Encode for the driver
func (jsonSerializer) Encode(t Tree) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode for the driver
func (jsonSerializer) Decode(blob []byte, t *Tree) error {
	return json.Unmarshal(blob, t)
}

type yamlSerializer struct{}

// Encode for the driver
func (yamlSerializer) Encode(t Tree) (out []byte, err error) {
	return yaml.Marshal(t)
}

// Decode for the driver
func (yamlSerializer) Decode(blob []byte, t *Tree) error {
	return yaml.Unmarshal(blob, t)
}
