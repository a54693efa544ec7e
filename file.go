package conftree

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/oops"
	"go.uber.org/multierr"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

func init() {
	Register("File", NewFileProvider)
}

// FileSettings configures the File provider.
type FileSettings struct {
	// Source is the path of the configuration document. ${VAR} references
	// are expanded against the environment at construction.
	Source string `mapstructure:"source"`
	// Format overrides the serialization format. Empty means resolve from
	// the file extension; json is the default.
	Format string `mapstructure:"format"`
}

// fileProvider reads and writes one configuration document on the local
// file system. File handles are scoped to each call and closed before it
// returns; nothing stays open between operations.
type fileProvider struct {
	settings FileSettings
	driver   *Driver
}

// NewFileProvider builds a File provider and verifies the source is
// readable by performing the initial load.
func NewFileProvider(settings map[string]any) (Provider, error) {
	var fs FileSettings
	if err := decodeSettings(settings, &fs); err != nil {
		return nil, oops.In("File").Wrapf(ErrInvalidDescriptor, "decode settings: %v", err)
	}
	if fs.Source == "" {
		return nil, oops.In("File").Wrapf(ErrInvalidDescriptor, "file settings need a source")
	}

	format := fs.Format
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(fs.Source), ".")
	}

	p := &fileProvider{settings: fs, driver: resolveDriver(format)}
	if _, err := p.Load(); err != nil {
		return nil, err
	}
	return p, nil
}

// Name implements Provider.
func (p *fileProvider) Name() string { return "File" }

// Load reads the whole document fresh from disk. A missing file, a
// permissions error, and a malformed document all collapse into the one
// BackendUnavailable signal: something is wrong with the source, and the
// caller should check that it exists, is readable, and holds a valid
// document.
func (p *fileProvider) Load() (Tree, error) {
	tree, err := p.read()
	if err != nil {
		log.WithError(err).WithField("source", p.settings.Source).Debug("load failed")
		return nil, oops.In(p.Name()).With("source", p.settings.Source).
			Wrapf(ErrBackendUnavailable, "load %s", p.settings.Source)
	}
	log.WithField("source", p.settings.Source).Debug("loaded document")
	return tree, nil
}

// SaveAll rewrites the whole document, unconditionally replacing the file's
// prior contents.
func (p *fileProvider) SaveAll(tree Tree) error {
	if err := p.write(tree); err != nil {
		return oops.In(p.Name()).With("source", p.settings.Source).
			Wrapf(multierr.Append(ErrPersistence, err), "save %s", p.settings.Source)
	}
	log.WithField("source", p.settings.Source).Debug("saved full document")
	return nil
}

// SaveValue persists one key by reconciling against the latest on-disk
// state: the document is re-read fresh from disk, the key applied with the
// same create-missing-mappings rule as an in-memory set, and the whole
// document written back. Out-of-band edits to other keys survive the write.
func (p *fileProvider) SaveValue(key string, value any) error {
	tree, err := p.read()
	if err != nil {
		return oops.In(p.Name()).With("source", p.settings.Source).With("key", key).
			Wrapf(multierr.Append(ErrPersistence, err), "reread %s", p.settings.Source)
	}
	tree.put(splitKey(key), value)
	if err := p.write(tree); err != nil {
		return oops.In(p.Name()).With("source", p.settings.Source).With("key", key).
			Wrapf(multierr.Append(ErrPersistence, err), "save %s", p.settings.Source)
	}
	return nil
}

func (p *fileProvider) read() (Tree, error) {
	f, err := os.Open(p.settings.Source)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// tolerate documents saved with a UTF-8 byte order mark
	blob, err := io.ReadAll(transform.NewReader(f, unicode.UTF8BOM.NewDecoder()))
	if err != nil {
		return nil, err
	}

	var tree Tree
	if err := p.driver.Decode(blob, &tree); err != nil {
		return nil, err
	}
	if tree == nil {
		tree = Tree{}
	}
	return tree, nil
}

func (p *fileProvider) write(tree Tree) error {
	blob, err := p.driver.Encode(tree)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(p.settings.Source, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	_, err = f.Write(blob)
	return multierr.Append(err, f.Close())
}
