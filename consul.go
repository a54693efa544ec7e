package conftree

import "github.com/samber/oops"

func init() {
	Register("Consul", NewConsulProvider)
}

// ConsulSettings configures the Consul provider.
type ConsulSettings struct {
	// URL of the consul agent, e.g. "http://localhost:8500".
	URL string `mapstructure:"url"`
}

// consulProvider is the declared remote key-value backend. The capability
// contract is in place; talking to a live agent is not. Every operation
// reports NotImplemented rather than silently doing nothing.
type consulProvider struct {
	settings ConsulSettings
}

// NewConsulProvider decodes the settings and then fails construction the
// same way every provider validates reachability: the initial load runs
// and, being unimplemented, says so.
func NewConsulProvider(settings map[string]any) (Provider, error) {
	var cs ConsulSettings
	if err := decodeSettings(settings, &cs); err != nil {
		return nil, oops.In("Consul").Wrapf(ErrInvalidDescriptor, "decode settings: %v", err)
	}
	p := &consulProvider{settings: cs}
	if _, err := p.Load(); err != nil {
		return nil, err
	}
	return p, nil
}

// Name implements Provider.
func (p *consulProvider) Name() string { return "Consul" }

func (p *consulProvider) Load() (Tree, error) {
	return nil, oops.In(p.Name()).With("url", p.settings.URL).
		Wrapf(ErrNotImplemented, "consul load")
}

func (p *consulProvider) SaveAll(Tree) error {
	return oops.In(p.Name()).With("url", p.settings.URL).
		Wrapf(ErrNotImplemented, "consul save")
}

func (p *consulProvider) SaveValue(string, any) error {
	return oops.In(p.Name()).With("url", p.settings.URL).
		Wrapf(ErrNotImplemented, "consul save value")
}
