package tool

import (
	"fmt"
	"log/slog"
	"sync"
)

// Config selects and configures one registered provider namespace.
type Config struct {
	Name    string         `yaml:"name"`
	Disable bool           `yaml:"disable"`
	Options map[string]any `yaml:"options"`
}

// Provider yields the tools of one namespace.
type Provider interface {
	Tools() []*Tool
}

type ProviderFunc func(cfg Config) (Provider, error)

var (
	dmutex    sync.RWMutex
	providers = make(map[string]ProviderFunc)
)

// Register records a provider constructor under a namespace. Providers
// call it from init and are activated by blank import.
func Register(name string, fn ProviderFunc) {
	dmutex.Lock()
	defer dmutex.Unlock()
	if fn == nil {
		panic("tool: Register provider is nil")
	}
	if _, dup := providers[name]; dup {
		panic("tool: Register called twice for provider " + name)
	}
	providers[name] = fn
}

// Registered lists the known namespaces.
func Registered() []string {
	dmutex.RLock()
	defer dmutex.RUnlock()
	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	return names
}

// Build instantiates the configured providers and collects their tools.
func Build(cfgs []Config) ([]*Tool, error) {
	dmutex.RLock()
	defer dmutex.RUnlock()

	var out []*Tool
	seen := map[string]bool{}
	for _, cfg := range cfgs {
		if cfg.Disable {
			slog.Debug("tool provider disabled", "namespace", cfg.Name)
			continue
		}
		fn, ok := providers[cfg.Name]
		if !ok {
			return nil, fmt.Errorf("tool: unknown provider %q, forget to blank import?", cfg.Name)
		}
		p, err := fn(cfg)
		if err != nil {
			return nil, fmt.Errorf("tool: build %s: %w", cfg.Name, err)
		}
		for _, t := range p.Tools() {
			if seen[t.Name] {
				return nil, fmt.Errorf("tool: duplicate tool %q", t.Name)
			}
			seen[t.Name] = true
			out = append(out, t)
			slog.Debug("tool initiate", "namespace", cfg.Name, "name", t.Name)
		}
	}
	if len(out) == 0 {
		slog.Warn("there is 0 tools built, check the tools config")
	}
	return out, nil
}
