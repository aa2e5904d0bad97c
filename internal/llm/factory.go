package llm

import (
	"fmt"

	"doclens/internal/config"
	"doclens/internal/port"
)

// ProviderFactory is a function that creates an LLMExtractor from a
// provider config.
type ProviderFactory func(cfg *config.LLMProviderConfig) (port.LLMExtractor, error)

// registry of provider factories, populated by init() in each provider
// package or explicitly via RegisterProvider.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers a provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// NewExtractor creates an LLMExtractor from a provider config using the
// registered factory.
func NewExtractor(cfg *config.LLMProviderConfig) (port.LLMExtractor, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown LLM provider: %s", cfg.Provider)
	}
	return factory(cfg)
}
