package provider

import (
	"fmt"

	"pleadmd/internal/domain"
)

// catalog is the static set of LLM providers, in display order.
var catalog = []domain.ProviderDescriptor{
	{
		ID:             domain.ProviderOpenAI,
		Name:           "OpenAI",
		BaseURL:        "https://api.openai.com/v1",
		RequiresAPIKey: true,
		Models:         []string{"gpt-4o", "gpt-4o-mini", "gpt-4-turbo", "gpt-3.5-turbo"},
		Kind:           domain.ProviderKindOpenAICompatible,
	},
	{
		ID:             domain.ProviderAnthropic,
		Name:           "Anthropic",
		BaseURL:        "https://api.anthropic.com/v1",
		RequiresAPIKey: true,
		Models:         []string{"claude-3-5-sonnet-20241022", "claude-3-5-haiku-20241022", "claude-3-opus-20240229"},
		Kind:           domain.ProviderKindAnthropic,
	},
	{
		ID:             domain.ProviderGroq,
		Name:           "Groq",
		BaseURL:        "https://api.groq.com/openai/v1",
		RequiresAPIKey: true,
		Models:         []string{"llama-3.1-70b-versatile", "llama-3.1-8b-instant", "mixtral-8x7b-32768"},
		Kind:           domain.ProviderKindOpenAICompatible,
	},
	{
		ID:             domain.ProviderLocal,
		Name:           "Local/Custom",
		BaseURL:        "http://localhost:11434/v1",
		RequiresAPIKey: false,
		Models:         []string{"custom"},
		Kind:           domain.ProviderKindLocal,
	},
}

// Registry resolves provider descriptors by identifier.
type Registry struct {
	providers map[string]domain.ProviderDescriptor
	order     []string
}

// NewRegistry returns a registry over the built-in catalog. A non-empty
// localBaseURL replaces the default base URL of the local provider.
func NewRegistry(localBaseURL string) *Registry {
	r := &Registry{providers: make(map[string]domain.ProviderDescriptor, len(catalog))}
	for _, p := range catalog {
		if _, dup := r.providers[p.ID]; dup {
			panic(fmt.Sprintf("provider: duplicate descriptor %q", p.ID))
		}
		if len(p.Models) == 0 {
			panic(fmt.Sprintf("provider: descriptor %q has no models", p.ID))
		}
		if p.ID == domain.ProviderLocal && localBaseURL != "" {
			p.BaseURL = localBaseURL
		}
		p.Models = append([]string(nil), p.Models...)
		r.providers[p.ID] = p
		r.order = append(r.order, p.ID)
	}
	return r
}

// NewRegistryWith builds a registry from explicit descriptors. It is used to
// point providers at test servers.
func NewRegistryWith(descriptors ...domain.ProviderDescriptor) *Registry {
	r := &Registry{providers: make(map[string]domain.ProviderDescriptor, len(descriptors))}
	for _, p := range descriptors {
		if _, dup := r.providers[p.ID]; !dup {
			r.order = append(r.order, p.ID)
		}
		r.providers[p.ID] = p
	}
	return r
}

// Lookup returns the descriptor for id.
func (r *Registry) Lookup(id string) (domain.ProviderDescriptor, bool) {
	p, ok := r.providers[id]
	return p, ok
}

// List returns all descriptors in display order.
func (r *Registry) List() []domain.ProviderDescriptor {
	out := make([]domain.ProviderDescriptor, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.providers[id])
	}
	return out
}
