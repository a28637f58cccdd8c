package scribe

import (
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/casualjim/scribe/pkg/slogx"
	"github.com/casualjim/scribe/prompt"
	"github.com/casualjim/scribe/provider/models"
)

// Credentials maps a provider to its API key.
type Credentials map[models.ProviderID]string

// Get returns the trimmed API key for a provider, or an empty string.
func (c Credentials) Get(id models.ProviderID) string {
	return strings.TrimSpace(c[id])
}

// LogValue reports which providers are configured without revealing any key.
func (c Credentials) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(models.ProviderIDs()))
	for _, id := range models.ProviderIDs() {
		attrs = append(attrs, slogx.Secret(id.String(), c.Get(id)))
	}
	return slog.GroupValue(attrs...)
}

// config is an immutable snapshot; updates swap in a modified copy.
type config struct {
	model       string
	credentials Credentials
	memories    []prompt.Memory
	examples    []prompt.WritingExample
}

func (c *config) clone() *config {
	return &config{
		model:       c.model,
		credentials: maps.Clone(c.credentials),
		memories:    slices.Clone(c.memories),
		examples:    slices.Clone(c.examples),
	}
}

// UpdateCredentials replaces all API keys. Effective from the next Generate call.
func (a *Aggregator) UpdateCredentials(credentials Credentials) {
	a.update(func(c *config) {
		c.credentials = maps.Clone(credentials)
	})
}

// UpdateModel replaces the logical model name. Effective from the next Generate call.
func (a *Aggregator) UpdateModel(model string) {
	a.update(func(c *config) {
		c.model = model
	})
}

// UpdateMemories replaces the memory snapshot. Effective from the next Generate call.
func (a *Aggregator) UpdateMemories(memories []prompt.Memory) {
	a.update(func(c *config) {
		c.memories = slices.Clone(memories)
	})
}

// UpdateWritingExamples replaces the writing example snapshot. Effective from the next
// Generate call.
func (a *Aggregator) UpdateWritingExamples(examples []prompt.WritingExample) {
	a.update(func(c *config) {
		c.examples = slices.Clone(examples)
	})
}

// Model returns the configured logical model name.
func (a *Aggregator) Model() string {
	return a.cfg.Load().model
}

// Binding returns the provider binding the next Generate call will use.
func (a *Aggregator) Binding() models.Binding {
	return models.Resolve(a.cfg.Load().model)
}

func (a *Aggregator) update(fn func(*config)) {
	for {
		current := a.cfg.Load()
		next := current.clone()
		fn(next)
		if a.cfg.CompareAndSwap(current, next) {
			return
		}
	}
}
