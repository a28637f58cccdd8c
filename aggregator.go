package scribe

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"sync/atomic"

	"github.com/casualjim/scribe/messages"
	"github.com/casualjim/scribe/pkg/slogx"
	"github.com/casualjim/scribe/prompt"
	"github.com/casualjim/scribe/provider"
	"github.com/casualjim/scribe/provider/gemini"
	"github.com/casualjim/scribe/provider/models"
	"github.com/casualjim/scribe/provider/openai"
	"github.com/fogfish/opts"
)

// ProviderFactory builds the adapter for a provider with the given API key.
type ProviderFactory func(id models.ProviderID, apiKey string, client *http.Client) (provider.Provider, error)

// DefaultProviderFactory serves google through the genai SDK and every other provider
// through its OpenAI-compatible endpoint.
func DefaultProviderFactory(id models.ProviderID, apiKey string, client *http.Client) (provider.Provider, error) {
	if id == models.Google {
		return gemini.New(apiKey, gemini.WithHTTPClient(client)), nil
	}
	endpoint, ok := openai.Endpoint(id.String())
	if !ok {
		return nil, fmt.Errorf("unsupported provider: %s", id)
	}
	return openai.New(id.String(), endpoint, apiKey, openai.WithHTTPClient(client)), nil
}

// Aggregator turns a conversation into one stream of text fragments, whichever provider
// serves the configured model. It is safe for concurrent use; concurrent calls each get
// their own configuration snapshot and network stream.
type Aggregator struct {
	cfg atomic.Pointer[config]

	httpClient *http.Client
	factory    ProviderFactory

	// initial values, moved into cfg by New
	model       string
	credentials Credentials
	memories    []prompt.Memory
	examples    []prompt.WritingExample
}

// New creates an Aggregator. Without WithModel the default binding is used.
func New(options ...opts.Option[Aggregator]) (*Aggregator, error) {
	a := &Aggregator{
		httpClient: http.DefaultClient,
		factory:    DefaultProviderFactory,
	}
	if err := opts.Apply(a, options); err != nil {
		return nil, err
	}
	if a.httpClient == nil {
		a.httpClient = http.DefaultClient
	}
	if a.factory == nil {
		a.factory = DefaultProviderFactory
	}

	initial := &config{
		model:       a.model,
		credentials: maps.Clone(a.credentials),
		memories:    slices.Clone(a.memories),
		examples:    slices.Clone(a.examples),
	}
	if initial.model == "" {
		initial.model = models.Default.Model
	}
	if initial.credentials == nil {
		initial.credentials = Credentials{}
	}
	a.cfg.Store(initial)

	a.model, a.credentials, a.memories, a.examples = "", nil, nil, nil
	return a, nil
}

// Generate opens one stream for the conversation. A missing API key for the resolved
// provider fails with *provider.CredentialError before any network activity. Provider
// errors are returned unmodified. The caller must exhaust or Close the stream.
func (a *Aggregator) Generate(ctx context.Context, turns []messages.Turn) (*provider.Stream, error) {
	cfg := a.cfg.Load()

	binding := models.Resolve(cfg.model)
	apiKey := cfg.credentials.Get(binding.Provider)
	if apiKey == "" {
		return nil, &provider.CredentialError{Provider: binding.Provider.String()}
	}

	slog.DebugContext(ctx, "generate",
		slogx.LoggerName("scribe"),
		slog.String("logical_model", cfg.model),
		slogx.Provider(binding.Provider.String()),
		slogx.Model(binding.Model),
		slog.Any("credentials", cfg.credentials),
		slog.Int("memories", len(cfg.memories)),
		slog.Int("examples", len(cfg.examples)),
	)

	p, err := a.factory(binding.Provider, apiKey, a.httpClient)
	if err != nil {
		return nil, err
	}

	return p.Stream(ctx, provider.Request{
		Model:        binding.Model,
		Instructions: prompt.Build(cfg.memories, cfg.examples),
		Turns:        slices.Clone(turns),
	})
}
