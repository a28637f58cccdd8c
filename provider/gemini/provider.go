package gemini

import (
	"context"
	"iter"
	"log/slog"
	"net/http"

	"github.com/casualjim/scribe/messages"
	"github.com/casualjim/scribe/pkg/slogx"
	"github.com/casualjim/scribe/provider"
	"github.com/fogfish/opts"
	"google.golang.org/genai"
)

// Name is the provider identifier.
const Name = "google"

// Delimiter separates the system prompt from the user's message in the live message.
const Delimiter = "\n\n---\n\n"

// Generation parameters applied to every chat.
const (
	Temperature     float32 = 0.8
	TopP            float32 = 0.95
	TopK            float32 = 40
	MaxOutputTokens int32   = 8000
)

// ChatSession is the part of *genai.Chat the provider uses.
type ChatSession interface {
	SendMessageStream(ctx context.Context, parts ...genai.Part) iter.Seq2[*genai.GenerateContentResponse, error]
}

// ChatFactory opens a chat session seeded with history.
type ChatFactory func(ctx context.Context, apiKey, model string, config *genai.GenerateContentConfig, history []*genai.Content) (ChatSession, error)

var (
	// WithHTTPClient sets the client the SDK uses.
	WithHTTPClient = opts.ForName[Provider, *http.Client]("client")
	// WithChatFactory replaces the SDK chat constructor.
	WithChatFactory = opts.ForName[Provider, ChatFactory]("newChat")
)

var _ provider.Provider = (*Provider)(nil)

// Provider streams chat completions from Gemini.
type Provider struct {
	apiKey  string
	client  *http.Client
	newChat ChatFactory
}

// New creates a Gemini provider. The API key is checked on every Stream call.
func New(apiKey string, options ...opts.Option[Provider]) *Provider {
	p := &Provider{apiKey: apiKey}
	if err := opts.Apply(p, options); err != nil {
		panic(err)
	}
	if p.newChat == nil {
		p.newChat = p.sdkChat
	}
	return p
}

func (p *Provider) Name() string {
	return Name
}

func (p *Provider) sdkChat(ctx context.Context, apiKey, model string, config *genai.GenerateContentConfig, history []*genai.Content) (ChatSession, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: p.client,
	})
	if err != nil {
		return nil, err
	}
	return client.Chats.Create(ctx, model, config, history)
}

// Stream fails with a *provider.CredentialError before any network call when no API key
// is configured.
func (p *Provider) Stream(ctx context.Context, params provider.Request) (*provider.Stream, error) {
	if p.apiKey == "" {
		return nil, &provider.CredentialError{Provider: Name}
	}
	if len(params.Turns) == 0 {
		return nil, provider.ErrEmptyConversation
	}

	last := params.Turns[len(params.Turns)-1]
	history := historyToGemini(params.Turns[:len(params.Turns)-1])

	slog.DebugContext(ctx, "opening stream",
		slogx.Provider(Name),
		slogx.Model(params.Model),
		slog.Int("turns", len(params.Turns)),
	)

	chat, err := p.newChat(ctx, p.apiKey, params.Model, generationConfig(), history)
	if err != nil {
		return nil, err
	}

	message := genai.Part{Text: params.Instructions + Delimiter + last.Content}
	return provider.NewStream(fragments(chat.SendMessageStream(ctx, message)), nil), nil
}

func fragments(responses iter.Seq2[*genai.GenerateContentResponse, error]) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for resp, err := range responses {
			if err != nil {
				yield("", err)
				return
			}
			if resp == nil {
				continue
			}
			if text := resp.Text(); text != "" {
				if !yield(text, nil) {
					return
				}
			}
		}
	}
}

func generationConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(Temperature),
		TopP:            genai.Ptr(TopP),
		TopK:            genai.Ptr(TopK),
		MaxOutputTokens: MaxOutputTokens,
	}
}

func historyToGemini(turns []messages.Turn) []*genai.Content {
	history := make([]*genai.Content, 0, len(turns))
	for _, turn := range turns {
		role := "user"
		if turn.Role == messages.RoleAssistant {
			role = "model"
		}
		history = append(history, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: turn.Content}},
		})
	}
	return history
}
