package openai

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"net/http"

	"github.com/casualjim/scribe/messages"
	"github.com/casualjim/scribe/pkg/slogx"
	"github.com/casualjim/scribe/provider"
	"github.com/fogfish/opts"
	json "github.com/goccy/go-json"
)

const (
	// Temperature is the sampling temperature sent with every request.
	Temperature = 0.8
	// MaxTokens is the output token budget sent with every request.
	MaxTokens = 8000

	maxErrorBodySize = 1 << 20
)

var _ provider.Provider = (*Provider)(nil)

// WithHTTPClient sets the client used to reach the endpoint.
var WithHTTPClient = opts.ForName[Provider, *http.Client]("client")

// Provider streams chat completions from any OpenAI-compatible endpoint.
// It holds no per-request state and is safe for concurrent use.
type Provider struct {
	name     string
	endpoint string
	apiKey   string
	client   *http.Client
}

// New creates a provider for the given endpoint and credential.
func New(name, endpoint, apiKey string, options ...opts.Option[Provider]) *Provider {
	p := &Provider{
		name:     name,
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   http.DefaultClient,
	}
	if err := opts.Apply(p, options); err != nil {
		panic(err)
	}
	return p
}

func (p *Provider) Name() string {
	return p.name
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Stream      bool          `json:"stream"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

func (p *Provider) buildRequest(params *provider.Request) chatRequest {
	return chatRequest{
		Model:       params.Model,
		Messages:    messagesToOpenAI(params.Instructions, params.Turns),
		Stream:      true,
		Temperature: Temperature,
		MaxTokens:   MaxTokens,
	}
}

// Stream opens the SSE connection. A non-success status is returned as *provider.APIError
// with the response body; the returned stream owns the body from then on.
func (p *Provider) Stream(ctx context.Context, params provider.Request) (*provider.Stream, error) {
	body, err := json.Marshal(p.buildRequest(&params))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "text/event-stream")

	slog.DebugContext(ctx, "opening stream",
		slogx.Provider(p.name),
		slogx.Model(params.Model),
		slog.Int("turns", len(params.Turns)),
	)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errBody []byte
		if resp.Body != nil {
			errBody, _ = io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
			_ = resp.Body.Close()
		}
		return nil, provider.NewAPIError(p.name, resp.StatusCode, errBody)
	}

	if resp.Body == nil || resp.Body == http.NoBody {
		return nil, provider.ErrNoResponseBody
	}

	return provider.NewStream(p.fragments(resp.Body), resp.Body), nil
}

func (p *Provider) fragments(body io.Reader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		dec := NewDecoder(body)
		for dec.Next() {
			if !yield(dec.Current(), nil) {
				return
			}
		}
		if err := dec.Err(); err != nil {
			yield("", err)
		}
	}
}

func messagesToOpenAI(instructions string, turns []messages.Turn) []chatMessage {
	result := make([]chatMessage, 0, len(turns)+1)
	result = append(result, chatMessage{Role: "system", Content: instructions})
	for _, turn := range turns {
		result = append(result, chatMessage{Role: string(turn.Role), Content: turn.Content})
	}
	return result
}
