package gemini

import (
	"context"
	"errors"
	"iter"
	"strings"
	"testing"

	"github.com/casualjim/scribe/messages"
	"github.com/casualjim/scribe/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type fakeChat struct {
	responses []string
	err       error

	sent    []genai.Part
	yielded int
	stopped bool
}

func (f *fakeChat) SendMessageStream(_ context.Context, parts ...genai.Part) iter.Seq2[*genai.GenerateContentResponse, error] {
	f.sent = parts
	return func(yield func(*genai.GenerateContentResponse, error) bool) {
		for _, text := range f.responses {
			resp := &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{
					Content: &genai.Content{Role: "model", Parts: []*genai.Part{{Text: text}}},
				}},
			}
			f.yielded++
			if !yield(resp, nil) {
				f.stopped = true
				return
			}
		}
		if f.err != nil {
			yield(nil, f.err)
		}
	}
}

type recordedChat struct {
	calls   int
	apiKey  string
	model   string
	config  *genai.GenerateContentConfig
	history []*genai.Content
}

func factory(rec *recordedChat, chat *fakeChat) ChatFactory {
	return func(_ context.Context, apiKey, model string, config *genai.GenerateContentConfig, history []*genai.Content) (ChatSession, error) {
		rec.calls++
		rec.apiKey = apiKey
		rec.model = model
		rec.config = config
		rec.history = history
		return chat, nil
	}
}

func testRequest() provider.Request {
	return provider.Request{
		Model:        "gemini-2.5-flash",
		Instructions: "STYLE",
		Turns: []messages.Turn{
			messages.User("first"),
			messages.Assistant("reply"),
			messages.User("second"),
		},
	}
}

func TestProvider_Stream_MissingCredential(t *testing.T) {
	rec := &recordedChat{}
	p := New("", WithChatFactory(factory(rec, &fakeChat{})))

	stream, err := p.Stream(context.Background(), testRequest())
	require.Error(t, err)
	assert.Nil(t, stream)
	assert.ErrorIs(t, err, provider.ErrMissingCredential)
	assert.Equal(t, 0, rec.calls)
}

func TestProvider_Stream_EmptyConversation(t *testing.T) {
	rec := &recordedChat{}
	p := New("key", WithChatFactory(factory(rec, &fakeChat{})))

	_, err := p.Stream(context.Background(), provider.Request{Model: "gemini-2.5-flash"})
	assert.ErrorIs(t, err, provider.ErrEmptyConversation)
	assert.Equal(t, 0, rec.calls)
}

func TestProvider_Stream(t *testing.T) {
	rec := &recordedChat{}
	chat := &fakeChat{responses: []string{"Hello", "", ", world"}}
	p := New("key", WithChatFactory(factory(rec, chat)))
	assert.Equal(t, "google", p.Name())

	stream, err := p.Stream(context.Background(), testRequest())
	require.NoError(t, err)

	var sb strings.Builder
	for fragment, err := range stream.Fragments() {
		require.NoError(t, err)
		sb.WriteString(fragment)
	}
	assert.Equal(t, "Hello, world", sb.String())

	assert.Equal(t, 1, rec.calls)
	assert.Equal(t, "key", rec.apiKey)
	assert.Equal(t, "gemini-2.5-flash", rec.model)

	require.Len(t, rec.history, 2)
	assert.Equal(t, "user", rec.history[0].Role)
	assert.Equal(t, "first", rec.history[0].Parts[0].Text)
	assert.Equal(t, "model", rec.history[1].Role)
	assert.Equal(t, "reply", rec.history[1].Parts[0].Text)

	require.Len(t, chat.sent, 1)
	assert.Equal(t, "STYLE"+Delimiter+"second", chat.sent[0].Text)

	require.NotNil(t, rec.config)
	assert.Equal(t, Temperature, *rec.config.Temperature)
	assert.Equal(t, TopP, *rec.config.TopP)
	assert.Equal(t, TopK, *rec.config.TopK)
	assert.Equal(t, MaxOutputTokens, rec.config.MaxOutputTokens)
}

func TestProvider_Stream_SingleTurnHasNoHistory(t *testing.T) {
	rec := &recordedChat{}
	chat := &fakeChat{responses: []string{"ok"}}
	p := New("key", WithChatFactory(factory(rec, chat)))

	_, err := p.Stream(context.Background(), provider.Request{
		Model:        "gemini-2.5-pro",
		Instructions: "S",
		Turns:        []messages.Turn{messages.User("only")},
	})
	require.NoError(t, err)
	assert.Empty(t, rec.history)
	assert.Equal(t, "S"+Delimiter+"only", chat.sent[0].Text)
}

func TestProvider_Stream_SDKErrorPropagates(t *testing.T) {
	quota := errors.New("RESOURCE_EXHAUSTED: quota exceeded")
	chat := &fakeChat{responses: []string{"partial"}, err: quota}
	p := New("key", WithChatFactory(factory(&recordedChat{}, chat)))

	stream, err := p.Stream(context.Background(), testRequest())
	require.NoError(t, err)

	require.True(t, stream.Next())
	assert.Equal(t, "partial", stream.Current())
	require.False(t, stream.Next())
	assert.Same(t, quota, stream.Err())
}

func TestProvider_Stream_FactoryError(t *testing.T) {
	boom := errors.New("invalid api key")
	p := New("key", WithChatFactory(func(context.Context, string, string, *genai.GenerateContentConfig, []*genai.Content) (ChatSession, error) {
		return nil, boom
	}))

	_, err := p.Stream(context.Background(), testRequest())
	assert.Same(t, boom, err)
}

func TestProvider_Stream_EarlyAbandonStopsSDKStream(t *testing.T) {
	chat := &fakeChat{responses: []string{"one", "two", "three"}}
	p := New("key", WithChatFactory(factory(&recordedChat{}, chat)))

	stream, err := p.Stream(context.Background(), testRequest())
	require.NoError(t, err)

	require.True(t, stream.Next())
	require.NoError(t, stream.Close())

	assert.Equal(t, 1, chat.yielded)
	assert.True(t, chat.stopped)
}
