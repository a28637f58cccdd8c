package provider

import (
	"context"

	"github.com/casualjim/scribe/messages"
)

// Provider is the StreamingChatProvider capability every vendor adapter implements.
type Provider interface {
	// Name returns the provider identifier, used in errors and logs.
	Name() string

	// Stream opens one streaming chat completion. Errors that can be detected before
	// the first fragment (missing credentials, HTTP status failures) are returned here;
	// later failures surface through the returned Stream.
	Stream(context.Context, Request) (*Stream, error)
}

// Request encapsulates everything an adapter needs for one streaming completion.
type Request struct {
	// Model is the vendor's concrete model id.
	Model string

	// Instructions is the system prompt.
	Instructions string

	// Turns is the conversation history, oldest first. Adapters read it, never modify it.
	Turns []messages.Turn

	// Prevents unkeyed literals
	_ struct{}
}
