// Package provider implements an abstraction layer for streaming chat completions from
// large language model vendors in a consistent way. Every vendor, whether it speaks an
// OpenAI-compatible Server-Sent-Events protocol or is reached through its own SDK, is
// exposed as the same thing: a pull-based stream of text fragments.
//
// Design decisions:
//   - Provider abstraction: a single interface with one implementation per protocol
//   - Pull, don't push: a Stream is driven by the consumer, no goroutine runs ahead of it
//   - Release on exit: the network connection is closed when the stream is exhausted,
//     fails, is closed explicitly or the consumer stops ranging over Fragments
//   - Plain text: fragments are re-exposed exactly as the vendor produced them
//   - Typed errors: configuration, transport and no-body failures are distinguishable
//
// Key concepts:
//   - Provider: interface a vendor adapter implements
//   - Request: model id, system instructions and the conversation turns
//   - Stream: the fragment sequence handed back to the caller
//   - CredentialError, APIError, ErrNoResponseBody: the error taxonomy
//
// Example usage:
//
//	stream, err := p.Stream(ctx, provider.Request{
//	    Model:        "mistral-large-latest",
//	    Instructions: "You are a helpful assistant",
//	    Turns:        []messages.Turn{messages.User("Hello")},
//	})
//	if err != nil {
//	    return err
//	}
//
//	for fragment, err := range stream.Fragments() {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Print(fragment)
//	}
package provider
