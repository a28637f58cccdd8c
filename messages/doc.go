// Package messages provides the conversation types shared by the prompt builder,
// the provider adapters and the host application.
//
// Design decisions:
//   - Plain values: a Turn is a role and a text body, nothing else
//   - Order matters: a conversation is an ordered slice and is never reordered
//   - Immutable once sent: adapters and the aggregator only ever read turns
//   - Thread ownership: a Thread hands out clones so callers cannot mutate its history
//
// Example usage:
//
//	thread := messages.NewThread()
//	thread.Add(messages.RoleUser, "Write an article about tidal power")
//
//	stream, err := aggregator.Generate(ctx, thread.Turns())
//	if err != nil {
//	    return err
//	}
//	defer stream.Close()
package messages
