// Package gemini implements the provider.Provider interface for Google Gemini through the
// google.golang.org/genai SDK.
//
// The SDK chat call has no standalone system role, so the request is shaped differently
// from the OpenAI-compatible providers:
//   - every turn except the last seeds the chat history, with "assistant" mapped to "model"
//   - the system prompt and the last turn are sent together as the live message,
//     system prompt first, separated by Delimiter
//
// The SDK's incremental text chunks are re-yielded unchanged. SDK errors (auth, quota,
// network) are passed through as-is.
package gemini
