package provider

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

var (
	// ErrMissingCredential matches any CredentialError.
	ErrMissingCredential = errors.New("credential not set")

	// ErrNoResponseBody is returned when a successful response carries no readable body.
	ErrNoResponseBody = errors.New("no response body")

	// ErrEmptyConversation is returned when a request has no turns to send.
	ErrEmptyConversation = errors.New("conversation has no turns")
)

// CredentialError reports that the credential for the selected provider is not configured.
// It is raised before any network activity.
type CredentialError struct {
	Provider string
}

func (e *CredentialError) Error() string {
	return fmt.Sprintf("%s API key not set: add it in settings", e.Provider)
}

// Is makes errors.Is(err, ErrMissingCredential) hold for every CredentialError.
func (e *CredentialError) Is(target error) bool {
	return target == ErrMissingCredential
}

// APIError is a non-success HTTP response from a provider.
type APIError struct {
	Provider   string
	StatusCode int
	// Body is the raw response body text.
	Body string
	// Message is the provider's error.message field when the body is JSON.
	Message string
}

// NewAPIError builds an APIError, extracting the provider's message when the body is JSON.
func NewAPIError(provider string, statusCode int, body []byte) *APIError {
	e := &APIError{
		Provider:   provider,
		StatusCode: statusCode,
		Body:       strings.TrimSpace(string(body)),
	}
	if gjson.ValidBytes(body) {
		for _, path := range []string{"error.message", "message", "error"} {
			if msg := gjson.GetBytes(body, path); msg.Type == gjson.String {
				e.Message = msg.String()
				break
			}
		}
	}
	return e
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s API error (%d): %s", e.Provider, e.StatusCode, e.Body)
}
