package provider

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCredentialError(t *testing.T) {
	var err error = &CredentialError{Provider: "mistral"}

	assert.ErrorIs(t, err, ErrMissingCredential)
	assert.ErrorIs(t, fmt.Errorf("generate: %w", err), ErrMissingCredential)
	assert.Equal(t, "mistral API key not set: add it in settings", err.Error())

	var ce *CredentialError
	assert.True(t, errors.As(err, &ce))
	assert.Equal(t, "mistral", ce.Provider)
}

func TestNewAPIError(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantMessage string
	}{
		{name: "plain text", body: "rate limited", wantMessage: ""},
		{name: "openai shape", body: `{"error":{"message":"quota exceeded","type":"rate_limit"}}`, wantMessage: "quota exceeded"},
		{name: "flat message", body: `{"message":"Unauthorized"}`, wantMessage: "Unauthorized"},
		{name: "string error", body: `{"error":"bad model"}`, wantMessage: "bad model"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewAPIError("cerebras", 429, []byte(tt.body+"\n"))
			assert.Equal(t, 429, err.StatusCode)
			assert.Equal(t, tt.body, err.Body)
			assert.Equal(t, tt.wantMessage, err.Message)
			assert.Contains(t, err.Error(), "429")
			assert.Contains(t, err.Error(), tt.body)
		})
	}
}
