package models

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		want Binding
	}{
		{name: "gemini-2.5-flash", want: Binding{Provider: Google, Model: "gemini-2.5-flash"}},
		{name: "mistral-large-latest", want: Binding{Provider: Mistral, Model: "mistral-large-latest"}},
		{name: "gpt-oss-120b", want: Binding{Provider: Cerebras, Model: "gpt-oss-120b"}},
		{name: "glm-4.5-flash", want: Binding{Provider: Zhipu, Model: "glm-4.5-flash"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.name))
		})
	}
}

// Unknown names fall back to the default binding on purpose. A typo in a configured
// model name is therefore silently served by Gemini Flash.
func TestResolve_UnknownFallsBackToDefault(t *testing.T) {
	for _, name := range []string{"", "gpt-5", "GEMINI-2.5-FLASH", "mistral-large"} {
		assert.NotPanics(t, func() {
			assert.Equal(t, Default, Resolve(name))
		})
		_, ok := Lookup(name)
		assert.False(t, ok)
	}
	assert.Equal(t, Binding{Provider: Google, Model: "gemini-2.5-flash"}, Default)
}

func TestRegister(t *testing.T) {
	Register("test-model", Binding{Provider: Mistral, Model: "open-mistral-nemo"})
	t.Cleanup(func() { Del("test-model") })

	assert.Equal(t, Binding{Provider: Mistral, Model: "open-mistral-nemo"}, Resolve("test-model"))
	assert.Contains(t, Names(), "test-model")
}

func TestNames(t *testing.T) {
	names := Names()
	require.NotEmpty(t, names)
	assert.True(t, slices.IsSorted(names))
	assert.Contains(t, names, Default.Model)

	for _, name := range names {
		assert.True(t, Resolve(name).Provider.Valid(), name)
	}
}

func TestProviderID_Valid(t *testing.T) {
	for _, id := range ProviderIDs() {
		assert.True(t, id.Valid(), id.String())
	}
	assert.False(t, ProviderID("openai").Valid())
}
