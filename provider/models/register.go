package models

import (
	"github.com/casualjim/scribe/internal/registry"
)

// ProviderID identifies the vendor serving a model.
type ProviderID string

const (
	Google   ProviderID = "google"
	Mistral  ProviderID = "mistral"
	Cerebras ProviderID = "cerebras"
	Zhipu    ProviderID = "zhipu"
)

// ProviderIDs lists every supported provider.
func ProviderIDs() []ProviderID {
	return []ProviderID{Google, Mistral, Cerebras, Zhipu}
}

func (p ProviderID) String() string {
	return string(p)
}

// Valid reports whether p is a supported provider.
func (p ProviderID) Valid() bool {
	switch p {
	case Google, Mistral, Cerebras, Zhipu:
		return true
	}
	return false
}

// Binding is the concrete vendor and vendor model id a logical model name maps to.
type Binding struct {
	Provider ProviderID `json:"provider"`
	Model    string     `json:"model"`
}

// Default is the binding used for names that are not registered.
var Default = Binding{Provider: Google, Model: "gemini-2.5-flash"}

var Global = registry.New[Binding]()

func init() {
	for name, binding := range map[string]Binding{
		"gemini-2.5-flash":      {Provider: Google, Model: "gemini-2.5-flash"},
		"gemini-2.5-pro":        {Provider: Google, Model: "gemini-2.5-pro"},
		"gemini-2.0-flash":      {Provider: Google, Model: "gemini-2.0-flash"},
		"mistral-large-latest":  {Provider: Mistral, Model: "mistral-large-latest"},
		"mistral-medium-latest": {Provider: Mistral, Model: "mistral-medium-latest"},
		"mistral-small-latest":  {Provider: Mistral, Model: "mistral-small-latest"},
		"gpt-oss-120b":          {Provider: Cerebras, Model: "gpt-oss-120b"},
		"llama-3.3-70b":         {Provider: Cerebras, Model: "llama-3.3-70b"},
		"qwen-3-235b":           {Provider: Cerebras, Model: "qwen-3-235b-a22b-instruct-2507"},
		"glm-4.5-flash":         {Provider: Zhipu, Model: "glm-4.5-flash"},
		"glm-4.5":               {Provider: Zhipu, Model: "glm-4.5"},
		"glm-4.5-air":           {Provider: Zhipu, Model: "glm-4.5-air"},
	} {
		Register(name, binding)
	}
}

// Register adds or replaces the binding for a logical model name.
func Register(name string, binding Binding) {
	Global.Add(name, binding)
}

// Lookup returns the binding for name and whether it is registered.
func Lookup(name string) (Binding, bool) {
	return Global.Get(name)
}

// Resolve maps a logical model name to its binding. Unknown names resolve to Default;
// resolution never fails.
func Resolve(name string) Binding {
	if binding, ok := Global.Get(name); ok {
		return binding
	}
	return Default
}

// Names returns every registered logical model name, sorted.
func Names() []string {
	return Global.Names()
}

func Del(name string) {
	Global.Del(name)
}
