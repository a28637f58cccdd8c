package openai

import (
	"github.com/alphadose/haxmap"
	"github.com/fogfish/opts"
)

// Endpoints of the OpenAI-compatible chat completion APIs.
const (
	MistralEndpoint  = "https://api.mistral.ai/v1/chat/completions"
	CerebrasEndpoint = "https://api.cerebras.ai/v1/chat/completions"
	ZhipuEndpoint    = "https://open.bigmodel.cn/api/paas/v4/chat/completions"
)

var endpoints = haxmap.New[string, string]()

func init() {
	RegisterEndpoint("mistral", MistralEndpoint)
	RegisterEndpoint("cerebras", CerebrasEndpoint)
	RegisterEndpoint("zhipu", ZhipuEndpoint)
}

// RegisterEndpoint adds or replaces the chat completion URL for a provider name.
func RegisterEndpoint(name, url string) {
	endpoints.Set(name, url)
}

// Endpoint returns the chat completion URL registered for a provider name.
func Endpoint(name string) (string, bool) {
	return endpoints.Get(name)
}

// Mistral creates a provider for the Mistral API.
func Mistral(apiKey string, options ...opts.Option[Provider]) *Provider {
	return New("mistral", MistralEndpoint, apiKey, options...)
}

// Cerebras creates a provider for the Cerebras inference API.
func Cerebras(apiKey string, options ...opts.Option[Provider]) *Provider {
	return New("cerebras", CerebrasEndpoint, apiKey, options...)
}

// Zhipu creates a provider for the Zhipu BigModel API.
func Zhipu(apiKey string, options ...opts.Option[Provider]) *Provider {
	return New("zhipu", ZhipuEndpoint, apiKey, options...)
}
