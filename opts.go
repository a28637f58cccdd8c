package scribe

import (
	"net/http"

	"github.com/casualjim/scribe/prompt"
	"github.com/fogfish/opts"
)

var (
	// WithModel sets the logical model name, see package provider/models.
	WithModel = opts.ForName[Aggregator, string]("model")

	// WithCredentials sets the initial API keys.
	WithCredentials = opts.ForName[Aggregator, Credentials]("credentials")

	// WithMemories sets the initial memory snapshot.
	WithMemories = opts.ForName[Aggregator, []prompt.Memory]("memories")

	// WithWritingExamples sets the initial writing example snapshot.
	WithWritingExamples = opts.ForName[Aggregator, []prompt.WritingExample]("examples")

	// WithHTTPClient sets the HTTP client every provider uses.
	WithHTTPClient = opts.ForName[Aggregator, *http.Client]("httpClient")

	// WithProviderFactory replaces how providers are constructed.
	WithProviderFactory = opts.ForName[Aggregator, ProviderFactory]("factory")
)
