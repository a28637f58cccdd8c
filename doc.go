/*
Package scribe streams generated articles from several large language model providers
through a single, provider-agnostic interface.

The Aggregator is the one entry point the host application needs. It resolves the
configured logical model to a provider, checks that the provider's API key is set, builds
the system prompt from the style guide and the author's memories and writing examples,
and hands back a pull-based stream of text fragments.

# Basic Usage

	agg, err := scribe.New(
		scribe.WithModel("mistral-large-latest"),
		scribe.WithCredentials(scribe.Credentials{
			models.Mistral: os.Getenv("MISTRAL_API_KEY"),
		}),
	)
	if err != nil {
		return err
	}

	stream, err := agg.Generate(ctx, []messages.Turn{
		messages.User("Write an article about tidal power"),
	})
	if err != nil {
		// a *provider.CredentialError or *provider.APIError
		return err
	}
	defer stream.Close()

	for stream.Next() {
		fmt.Print(stream.Current())
	}
	if err := stream.Err(); err != nil {
		return err
	}

# Configuration

Credentials, the model, memories and writing examples can be replaced at any time with
the Update methods. Each Generate call reads the configuration once, when it starts:
an update never affects a stream that is already open, only the calls that follow.

# Providers

  - google: Gemini through the genai SDK (package provider/gemini)
  - mistral, cerebras, zhipu: OpenAI-compatible SSE streams (package provider/openai)

Logical model names are mapped by package provider/models. Names that are not registered
resolve to the default Gemini binding.

# Resource Management

Every call opens exactly one network stream, with no retry and no fallback to another
provider. The connection is released when the stream is exhausted, fails, is closed, or
the consumer breaks out of Fragments.
*/
package scribe
