/*
Package openai implements the provider.Provider interface for chat completion APIs that
speak the OpenAI Server-Sent-Events streaming protocol. Mistral, Cerebras and Zhipu
(BigModel) are all served by the same Provider; only the endpoint and the API key differ.

# Request Shape

Every request is a POST with a bearer token and a JSON body:

	{
	  "model": "mistral-large-latest",
	  "messages": [
	    {"role": "system", "content": "<system prompt>"},
	    {"role": "user", "content": "Write an article about tidal power"}
	  ],
	  "stream": true,
	  "temperature": 0.8,
	  "max_tokens": 8000
	}

The system prompt is always the first message; the conversation follows verbatim.

# Stream Decoding

The response body is read by a Decoder:

  - bytes are buffered until a full line is available, so events split across reads
    are reassembled
  - only "data: " lines are considered, everything else is ignored
  - "data: [DONE]" ends the stream normally
  - each payload is decoded as a chat completion chunk and choices[0].delta.content
    becomes the next fragment
  - payloads that fail to decode, or carry no content, are skipped

# Errors

A non-success status is returned from Stream as a *provider.APIError holding the status
code and the response body. A response without a body yields provider.ErrNoResponseBody.
Read errors after the stream started end the sequence and are reported by the stream.

Example:

	p := openai.Mistral(os.Getenv("MISTRAL_API_KEY"))
	stream, err := p.Stream(ctx, provider.Request{
		Model:        "mistral-large-latest",
		Instructions: prompt.Build(nil, nil),
		Turns:        []messages.Turn{messages.User("Write about tides")},
	})
*/
package openai
