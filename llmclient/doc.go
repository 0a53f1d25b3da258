// Package llmclient is a narrow HTTP client for OpenAI-compatible chat
// completion endpoints, used as the synthesis backend for fallback-value
// recovery.
//
// # Architecture
//
// The package follows a three-layer structure:
//
//   - Wire types: ChatMessage, ChatResponse, ResponseFormat (types.go)
//   - Transport: Client with bearer auth, middleware, and a typed error
//     hierarchy (client.go, errors.go)
//   - Typed surface: CompleteTyped derives a schema for T, requests
//     structured output, and strictly deserializes the result
//
// # Quick Start
//
// Plain text completion:
//
//	client, _ := llmclient.NewClientFromEnv()
//	text, err := client.Complete(ctx, llmclient.Request{
//	    Model:  "moonshotai/kimi-k2-instruct",
//	    Prompt: "Say hello",
//	})
//
// Structured completion into a Go type:
//
//	type Product struct {
//	    ID    int     `json:"id"`
//	    Name  string  `json:"name"`
//	    Price float64 `json:"price"`
//	}
//
//	product, err := llmclient.CompleteTyped[Product](ctx, client, llmclient.Request{
//	    Prompt: "Generate a plausible product",
//	})
//
// # Errors
//
// A missing API key surfaces as *ConfigurationError before any network
// attempt. Everything that goes wrong after that (transport failure,
// non-2xx status, empty choice list, non-conformant output) belongs to a
// single backend failure category, tested with IsBackendError. Callers
// branch on the category, not on individual members.
//
// # Credentials
//
// API keys come from a CredentialSource. EnvCredentials reads the
// AIFALLBACK_API_KEY environment variable; tests use StaticCredentials so
// no test mutates process state.
package llmclient
