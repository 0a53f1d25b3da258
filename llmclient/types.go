package llmclient

import "github.com/martinemde/aifallback/schema"

// Role identifies who produced a message in a conversation.
type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

// ChatMessage is one entry of the wire-level messages array.
type ChatMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// JSONSchemaSpec names and carries the schema body of a structured-output
// declaration.
type JSONSchemaSpec struct {
	Name   string         `json:"name"`
	Schema map[string]any `json:"schema"`
}

// ResponseFormat declares the structured-output mode on a chat request.
type ResponseFormat struct {
	Type       string          `json:"type"` // "json_schema"
	JSONSchema *JSONSchemaSpec `json:"json_schema,omitempty"`
}

// chatRequest is the wire-level request body for POST /chat/completions.
type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []ChatMessage   `json:"messages"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
}

// ChatChoice is one completion alternative in the response envelope.
type ChatChoice struct {
	Index        int         `json:"index"`
	Message      ChatMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

// Usage tracks token consumption reported by the backend.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ChatResponse is the response envelope from the completion endpoint. Only
// choices[0].message.content is consumed by callers.
type ChatResponse struct {
	ID      string       `json:"id"`
	Object  string       `json:"object"`
	Created int64        `json:"created"`
	Model   string       `json:"model"`
	Choices []ChatChoice `json:"choices"`
	Usage   Usage        `json:"usage"`
}

// Text returns the content of the first completion choice.
func (r ChatResponse) Text() string {
	if len(r.Choices) == 0 {
		return ""
	}
	return r.Choices[0].Message.Content
}

// Request is the client-facing input for a single completion call.
type Request struct {
	Model  string
	System string
	Prompt string

	// Schema, when set, switches the request into structured-output mode and
	// becomes the contract the response content is validated against.
	Schema *schema.Definition
}
