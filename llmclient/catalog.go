package llmclient

// ModelInfo describes a known model in the catalog.
type ModelInfo struct {
	ID                       string   `json:"id"`
	Provider                 string   `json:"provider"`
	DisplayName              string   `json:"display_name"`
	ContextWindow            int      `json:"context_window"`
	SupportsStructuredOutput bool     `json:"supports_structured_output"`
	Aliases                  []string `json:"aliases,omitempty"`
}

// Models is the built-in model catalog. Recovery targets need a model with
// structured-output support; the plain completion path can use any of them.
var Models = []ModelInfo{
	{
		ID: "moonshotai/kimi-k2-instruct", Provider: "groq", DisplayName: "Kimi K2 Instruct",
		ContextWindow: 131072, SupportsStructuredOutput: true,
		Aliases: []string{"kimi-k2"},
	},
	{
		ID: "openai/gpt-oss-120b", Provider: "groq", DisplayName: "GPT-OSS 120B",
		ContextWindow: 131072, SupportsStructuredOutput: true,
		Aliases: []string{"gpt-oss-120b"},
	},
	{
		ID: "openai/gpt-oss-20b", Provider: "groq", DisplayName: "GPT-OSS 20B",
		ContextWindow: 131072, SupportsStructuredOutput: true,
		Aliases: []string{"gpt-oss-20b"},
	},
	{
		ID: "meta-llama/llama-4-maverick-17b-128e-instruct", Provider: "groq", DisplayName: "Llama 4 Maverick",
		ContextWindow: 131072, SupportsStructuredOutput: true,
		Aliases: []string{"llama4-maverick"},
	},
	{
		ID: "meta-llama/llama-4-scout-17b-16e-instruct", Provider: "groq", DisplayName: "Llama 4 Scout",
		ContextWindow: 131072, SupportsStructuredOutput: true,
		Aliases: []string{"llama4-scout"},
	},
	{
		ID: "llama3-70b-8192", Provider: "groq", DisplayName: "Llama 3 70B",
		ContextWindow: 8192, SupportsStructuredOutput: false,
		Aliases: []string{"llama3-70b"},
	},
	{
		ID: "llama3-8b-8192", Provider: "groq", DisplayName: "Llama 3 8B",
		ContextWindow: 8192, SupportsStructuredOutput: false,
		Aliases: []string{"llama3-8b"},
	},
}

// GetModelInfo returns the catalog entry for a model ID or alias, or nil if
// unknown.
func GetModelInfo(modelID string) *ModelInfo {
	for i := range Models {
		if Models[i].ID == modelID {
			return &Models[i]
		}
		for _, alias := range Models[i].Aliases {
			if alias == modelID {
				return &Models[i]
			}
		}
	}
	return nil
}

// ListModels returns all known models, optionally filtered to those that
// support structured output.
func ListModels(structuredOnly bool) []ModelInfo {
	if !structuredOnly {
		result := make([]ModelInfo, len(Models))
		copy(result, Models)
		return result
	}
	var result []ModelInfo
	for _, m := range Models {
		if m.SupportsStructuredOutput {
			result = append(result, m)
		}
	}
	return result
}

// DefaultStructuredModel returns the first catalog model with structured
// output support, or nil if the catalog has none.
func DefaultStructuredModel() *ModelInfo {
	for i := range Models {
		if Models[i].SupportsStructuredOutput {
			return &Models[i]
		}
	}
	return nil
}
