package ollama

// GenerateOptions carries the sampling parameters for a generate call.
type GenerateOptions struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
}

// GenerateRequest is the request body for POST /api/generate.
type GenerateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options GenerateOptions `json:"options"`
}

// GenerateResponse is the subset of the generate response the client uses.
type GenerateResponse struct {
	Response string `json:"response"`
}
