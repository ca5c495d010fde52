package ollamawire

// Ptr returns a pointer to v, for the optional request fields below.
func Ptr[T any](v T) *T { return &v }

// Message is one turn of a chat conversation.
type Message struct {
	Role    string   `json:"role"` // "system", "user", "assistant" or "tool"
	Content string   `json:"content"`
	Images  []string `json:"images,omitempty"` // base64-encoded
}

// ModelOptions carries the common sampling and runtime knobs. Pointer fields
// distinguish "unset" from a deliberate zero.
type ModelOptions struct {
	Temperature   *float64 `json:"temperature,omitempty"`
	TopP          *float64 `json:"top_p,omitempty"`
	TopK          *int     `json:"top_k,omitempty"`
	Seed          *int     `json:"seed,omitempty"`
	NumPredict    *int     `json:"num_predict,omitempty"`
	NumCtx        *int     `json:"num_ctx,omitempty"`
	RepeatPenalty *float64 `json:"repeat_penalty,omitempty"`
	RepeatLastN   *int     `json:"repeat_last_n,omitempty"`
	Stop          []string `json:"stop,omitempty"`
}

// GenerateRequest is the body of a single-prompt generation call. Building
// and sending the HTTP request is the caller's business.
type GenerateRequest struct {
	Model     string        `json:"model"`
	Prompt    string        `json:"prompt"`
	Suffix    string        `json:"suffix,omitempty"`
	System    string        `json:"system,omitempty"`
	Template  string        `json:"template,omitempty"`
	Stream    bool          `json:"stream"`
	Raw       bool          `json:"raw,omitempty"`
	Images    []string      `json:"images,omitempty"` // base64-encoded
	Options   *ModelOptions `json:"options,omitempty"`
	Format    *FormatType   `json:"format,omitempty"`
	KeepAlive *KeepAlive    `json:"keep_alive,omitempty"`
}

// ChatRequest is the body of a chat completion call.
type ChatRequest struct {
	Model     string        `json:"model"`
	Messages  []Message     `json:"messages"`
	Stream    bool          `json:"stream"`
	Options   *ModelOptions `json:"options,omitempty"`
	Format    *FormatType   `json:"format,omitempty"`
	KeepAlive *KeepAlive    `json:"keep_alive,omitempty"`
}
