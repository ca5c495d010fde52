package ollamawire

// Package ollamawire provides:
//
// - Wire encoding for the response-format field of Ollama-compatible request bodies ("json" vs. an embedded JSON Schema)
// - Wire encoding for the keep_alive field (-1 / 0 sentinels, "<n><unit>" duration strings)
// - Schema documents generated from Go types or parsed from JSON/YAML, with every local $ref inlined
// - A stable error model via Issues (JSON Pointer, code, message)
//
// Design policy:
// - Keep the whole public surface in the root package; one concern per file.
// - Values are immutable after construction and safe to share across goroutines.
// - Transport is the caller's business: this package only produces and consumes wire values.
//
// Typical usage:
//
//  req := ollamawire.GenerateRequest{
//      Model:     "llama3.2",
//      Prompt:    "Describe the weather in Tokyo.",
//      Format:    ollamawire.Ptr(ollamawire.FormatStructuredFor[Weather]()),
//      KeepAlive: ollamawire.Ptr(ollamawire.KeepAliveUntil(30, ollamawire.Minutes)),
//  }
//  body, err := json.Marshal(req)
//
