// Package gemini provides the concrete LLM client implementations behind
// the generation.LLMClient interface: a Google Gemini API client for
// production and a deterministic mock client for offline testing.
package gemini
