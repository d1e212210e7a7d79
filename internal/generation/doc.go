// Package generation implements the LLM-backed stages of the content
// pipeline: prompt improvement, concept planning, slide writing, and the
// two-tier quality gate. All stages talk to the model through the narrow
// LLMClient interface, which keeps them decoupled from the concrete Gemini
// integration and testable with canned structured replies.
package generation
