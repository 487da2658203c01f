// Package ollama provides a minimal client for the Ollama generate endpoint.
//
// The client treats the model as an opaque text-in/text-out service: it sends
// a prompt to POST /api/generate with streaming disabled and returns the
// response text. Generation options are pinned to a low temperature so that
// repeated classifications of the same message stay consistent.
package ollama
