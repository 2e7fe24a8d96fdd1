package rag

import "biopubs-ai/internal/llm"

// ChatRequest represents a retrieval-augmented chat request.
type ChatRequest struct {
	// Messages is the conversation so far. It must contain at least one
	// user-authored message; the most recent one is the retrieval query.
	Messages []llm.Message `json:"messages"`
	// TopK optionally overrides how many publications are retrieved for
	// context. Zero selects the configured default.
	TopK int `json:"top_k,omitempty"`
}

// Source identifies a publication cited in a chat answer.
type Source struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Link  string `json:"link"`
}

// ChatResponse represents the answer to a retrieval-augmented chat request.
type ChatResponse struct {
	// Answer is the generated reply.
	Answer string `json:"response"`
	// Sources lists the cited publications in retrieval ranking order.
	Sources []Source `json:"sources"`
}
