package models

// InlineImage is a base64-encoded image attached to a mockup request.
type InlineImage struct {
	Data     string `json:"data" binding:"required"`
	MimeType string `json:"mime_type" binding:"required"`
}

// MockupRequest is the body for POST /assistant/mockup
type MockupRequest struct {
	Type             string       `json:"type" binding:"required"`
	Flavour          string       `json:"flavour" binding:"required"`
	Filling          string       `json:"filling"`
	Frosting         string       `json:"frosting"`
	Message          string       `json:"message"`
	InspirationImage *InlineImage `json:"inspiration_image"`
}

// ExplainRequest is the body for POST /assistant/explain
type ExplainRequest struct {
	Term     string `json:"term" binding:"required"`
	Category string `json:"category" binding:"required"`
}

// ChatRequest is the body for POST /chat
type ChatRequest struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"sessionId"`
}

// ChatResponse carries the assistant's reply.
type ChatResponse struct {
	Output string `json:"output"`
}
