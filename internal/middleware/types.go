package middleware

import "context"

// Request is one inbound invocation flowing through the chain
type Request struct {
	Method    string                 `json:"method"`
	ToolName  string                 `json:"toolName,omitempty"`
	Arguments map[string]interface{} `json:"arguments,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// Response is the uniform envelope every invocation resolves to
type Response struct {
	Content []ContentBlock `json:"content,omitempty"`
	IsError bool           `json:"isError,omitempty"`
}

// ContentBlock is one block of response content
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// TextResponse builds a single-text-block envelope
func TextResponse(text string) *Response {
	return &Response{
		Content: []ContentBlock{{Type: "text", Text: text}},
	}
}

// ErrorResponse builds a single-text-block error envelope
func ErrorResponse(text string) *Response {
	return &Response{
		Content: []ContentBlock{{Type: "text", Text: text}},
		IsError: true,
	}
}

// Handler is a function that handles a request
type Handler func(ctx context.Context) (*Response, error)

// Middleware is the interface that all middleware must implement
type Middleware interface {
	Name() string
	Order() int
	Enabled() bool
	Execute(ctx context.Context, req *Request, next Handler) (*Response, error)
}
