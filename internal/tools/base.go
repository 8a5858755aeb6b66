package tools

import "fmt"

// Result is the value returned by a successful handler. Exactly one of Data
// or Text is set: Data is serialized to JSON by the dispatcher, Text is used
// verbatim as the response sentence.
type Result struct {
	Data interface{}
	Text string
}

// DataResult wraps a structured backend payload
func DataResult(data interface{}) *Result {
	return &Result{Data: data}
}

// TextResult formats a human-readable response sentence
func TextResult(format string, args ...interface{}) *Result {
	return &Result{Text: fmt.Sprintf(format, args...)}
}

// StatusResult renders a boolean backend outcome as a fixed sentence. A false
// status reads as a failure sentence but is not an error envelope; only a
// rejected backend call is.
func StatusResult(ok bool, success, failure string) *Result {
	if ok {
		return &Result{Text: success}
	}
	return &Result{Text: failure}
}

// BaseTool provides the static identity shared by all tools: name,
// description, argument schema, and the fixed sentence reported when the
// backend call fails.
type BaseTool struct {
	name        string
	description string
	failureText string
	schema      Schema
}

// NewBaseTool creates a new base tool
func NewBaseTool(name, description, failureText string, schema Schema) *BaseTool {
	return &BaseTool{
		name:        name,
		description: description,
		failureText: failureText,
		schema:      schema,
	}
}

// Name returns the tool name
func (b *BaseTool) Name() string {
	return b.name
}

// Description returns the tool description
func (b *BaseTool) Description() string {
	return b.description
}

// FailureText returns the sentence reported when the handler fails
func (b *BaseTool) FailureText() string {
	return b.failureText
}

// Schema returns the declarative argument schema
func (b *BaseTool) Schema() Schema {
	return b.schema
}
