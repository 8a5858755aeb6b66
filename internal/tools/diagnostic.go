package tools

import "context"

// EchoTool is a no-op diagnostic tool that echoes its input. It never touches
// the backend.
type EchoTool struct {
	*BaseTool
}

// NewEchoTool creates a new echo tool
func NewEchoTool() *EchoTool {
	return &EchoTool{
		BaseTool: NewBaseTool(
			"echo",
			"Echo a message back, for connectivity diagnosis",
			"Failed to echo",
			Schema{Fields: []Field{
				{Name: "message", Type: FieldString, Required: true, Description: "Message to echo back"},
			}},
		),
	}
}

// Execute echoes the message
func (t *EchoTool) Execute(ctx context.Context, args map[string]interface{}) (*Result, error) {
	return TextResult("Tool echo: %s", stringArg(args, "message")), nil
}
