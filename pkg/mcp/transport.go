package mcp

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
)

// maxMessageSize bounds one inbound message; meeting transcripts flow the
// other way, so requests stay small.
const maxMessageSize = 4 * 1024 * 1024

// StdioTransport frames MCP messages as newline-delimited JSON over a
// reader/writer pair, stdin/stdout by default.
type StdioTransport struct {
	scanner *bufio.Scanner
	out     io.Writer
	mu      sync.Mutex
}

// NewStdioTransport creates a transport bound to stdin and stdout
func NewStdioTransport() *StdioTransport {
	return NewTransport(os.Stdin, os.Stdout)
}

// NewTransport creates a transport over an arbitrary reader and writer
func NewTransport(in io.Reader, out io.Writer) *StdioTransport {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxMessageSize)
	return &StdioTransport{
		scanner: scanner,
		out:     out,
	}
}

// ReadMessage reads the next JSON-RPC message. io.EOF signals a closed
// stream; a malformed line is returned as an error without consuming the
// stream.
func (t *StdioTransport) ReadMessage() (*JSONRPCRequest, error) {
	for t.scanner.Scan() {
		line := t.scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		return ParseRequest(line)
	}

	if err := t.scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read message: %w", err)
	}
	return nil, io.EOF
}

// WriteMessage writes one JSON-RPC response followed by a newline. Writes are
// serialized so concurrent invocations cannot interleave output.
func (t *StdioTransport) WriteMessage(resp *JSONRPCResponse) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to serialize response: %w", err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, err := t.out.Write(data); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}
	if _, err := t.out.Write([]byte{'\n'}); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}
