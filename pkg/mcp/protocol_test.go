package mcp

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequest(t *testing.T) {
	req, err := ParseRequest([]byte(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`))
	require.NoError(t, err)
	assert.Equal(t, "tools/list", req.Method)
	assert.Equal(t, "1", string(req.ID))
	assert.False(t, req.IsNotification())
}

func TestParseRequestRejectsBadVersion(t *testing.T) {
	_, err := ParseRequest([]byte(`{"jsonrpc":"1.0","id":1,"method":"ping"}`))
	assert.Error(t, err)
}

func TestParseRequestRejectsMissingMethod(t *testing.T) {
	_, err := ParseRequest([]byte(`{"jsonrpc":"2.0","id":1}`))
	assert.Error(t, err)
}

func TestParseRequestRejectsMalformedJSON(t *testing.T) {
	_, err := ParseRequest([]byte(`{"jsonrpc":`))
	assert.Error(t, err)
}

func TestIsNotification(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{`{"jsonrpc":"2.0","method":"notifications/initialized"}`, true},
		{`{"jsonrpc":"2.0","id":null,"method":"notifications/initialized"}`, true},
		{`{"jsonrpc":"2.0","id":7,"method":"ping"}`, false},
		{`{"jsonrpc":"2.0","id":"abc","method":"ping"}`, false},
		{`{"jsonrpc":"2.0","id":0,"method":"ping"}`, false},
	}

	for _, tt := range tests {
		req, err := ParseRequest([]byte(tt.raw))
		require.NoError(t, err)
		assert.Equal(t, tt.want, req.IsNotification(), tt.raw)
	}
}

func TestCreateResponseRoundTrip(t *testing.T) {
	resp := CreateResponse(json.RawMessage(`42`), map[string]string{"status": "ok"})

	data, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "2.0", decoded["jsonrpc"])
	assert.Equal(t, 42.0, decoded["id"])
	assert.Equal(t, map[string]interface{}{"status": "ok"}, decoded["result"])
	_, hasError := decoded["error"]
	assert.False(t, hasError)
}

func TestCreateErrorResponse(t *testing.T) {
	resp := CreateErrorResponse(json.RawMessage(`"req-1"`), ErrCodeMethodNotFound, "method not found: resources/list", nil)

	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeMethodNotFound, resp.Error.Code)
	assert.Nil(t, resp.Result)
}

func TestToolResultOmitsFalseIsError(t *testing.T) {
	data, err := json.Marshal(ToolResult{
		Content: []ContentBlock{{Type: "text", Text: "Tool echo: ping"}},
	})
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	_, present := decoded["isError"]
	assert.False(t, present)

	data, err = json.Marshal(ToolResult{
		Content: []ContentBlock{{Type: "text", Text: "Failed to get meeting data"}},
		IsError: true,
	})
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, true, decoded["isError"])
}
