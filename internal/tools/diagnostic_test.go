package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEchoPrefixesMessage(t *testing.T) {
	tool := NewEchoTool()

	result, err := tool.Execute(context.Background(), map[string]interface{}{"message": "ping"})
	require.NoError(t, err)
	assert.Equal(t, "Tool echo: ping", result.Text)
}

func TestEchoRequiresMessage(t *testing.T) {
	tool := NewEchoTool()

	err := tool.Schema().Validate(map[string]interface{}{})
	require.Error(t, err)
	assert.Equal(t, "missing required parameter: message", err.Error())
}
