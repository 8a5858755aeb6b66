package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaValidateRequired(t *testing.T) {
	schema := Schema{Fields: []Field{
		{Name: "meetingUrl", Type: FieldString, Required: true},
		{Name: "botName", Type: FieldString, Required: true},
	}}

	err := schema.Validate(map[string]interface{}{"botName": "Bot"})
	require.Error(t, err)
	assert.Equal(t, "missing required parameter: meetingUrl", err.Error())

	err = schema.Validate(map[string]interface{}{
		"meetingUrl": "https://meet.example.com/abc",
		"botName":    "Bot",
	})
	assert.NoError(t, err)
}

func TestSchemaValidateFirstViolationWins(t *testing.T) {
	schema := Schema{Fields: []Field{
		{Name: "first", Type: FieldString, Required: true},
		{Name: "second", Type: FieldString, Required: true},
	}}

	err := schema.Validate(map[string]interface{}{})
	require.Error(t, err)
	assert.Equal(t, "missing required parameter: first", err.Error())
}

func TestSchemaValidateTypes(t *testing.T) {
	schema := Schema{Fields: []Field{
		{Name: "name", Type: FieldString},
		{Name: "limit", Type: FieldNumber},
		{Name: "reserved", Type: FieldBoolean},
		{Name: "extra", Type: FieldMap},
	}}

	tests := []struct {
		args    map[string]interface{}
		wantErr string
	}{
		{map[string]interface{}{"name": 42.0}, "invalid type for name: expected string"},
		{map[string]interface{}{"limit": "ten"}, "invalid type for limit: expected number"},
		{map[string]interface{}{"reserved": "yes"}, "invalid type for reserved: expected boolean"},
		{map[string]interface{}{"extra": "meta"}, "invalid type for extra: expected object"},
		{map[string]interface{}{"name": "ok", "limit": 10.0, "reserved": true, "extra": map[string]interface{}{}}, ""},
	}

	for _, tt := range tests {
		err := schema.Validate(tt.args)
		if tt.wantErr == "" {
			assert.NoError(t, err)
		} else {
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		}
	}
}

func TestSchemaValidateEnum(t *testing.T) {
	schema := Schema{Fields: []Field{
		{Name: "platform", Type: FieldEnum, Required: true, Enum: []string{"Google", "Microsoft"}},
	}}

	err := schema.Validate(map[string]interface{}{"platform": "Yahoo"})
	require.Error(t, err)
	assert.Equal(t, "invalid value for platform: must be one of [Google, Microsoft]", err.Error())

	err = schema.Validate(map[string]interface{}{"platform": 3.0})
	require.Error(t, err)
	assert.Equal(t, "invalid type for platform: expected string", err.Error())

	assert.NoError(t, schema.Validate(map[string]interface{}{"platform": "Google"}))
}

func TestSchemaValidateIgnoresUnknownArguments(t *testing.T) {
	schema := Schema{Fields: []Field{
		{Name: "botId", Type: FieldString, Required: true},
	}}

	err := schema.Validate(map[string]interface{}{
		"botId":      "bot-123",
		"unexpected": 99,
	})
	assert.NoError(t, err)
}

func TestJSONSchemaRendering(t *testing.T) {
	schema := Schema{Fields: []Field{
		{Name: "calendarId", Type: FieldString, Required: true, Description: "UUID of the calendar"},
		{Name: "status", Type: FieldEnum, Enum: []string{"upcoming", "past", "all"}},
		{Name: "limit", Type: FieldNumber},
		{Name: "extra", Type: FieldMap},
	}}

	rendered := schema.JSONSchema()
	assert.Equal(t, "object", rendered["type"])

	properties, ok := rendered["properties"].(map[string]interface{})
	require.True(t, ok)

	calendarID := properties["calendarId"].(map[string]interface{})
	assert.Equal(t, "string", calendarID["type"])
	assert.Equal(t, "UUID of the calendar", calendarID["description"])

	status := properties["status"].(map[string]interface{})
	assert.Equal(t, "string", status["type"])
	assert.Equal(t, []interface{}{"upcoming", "past", "all"}, status["enum"])

	extra := properties["extra"].(map[string]interface{})
	assert.Equal(t, "object", extra["type"])
	assert.Equal(t, true, extra["additionalProperties"])

	assert.Equal(t, []interface{}{"calendarId"}, rendered["required"])
}

func TestJSONSchemaOmitsEmptyRequired(t *testing.T) {
	rendered := Schema{}.JSONSchema()
	_, present := rendered["required"]
	assert.False(t, present)
}
