package tools

import (
	"context"

	"github.com/meeting-baas/meeting-mcp/internal/baas"
)

// BotsWithMetadataTool searches bots by filter criteria with pagination
type BotsWithMetadataTool struct {
	*BaseTool
	backend Backend
}

// NewBotsWithMetadataTool creates a new bot search tool
func NewBotsWithMetadataTool(backend Backend) *BotsWithMetadataTool {
	return &BotsWithMetadataTool{
		BaseTool: NewBaseTool(
			"botsWithMetadata",
			"Search deployed bots by name, meeting URL, speaker, or creation date, with cursor pagination",
			"Failed to list bots",
			Schema{Fields: []Field{
				{Name: "cursor", Type: FieldString, Description: "Pagination cursor from a previous page"},
				{Name: "limit", Type: FieldNumber, Description: "Maximum number of bots to return"},
				{Name: "botName", Type: FieldString, Description: "Filter by bot display name"},
				{Name: "meetingUrl", Type: FieldString, Description: "Filter by meeting URL"},
				{Name: "speakerName", Type: FieldString, Description: "Filter by a speaker heard in the meeting"},
				{Name: "createdAfter", Type: FieldString, Description: "Only bots created after this ISO timestamp"},
				{Name: "createdBefore", Type: FieldString, Description: "Only bots created before this ISO timestamp"},
				{Name: "filterByExtra", Type: FieldMap, Description: "Filter by opaque metadata key-value pairs"},
			}},
		),
		backend: backend,
	}
}

// Execute searches the bots
func (t *BotsWithMetadataTool) Execute(ctx context.Context, args map[string]interface{}) (*Result, error) {
	params := &baas.ListBotsParams{
		Cursor:        stringArg(args, "cursor"),
		Limit:         intArg(args, "limit"),
		BotName:       stringArg(args, "botName"),
		MeetingURL:    stringArg(args, "meetingUrl"),
		SpeakerName:   stringArg(args, "speakerName"),
		CreatedAfter:  stringArg(args, "createdAfter"),
		CreatedBefore: stringArg(args, "createdBefore"),
		FilterByExtra: mapArg(args, "filterByExtra"),
	}
	page, err := t.backend.ListBots(ctx, params)
	if err != nil {
		return nil, err
	}
	return DataResult(page), nil
}
