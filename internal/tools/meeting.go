package tools

import (
	"context"

	"github.com/meeting-baas/meeting-mcp/internal/baas"
)

// JoinMeetingTool deploys a notetaker bot into a meeting
type JoinMeetingTool struct {
	*BaseTool
	backend Backend
}

// NewJoinMeetingTool creates a new join meeting tool
func NewJoinMeetingTool(backend Backend) *JoinMeetingTool {
	return &JoinMeetingTool{
		BaseTool: NewBaseTool(
			"joinMeeting",
			"Deploy a bot that joins a meeting and records it",
			"Failed to join meeting",
			Schema{Fields: []Field{
				{Name: "meetingUrl", Type: FieldString, Required: true, Description: "URL of the meeting to join"},
				{Name: "botName", Type: FieldString, Required: true, Description: "Display name of the bot in the meeting"},
				{Name: "botImage", Type: FieldString, Description: "URL of the bot's avatar image"},
				{Name: "entryMessage", Type: FieldString, Description: "Chat message the bot posts when it joins"},
				{Name: "reserved", Type: FieldBoolean, Description: "Use a reserved bot slot instead of the shared pool"},
				{Name: "startTime", Type: FieldNumber, Description: "Unix timestamp to schedule the join for"},
				{Name: "speechToText", Type: FieldBoolean, Description: "Request transcription of the recording"},
				{Name: "extra", Type: FieldMap, Description: "Opaque metadata attached to the bot"},
			}},
		),
		backend: backend,
	}
}

// Execute deploys the bot and reports its ID
func (t *JoinMeetingTool) Execute(ctx context.Context, args map[string]interface{}) (*Result, error) {
	req := &baas.JoinRequest{
		MeetingURL:   stringArg(args, "meetingUrl"),
		BotName:      stringArg(args, "botName"),
		BotImage:     stringPtrArg(args, "botImage"),
		EntryMessage: stringPtrArg(args, "entryMessage"),
		Reserved:     boolArg(args, "reserved"),
		StartTime:    floatPtrArg(args, "startTime"),
		Extra:        mapArg(args, "extra"),
	}
	if boolArg(args, "speechToText") {
		req.SpeechToText = &baas.SpeechToText{Provider: "Default"}
	}

	botID, err := t.backend.CreateBot(ctx, req)
	if err != nil {
		return nil, err
	}
	return TextResult("Successfully joined meeting with bot ID: %s", botID), nil
}

// LeaveMeetingTool removes a bot from its meeting
type LeaveMeetingTool struct {
	*BaseTool
	backend Backend
}

// NewLeaveMeetingTool creates a new leave meeting tool
func NewLeaveMeetingTool(backend Backend) *LeaveMeetingTool {
	return &LeaveMeetingTool{
		BaseTool: NewBaseTool(
			"leaveMeeting",
			"Remove a bot from its meeting",
			"Failed to leave meeting",
			Schema{Fields: []Field{
				{Name: "botId", Type: FieldString, Required: true, Description: "ID of the bot to remove"},
			}},
		),
		backend: backend,
	}
}

// Execute removes the bot and reports the outcome
func (t *LeaveMeetingTool) Execute(ctx context.Context, args map[string]interface{}) (*Result, error) {
	ok, err := t.backend.LeaveBot(ctx, stringArg(args, "botId"))
	if err != nil {
		return nil, err
	}
	return StatusResult(ok, "Successfully left meeting", "Failed to leave meeting"), nil
}

// GetMeetingDataTool fetches all recorded data for a bot's meeting
type GetMeetingDataTool struct {
	*BaseTool
	backend Backend
}

// NewGetMeetingDataTool creates a new meeting data tool
func NewGetMeetingDataTool(backend Backend) *GetMeetingDataTool {
	return &GetMeetingDataTool{
		BaseTool: NewBaseTool(
			"getMeetingData",
			"Get recording, transcript, and metadata for a bot's meeting",
			"Failed to get meeting data",
			Schema{Fields: []Field{
				{Name: "botId", Type: FieldString, Required: true, Description: "ID of the bot whose meeting data to fetch"},
			}},
		),
		backend: backend,
	}
}

// Execute fetches the meeting data
func (t *GetMeetingDataTool) Execute(ctx context.Context, args map[string]interface{}) (*Result, error) {
	data, err := t.backend.GetMeetingData(ctx, stringArg(args, "botId"))
	if err != nil {
		return nil, err
	}
	return DataResult(data), nil
}

// DeleteMeetingDataTool deletes all data recorded for a bot's meeting
type DeleteMeetingDataTool struct {
	*BaseTool
	backend Backend
}

// NewDeleteMeetingDataTool creates a new delete meeting data tool
func NewDeleteMeetingDataTool(backend Backend) *DeleteMeetingDataTool {
	return &DeleteMeetingDataTool{
		BaseTool: NewBaseTool(
			"deleteMeetingData",
			"Permanently delete all data recorded for a bot's meeting",
			"Failed to delete meeting data",
			Schema{Fields: []Field{
				{Name: "botId", Type: FieldString, Required: true, Description: "ID of the bot whose meeting data to delete"},
			}},
		),
		backend: backend,
	}
}

// Execute deletes the meeting data and reports the outcome
func (t *DeleteMeetingDataTool) Execute(ctx context.Context, args map[string]interface{}) (*Result, error) {
	ok, err := t.backend.DeleteBotData(ctx, stringArg(args, "botId"))
	if err != nil {
		return nil, err
	}
	return StatusResult(ok, "Successfully deleted meeting data", "Failed to delete meeting data"), nil
}
