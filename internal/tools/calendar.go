package tools

import (
	"context"

	"github.com/meeting-baas/meeting-mcp/internal/baas"
)

// calendarPlatforms are the calendar providers Meeting BaaS can connect to
var calendarPlatforms = []string{"Google", "Microsoft"}

func calendarRequestFromArgs(args map[string]interface{}) *baas.CalendarRequest {
	return &baas.CalendarRequest{
		OAuthClientID:     stringArg(args, "oauthClientId"),
		OAuthClientSecret: stringArg(args, "oauthClientSecret"),
		OAuthRefreshToken: stringArg(args, "oauthRefreshToken"),
		Platform:          stringArg(args, "platform"),
		RawCalendarID:     stringPtrArg(args, "rawCalendarId"),
	}
}

// CreateCalendarTool creates a new calendar connection
type CreateCalendarTool struct {
	*BaseTool
	backend Backend
}

// NewCreateCalendarTool creates a new create calendar tool
func NewCreateCalendarTool(backend Backend) *CreateCalendarTool {
	return &CreateCalendarTool{
		BaseTool: NewBaseTool(
			"createCalendar",
			"Connect a Google or Microsoft calendar using OAuth credentials",
			"Failed to create calendar",
			Schema{Fields: []Field{
				{Name: "oauthClientId", Type: FieldString, Required: true, Description: "OAuth client ID"},
				{Name: "oauthClientSecret", Type: FieldString, Required: true, Description: "OAuth client secret"},
				{Name: "oauthRefreshToken", Type: FieldString, Required: true, Description: "OAuth refresh token"},
				{Name: "platform", Type: FieldEnum, Required: true, Enum: calendarPlatforms, Description: "Calendar provider"},
				{Name: "rawCalendarId", Type: FieldString, Description: "Provider calendar ID, defaults to the primary calendar"},
			}},
		),
		backend: backend,
	}
}

// Execute creates the calendar connection
func (t *CreateCalendarTool) Execute(ctx context.Context, args map[string]interface{}) (*Result, error) {
	calendar, err := t.backend.CreateCalendar(ctx, calendarRequestFromArgs(args))
	if err != nil {
		return nil, err
	}
	return DataResult(calendar), nil
}

// ListCalendarsTool lists all calendar connections
type ListCalendarsTool struct {
	*BaseTool
	backend Backend
}

// NewListCalendarsTool creates a new list calendars tool
func NewListCalendarsTool(backend Backend) *ListCalendarsTool {
	return &ListCalendarsTool{
		BaseTool: NewBaseTool(
			"listCalendars",
			"List all connected calendars",
			"Failed to list calendars",
			Schema{},
		),
		backend: backend,
	}
}

// Execute lists the calendar connections
func (t *ListCalendarsTool) Execute(ctx context.Context, args map[string]interface{}) (*Result, error) {
	calendars, err := t.backend.ListCalendars(ctx)
	if err != nil {
		return nil, err
	}
	return DataResult(calendars), nil
}

// GetCalendarTool fetches one calendar connection
type GetCalendarTool struct {
	*BaseTool
	backend Backend
}

// NewGetCalendarTool creates a new get calendar tool
func NewGetCalendarTool(backend Backend) *GetCalendarTool {
	return &GetCalendarTool{
		BaseTool: NewBaseTool(
			"getCalendar",
			"Get details of a connected calendar",
			"Failed to get calendar",
			Schema{Fields: []Field{
				{Name: "calendarId", Type: FieldString, Required: true, Description: "UUID of the calendar connection"},
			}},
		),
		backend: backend,
	}
}

// Execute fetches the calendar
func (t *GetCalendarTool) Execute(ctx context.Context, args map[string]interface{}) (*Result, error) {
	calendar, err := t.backend.GetCalendar(ctx, stringArg(args, "calendarId"))
	if err != nil {
		return nil, err
	}
	return DataResult(calendar), nil
}

// UpdateCalendarTool updates a calendar connection's OAuth credentials
type UpdateCalendarTool struct {
	*BaseTool
	backend Backend
}

// NewUpdateCalendarTool creates a new update calendar tool
func NewUpdateCalendarTool(backend Backend) *UpdateCalendarTool {
	return &UpdateCalendarTool{
		BaseTool: NewBaseTool(
			"updateCalendar",
			"Update the OAuth credentials of a connected calendar",
			"Failed to update calendar",
			Schema{Fields: []Field{
				{Name: "calendarId", Type: FieldString, Required: true, Description: "UUID of the calendar connection"},
				{Name: "oauthClientId", Type: FieldString, Required: true, Description: "OAuth client ID"},
				{Name: "oauthClientSecret", Type: FieldString, Required: true, Description: "OAuth client secret"},
				{Name: "oauthRefreshToken", Type: FieldString, Required: true, Description: "OAuth refresh token"},
				{Name: "platform", Type: FieldEnum, Required: true, Enum: calendarPlatforms, Description: "Calendar provider"},
			}},
		),
		backend: backend,
	}
}

// Execute updates the calendar
func (t *UpdateCalendarTool) Execute(ctx context.Context, args map[string]interface{}) (*Result, error) {
	calendar, err := t.backend.UpdateCalendar(ctx, stringArg(args, "calendarId"), calendarRequestFromArgs(args))
	if err != nil {
		return nil, err
	}
	return DataResult(calendar), nil
}

// DeleteCalendarTool removes a calendar connection
type DeleteCalendarTool struct {
	*BaseTool
	backend Backend
}

// NewDeleteCalendarTool creates a new delete calendar tool
func NewDeleteCalendarTool(backend Backend) *DeleteCalendarTool {
	return &DeleteCalendarTool{
		BaseTool: NewBaseTool(
			"deleteCalendar",
			"Disconnect a calendar and remove its scheduled recordings",
			"Failed to delete calendar",
			Schema{Fields: []Field{
				{Name: "calendarId", Type: FieldString, Required: true, Description: "UUID of the calendar connection"},
			}},
		),
		backend: backend,
	}
}

// Execute deletes the calendar and reports the outcome
func (t *DeleteCalendarTool) Execute(ctx context.Context, args map[string]interface{}) (*Result, error) {
	ok, err := t.backend.DeleteCalendar(ctx, stringArg(args, "calendarId"))
	if err != nil {
		return nil, err
	}
	return StatusResult(ok, "Successfully deleted calendar", "Failed to delete calendar"), nil
}

// ResyncAllCalendarsTool forces a refresh of every connected calendar
type ResyncAllCalendarsTool struct {
	*BaseTool
	backend Backend
}

// NewResyncAllCalendarsTool creates a new resync tool
func NewResyncAllCalendarsTool(backend Backend) *ResyncAllCalendarsTool {
	return &ResyncAllCalendarsTool{
		BaseTool: NewBaseTool(
			"resyncAllCalendars",
			"Force a refresh of all connected calendars",
			"Failed to resync calendars",
			Schema{},
		),
		backend: backend,
	}
}

// Execute resyncs the calendars
func (t *ResyncAllCalendarsTool) Execute(ctx context.Context, args map[string]interface{}) (*Result, error) {
	report, err := t.backend.ResyncAllCalendars(ctx)
	if err != nil {
		return nil, err
	}
	return DataResult(report), nil
}

// ListEventsTool lists events on a connected calendar
type ListEventsTool struct {
	*BaseTool
	backend Backend
}

// NewListEventsTool creates a new list events tool
func NewListEventsTool(backend Backend) *ListEventsTool {
	return &ListEventsTool{
		BaseTool: NewBaseTool(
			"listEvents",
			"List events on a connected calendar",
			"Failed to list events",
			Schema{Fields: []Field{
				{Name: "calendarId", Type: FieldString, Required: true, Description: "UUID of the calendar connection"},
				{Name: "status", Type: FieldEnum, Enum: []string{"upcoming", "past", "all"}, Description: "Filter events by time window"},
				{Name: "limit", Type: FieldNumber, Description: "Maximum number of events to return"},
				{Name: "cursor", Type: FieldString, Description: "Pagination cursor from a previous page"},
			}},
		),
		backend: backend,
	}
}

// Execute lists the calendar events
func (t *ListEventsTool) Execute(ctx context.Context, args map[string]interface{}) (*Result, error) {
	params := &baas.ListEventsParams{
		Status: stringArg(args, "status"),
		Limit:  intArg(args, "limit"),
		Cursor: stringArg(args, "cursor"),
	}
	events, err := t.backend.ListEvents(ctx, stringArg(args, "calendarId"), params)
	if err != nil {
		return nil, err
	}
	return DataResult(events), nil
}

// ScheduleRecordEventTool schedules an automatic recording for a calendar event
type ScheduleRecordEventTool struct {
	*BaseTool
	backend Backend
}

// NewScheduleRecordEventTool creates a new schedule recording tool
func NewScheduleRecordEventTool(backend Backend) *ScheduleRecordEventTool {
	return &ScheduleRecordEventTool{
		BaseTool: NewBaseTool(
			"scheduleRecordEvent",
			"Schedule a bot to automatically record a calendar event",
			"Failed to schedule recording",
			Schema{Fields: []Field{
				{Name: "eventUuid", Type: FieldString, Required: true, Description: "UUID of the calendar event"},
				{Name: "botName", Type: FieldString, Description: "Display name of the recording bot"},
				{Name: "allOccurrences", Type: FieldBoolean, Description: "Apply to every occurrence of a recurring event"},
				{Name: "extra", Type: FieldMap, Description: "Opaque metadata attached to the recording bot"},
			}},
		),
		backend: backend,
	}
}

// Execute schedules the recording
func (t *ScheduleRecordEventTool) Execute(ctx context.Context, args map[string]interface{}) (*Result, error) {
	req := &baas.ScheduleRequest{
		BotName:        stringPtrArg(args, "botName"),
		AllOccurrences: boolArg(args, "allOccurrences"),
		Extra:          mapArg(args, "extra"),
	}
	events, err := t.backend.ScheduleRecordEvent(ctx, stringArg(args, "eventUuid"), req)
	if err != nil {
		return nil, err
	}
	return DataResult(events), nil
}

// UnscheduleRecordEventTool removes a scheduled recording from a calendar event
type UnscheduleRecordEventTool struct {
	*BaseTool
	backend Backend
}

// NewUnscheduleRecordEventTool creates a new unschedule recording tool
func NewUnscheduleRecordEventTool(backend Backend) *UnscheduleRecordEventTool {
	return &UnscheduleRecordEventTool{
		BaseTool: NewBaseTool(
			"unscheduleRecordEvent",
			"Cancel a scheduled recording for a calendar event",
			"Failed to unschedule recording",
			Schema{Fields: []Field{
				{Name: "eventUuid", Type: FieldString, Required: true, Description: "UUID of the calendar event"},
				{Name: "allOccurrences", Type: FieldBoolean, Description: "Apply to every occurrence of a recurring event"},
			}},
		),
		backend: backend,
	}
}

// Execute cancels the scheduled recording
func (t *UnscheduleRecordEventTool) Execute(ctx context.Context, args map[string]interface{}) (*Result, error) {
	events, err := t.backend.UnscheduleRecordEvent(ctx, stringArg(args, "eventUuid"), boolArg(args, "allOccurrences"))
	if err != nil {
		return nil, err
	}
	return DataResult(events), nil
}
