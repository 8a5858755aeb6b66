package tools

import (
	"context"

	"github.com/meeting-baas/meeting-mcp/internal/baas"
)

// Tool is the interface that all tools must implement. Execute receives
// arguments that already passed schema validation and returns a plain result
// or an error; envelope formatting is the dispatcher's job.
type Tool interface {
	Name() string
	Description() string
	Schema() Schema
	FailureText() string
	Execute(ctx context.Context, args map[string]interface{}) (*Result, error)
}

// Backend is the Meeting BaaS surface consumed by tools. It is implemented by
// *baas.Client and by fakes in tests.
type Backend interface {
	CreateBot(ctx context.Context, req *baas.JoinRequest) (string, error)
	LeaveBot(ctx context.Context, botID string) (bool, error)
	GetMeetingData(ctx context.Context, botID string) (map[string]interface{}, error)
	DeleteBotData(ctx context.Context, botID string) (bool, error)
	CreateCalendar(ctx context.Context, req *baas.CalendarRequest) (*baas.Calendar, error)
	ListCalendars(ctx context.Context) ([]baas.Calendar, error)
	GetCalendar(ctx context.Context, calendarID string) (*baas.Calendar, error)
	UpdateCalendar(ctx context.Context, calendarID string, req *baas.CalendarRequest) (*baas.Calendar, error)
	DeleteCalendar(ctx context.Context, calendarID string) (bool, error)
	ResyncAllCalendars(ctx context.Context) (map[string]interface{}, error)
	ListBots(ctx context.Context, params *baas.ListBotsParams) (map[string]interface{}, error)
	ListEvents(ctx context.Context, calendarID string, params *baas.ListEventsParams) ([]baas.CalendarEvent, error)
	ScheduleRecordEvent(ctx context.Context, eventUUID string, req *baas.ScheduleRequest) ([]baas.CalendarEvent, error)
	UnscheduleRecordEvent(ctx context.Context, eventUUID string, allOccurrences bool) ([]baas.CalendarEvent, error)
}
