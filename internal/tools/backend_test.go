package tools

import (
	"context"
	"fmt"

	"github.com/meeting-baas/meeting-mcp/internal/baas"
	"github.com/meeting-baas/meeting-mcp/internal/config"
	"github.com/meeting-baas/meeting-mcp/internal/logging"
)

func testLogger() *logging.Logger {
	return logging.NewLogger(&config.LoggingConfig{Level: "error", Format: "json"})
}

// fakeBackend implements Backend with per-method stubs and records every call
// so tests can assert the backend was, or was not, reached.
type fakeBackend struct {
	calls []string

	createBotFn          func(ctx context.Context, req *baas.JoinRequest) (string, error)
	leaveBotFn           func(ctx context.Context, botID string) (bool, error)
	getMeetingDataFn     func(ctx context.Context, botID string) (map[string]interface{}, error)
	deleteBotDataFn      func(ctx context.Context, botID string) (bool, error)
	createCalendarFn     func(ctx context.Context, req *baas.CalendarRequest) (*baas.Calendar, error)
	listCalendarsFn      func(ctx context.Context) ([]baas.Calendar, error)
	getCalendarFn        func(ctx context.Context, calendarID string) (*baas.Calendar, error)
	updateCalendarFn     func(ctx context.Context, calendarID string, req *baas.CalendarRequest) (*baas.Calendar, error)
	deleteCalendarFn     func(ctx context.Context, calendarID string) (bool, error)
	resyncAllCalendarsFn func(ctx context.Context) (map[string]interface{}, error)
	listBotsFn           func(ctx context.Context, params *baas.ListBotsParams) (map[string]interface{}, error)
	listEventsFn         func(ctx context.Context, calendarID string, params *baas.ListEventsParams) ([]baas.CalendarEvent, error)
	scheduleFn           func(ctx context.Context, eventUUID string, req *baas.ScheduleRequest) ([]baas.CalendarEvent, error)
	unscheduleFn         func(ctx context.Context, eventUUID string, allOccurrences bool) ([]baas.CalendarEvent, error)
}

func (f *fakeBackend) record(name string) {
	f.calls = append(f.calls, name)
}

func (f *fakeBackend) CreateBot(ctx context.Context, req *baas.JoinRequest) (string, error) {
	f.record("CreateBot")
	if f.createBotFn == nil {
		return "", fmt.Errorf("unexpected call: CreateBot")
	}
	return f.createBotFn(ctx, req)
}

func (f *fakeBackend) LeaveBot(ctx context.Context, botID string) (bool, error) {
	f.record("LeaveBot")
	if f.leaveBotFn == nil {
		return false, fmt.Errorf("unexpected call: LeaveBot")
	}
	return f.leaveBotFn(ctx, botID)
}

func (f *fakeBackend) GetMeetingData(ctx context.Context, botID string) (map[string]interface{}, error) {
	f.record("GetMeetingData")
	if f.getMeetingDataFn == nil {
		return nil, fmt.Errorf("unexpected call: GetMeetingData")
	}
	return f.getMeetingDataFn(ctx, botID)
}

func (f *fakeBackend) DeleteBotData(ctx context.Context, botID string) (bool, error) {
	f.record("DeleteBotData")
	if f.deleteBotDataFn == nil {
		return false, fmt.Errorf("unexpected call: DeleteBotData")
	}
	return f.deleteBotDataFn(ctx, botID)
}

func (f *fakeBackend) CreateCalendar(ctx context.Context, req *baas.CalendarRequest) (*baas.Calendar, error) {
	f.record("CreateCalendar")
	if f.createCalendarFn == nil {
		return nil, fmt.Errorf("unexpected call: CreateCalendar")
	}
	return f.createCalendarFn(ctx, req)
}

func (f *fakeBackend) ListCalendars(ctx context.Context) ([]baas.Calendar, error) {
	f.record("ListCalendars")
	if f.listCalendarsFn == nil {
		return nil, fmt.Errorf("unexpected call: ListCalendars")
	}
	return f.listCalendarsFn(ctx)
}

func (f *fakeBackend) GetCalendar(ctx context.Context, calendarID string) (*baas.Calendar, error) {
	f.record("GetCalendar")
	if f.getCalendarFn == nil {
		return nil, fmt.Errorf("unexpected call: GetCalendar")
	}
	return f.getCalendarFn(ctx, calendarID)
}

func (f *fakeBackend) UpdateCalendar(ctx context.Context, calendarID string, req *baas.CalendarRequest) (*baas.Calendar, error) {
	f.record("UpdateCalendar")
	if f.updateCalendarFn == nil {
		return nil, fmt.Errorf("unexpected call: UpdateCalendar")
	}
	return f.updateCalendarFn(ctx, calendarID, req)
}

func (f *fakeBackend) DeleteCalendar(ctx context.Context, calendarID string) (bool, error) {
	f.record("DeleteCalendar")
	if f.deleteCalendarFn == nil {
		return false, fmt.Errorf("unexpected call: DeleteCalendar")
	}
	return f.deleteCalendarFn(ctx, calendarID)
}

func (f *fakeBackend) ResyncAllCalendars(ctx context.Context) (map[string]interface{}, error) {
	f.record("ResyncAllCalendars")
	if f.resyncAllCalendarsFn == nil {
		return nil, fmt.Errorf("unexpected call: ResyncAllCalendars")
	}
	return f.resyncAllCalendarsFn(ctx)
}

func (f *fakeBackend) ListBots(ctx context.Context, params *baas.ListBotsParams) (map[string]interface{}, error) {
	f.record("ListBots")
	if f.listBotsFn == nil {
		return nil, fmt.Errorf("unexpected call: ListBots")
	}
	return f.listBotsFn(ctx, params)
}

func (f *fakeBackend) ListEvents(ctx context.Context, calendarID string, params *baas.ListEventsParams) ([]baas.CalendarEvent, error) {
	f.record("ListEvents")
	if f.listEventsFn == nil {
		return nil, fmt.Errorf("unexpected call: ListEvents")
	}
	return f.listEventsFn(ctx, calendarID, params)
}

func (f *fakeBackend) ScheduleRecordEvent(ctx context.Context, eventUUID string, req *baas.ScheduleRequest) ([]baas.CalendarEvent, error) {
	f.record("ScheduleRecordEvent")
	if f.scheduleFn == nil {
		return nil, fmt.Errorf("unexpected call: ScheduleRecordEvent")
	}
	return f.scheduleFn(ctx, eventUUID, req)
}

func (f *fakeBackend) UnscheduleRecordEvent(ctx context.Context, eventUUID string, allOccurrences bool) ([]baas.CalendarEvent, error) {
	f.record("UnscheduleRecordEvent")
	if f.unscheduleFn == nil {
		return nil, fmt.Errorf("unexpected call: UnscheduleRecordEvent")
	}
	return f.unscheduleFn(ctx, eventUUID, allOccurrences)
}
