package server

import (
	"github.com/meeting-baas/meeting-mcp/internal/config"
)

// Tool groups toggled by feature flags. A tool missing from every group is
// always exposed.
var (
	meetingToolNames = []string{
		"joinMeeting",
		"leaveMeeting",
		"getMeetingData",
		"deleteMeetingData",
	}
	calendarToolNames = []string{
		"createCalendar",
		"listCalendars",
		"getCalendar",
		"updateCalendar",
		"deleteCalendar",
		"resyncAllCalendars",
		"listEvents",
		"scheduleRecordEvent",
		"unscheduleRecordEvent",
	}
	searchToolNames = []string{
		"botsWithMetadata",
	}
	diagnosticToolNames = []string{
		"echo",
	}
)

// ToolFilter decides which registered tools are advertised and callable,
// based on the feature flags in the configuration.
type ToolFilter struct {
	disabled map[string]bool
}

// NewToolFilter builds a filter from feature flags. Absent flags leave the
// group enabled.
func NewToolFilter(features *config.FeaturesConfig) *ToolFilter {
	f := &ToolFilter{disabled: make(map[string]bool)}
	if features == nil {
		return f
	}
	f.applyFlag(features.Meetings, meetingToolNames)
	f.applyFlag(features.Calendars, calendarToolNames)
	f.applyFlag(features.Search, searchToolNames)
	f.applyFlag(features.Diagnostics, diagnosticToolNames)
	return f
}

func (f *ToolFilter) applyFlag(flag *config.FeatureFlag, names []string) {
	if flag == nil || flag.Enabled {
		return
	}
	for _, name := range names {
		f.disabled[name] = true
	}
}

// Allowed reports whether the named tool is exposed
func (f *ToolFilter) Allowed(name string) bool {
	return !f.disabled[name]
}
