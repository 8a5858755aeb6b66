package tools

// RegisterAllTools registers the complete tool catalogue with the registry.
// The catalogue is fixed at startup; any registration failure is fatal.
func RegisterAllTools(registry *Registry, backend Backend) error {
	return registry.RegisterAll(
		// Meeting bot tools
		NewJoinMeetingTool(backend),
		NewLeaveMeetingTool(backend),
		NewGetMeetingDataTool(backend),
		NewDeleteMeetingDataTool(backend),

		// Calendar tools
		NewCreateCalendarTool(backend),
		NewListCalendarsTool(backend),
		NewGetCalendarTool(backend),
		NewUpdateCalendarTool(backend),
		NewDeleteCalendarTool(backend),
		NewResyncAllCalendarsTool(backend),
		NewListEventsTool(backend),
		NewScheduleRecordEventTool(backend),
		NewUnscheduleRecordEventTool(backend),

		// Search tools
		NewBotsWithMetadataTool(backend),

		// Diagnostics
		NewEchoTool(),
	)
}
