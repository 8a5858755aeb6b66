package baas

// SpeechToText configures transcription for a bot
type SpeechToText struct {
	Provider string `json:"provider"`
}

// JoinRequest is the payload for deploying a bot into a meeting
type JoinRequest struct {
	MeetingURL   string                 `json:"meeting_url"`
	BotName      string                 `json:"bot_name"`
	BotImage     *string                `json:"bot_image,omitempty"`
	EntryMessage *string                `json:"entry_message,omitempty"`
	Reserved     bool                   `json:"reserved"`
	StartTime    *float64               `json:"start_time,omitempty"`
	SpeechToText *SpeechToText          `json:"speech_to_text,omitempty"`
	Extra        map[string]interface{} `json:"extra,omitempty"`
}

// CalendarRequest is the payload for creating or updating a calendar connection
type CalendarRequest struct {
	OAuthClientID     string  `json:"oauth_client_id"`
	OAuthClientSecret string  `json:"oauth_client_secret"`
	OAuthRefreshToken string  `json:"oauth_refresh_token"`
	Platform          string  `json:"platform"`
	RawCalendarID     *string `json:"raw_calendar_id,omitempty"`
}

// Calendar is a connected calendar record
type Calendar struct {
	UUID       string `json:"uuid"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Platform   string `json:"platform"`
	ResourceID string `json:"resource_id,omitempty"`
}

// CalendarEvent is one event on a connected calendar
type CalendarEvent struct {
	UUID             string                 `json:"uuid"`
	Name             string                 `json:"name"`
	StartTime        string                 `json:"start_time"`
	EndTime          string                 `json:"end_time"`
	MeetingURL       string                 `json:"meeting_url,omitempty"`
	CalendarUUID     string                 `json:"calendar_uuid"`
	IsOrganizer      bool                   `json:"is_organizer"`
	IsRecurring      bool                   `json:"is_recurring"`
	BotParam         map[string]interface{} `json:"bot_param,omitempty"`
	Attendees        []Attendee             `json:"attendees,omitempty"`
	LastUpdatedAt    string                 `json:"last_updated_at,omitempty"`
	DeletedAt        string                 `json:"deleted_at,omitempty"`
	RecurringEventID string                 `json:"recurring_event_id,omitempty"`
}

// Attendee is one participant on a calendar event
type Attendee struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

// ScheduleRequest configures an automatic recording for a calendar event
type ScheduleRequest struct {
	BotName        *string                `json:"bot_name,omitempty"`
	AllOccurrences bool                   `json:"all_occurrences,omitempty"`
	Extra          map[string]interface{} `json:"extra,omitempty"`
}

// ListBotsParams are the filter and pagination parameters for bot search
type ListBotsParams struct {
	Cursor        string
	Limit         int
	BotName       string
	MeetingURL    string
	SpeakerName   string
	CreatedAfter  string
	CreatedBefore string
	FilterByExtra map[string]interface{}
}

// ListEventsParams are the filter parameters for calendar event listing
type ListEventsParams struct {
	Status string
	Limit  int
	Cursor string
}
