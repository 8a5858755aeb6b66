package baas

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/meeting-baas/meeting-mcp/internal/config"
)

const apiKeyHeader = "x-meeting-baas-api-key"

// APIError is a non-2xx response from the Meeting BaaS API. It is logged for
// operator diagnosis and never forwarded verbatim to the calling agent.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("meeting baas api returned %d: %s", e.Status, e.Body)
}

// Client is a thin HTTP client for the Meeting BaaS API. The zero retry and
// zero caching policy is intentional; a single Client is shared by all tools
// and is safe for concurrent use.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient creates a new Meeting BaaS client
func NewClient(cfg *config.APIConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.GetBaseURL(), "/"),
		apiKey:  cfg.GetAPIKey(),
		http:    &http.Client{Timeout: cfg.GetTimeout()},
	}
}

// CreateBot deploys a bot into a meeting and returns its ID
func (c *Client) CreateBot(ctx context.Context, req *JoinRequest) (string, error) {
	var resp struct {
		BotID string `json:"bot_id"`
	}
	if err := c.do(ctx, http.MethodPost, "/bots", nil, req, &resp); err != nil {
		return "", fmt.Errorf("failed to create bot: %w", err)
	}
	return resp.BotID, nil
}

// LeaveBot removes a bot from its meeting
func (c *Client) LeaveBot(ctx context.Context, botID string) (bool, error) {
	var resp struct {
		OK bool `json:"ok"`
	}
	if err := c.do(ctx, http.MethodDelete, "/bots/"+url.PathEscape(botID), nil, nil, &resp); err != nil {
		return false, fmt.Errorf("failed to remove bot: %w", err)
	}
	return resp.OK, nil
}

// GetMeetingData fetches all recorded data for a bot's meeting
func (c *Client) GetMeetingData(ctx context.Context, botID string) (map[string]interface{}, error) {
	query := url.Values{"bot_id": []string{botID}}
	var resp map[string]interface{}
	if err := c.do(ctx, http.MethodGet, "/bots/meeting_data", query, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch meeting data: %w", err)
	}
	return resp, nil
}

// DeleteBotData deletes all data associated with a bot's meeting
func (c *Client) DeleteBotData(ctx context.Context, botID string) (bool, error) {
	var resp struct {
		OK bool `json:"ok"`
	}
	if err := c.do(ctx, http.MethodPost, "/bots/"+url.PathEscape(botID)+"/delete_data", nil, nil, &resp); err != nil {
		return false, fmt.Errorf("failed to delete bot data: %w", err)
	}
	return resp.OK, nil
}

// CreateCalendar creates a new calendar connection
func (c *Client) CreateCalendar(ctx context.Context, req *CalendarRequest) (*Calendar, error) {
	var resp struct {
		Calendar Calendar `json:"calendar"`
	}
	if err := c.do(ctx, http.MethodPost, "/calendars", nil, req, &resp); err != nil {
		return nil, fmt.Errorf("failed to create calendar: %w", err)
	}
	return &resp.Calendar, nil
}

// ListCalendars lists all calendar connections
func (c *Client) ListCalendars(ctx context.Context) ([]Calendar, error) {
	var resp []Calendar
	if err := c.do(ctx, http.MethodGet, "/calendars", nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to list calendars: %w", err)
	}
	return resp, nil
}

// GetCalendar fetches one calendar connection
func (c *Client) GetCalendar(ctx context.Context, calendarID string) (*Calendar, error) {
	var resp struct {
		Calendar Calendar `json:"calendar"`
	}
	if err := c.do(ctx, http.MethodGet, "/calendars/"+url.PathEscape(calendarID), nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch calendar: %w", err)
	}
	return &resp.Calendar, nil
}

// UpdateCalendar updates a calendar connection's OAuth credentials
func (c *Client) UpdateCalendar(ctx context.Context, calendarID string, req *CalendarRequest) (*Calendar, error) {
	var resp struct {
		Calendar Calendar `json:"calendar"`
	}
	if err := c.do(ctx, http.MethodPatch, "/calendars/"+url.PathEscape(calendarID), nil, req, &resp); err != nil {
		return nil, fmt.Errorf("failed to update calendar: %w", err)
	}
	return &resp.Calendar, nil
}

// DeleteCalendar removes a calendar connection
func (c *Client) DeleteCalendar(ctx context.Context, calendarID string) (bool, error) {
	if err := c.do(ctx, http.MethodDelete, "/calendars/"+url.PathEscape(calendarID), nil, nil, nil); err != nil {
		return false, fmt.Errorf("failed to delete calendar: %w", err)
	}
	return true, nil
}

// ResyncAllCalendars forces a refresh of every connected calendar
func (c *Client) ResyncAllCalendars(ctx context.Context) (map[string]interface{}, error) {
	var resp map[string]interface{}
	if err := c.do(ctx, http.MethodPost, "/calendars/resync_all", nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to resync calendars: %w", err)
	}
	return resp, nil
}

// ListBots searches bots with metadata by filter criteria
func (c *Client) ListBots(ctx context.Context, params *ListBotsParams) (map[string]interface{}, error) {
	query := url.Values{}
	if params != nil {
		setIfPresent(query, "cursor", params.Cursor)
		setIfPresent(query, "bot_name", params.BotName)
		setIfPresent(query, "meeting_url", params.MeetingURL)
		setIfPresent(query, "speaker_name", params.SpeakerName)
		setIfPresent(query, "created_after", params.CreatedAfter)
		setIfPresent(query, "created_before", params.CreatedBefore)
		if params.Limit > 0 {
			query.Set("limit", strconv.Itoa(params.Limit))
		}
		if len(params.FilterByExtra) > 0 {
			extra, err := json.Marshal(params.FilterByExtra)
			if err != nil {
				return nil, fmt.Errorf("failed to encode extra filter: %w", err)
			}
			query.Set("filter_by_extra", string(extra))
		}
	}

	var resp map[string]interface{}
	if err := c.do(ctx, http.MethodGet, "/bots/bots_with_metadata", query, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to list bots: %w", err)
	}
	return resp, nil
}

// ListEvents lists events on a connected calendar
func (c *Client) ListEvents(ctx context.Context, calendarID string, params *ListEventsParams) ([]CalendarEvent, error) {
	query := url.Values{"calendar_id": []string{calendarID}}
	if params != nil {
		setIfPresent(query, "status", params.Status)
		setIfPresent(query, "cursor", params.Cursor)
		if params.Limit > 0 {
			query.Set("limit", strconv.Itoa(params.Limit))
		}
	}

	var resp struct {
		Data []CalendarEvent `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/calendar_events", query, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return resp.Data, nil
}

// ScheduleRecordEvent schedules an automatic recording for a calendar event
func (c *Client) ScheduleRecordEvent(ctx context.Context, eventUUID string, req *ScheduleRequest) ([]CalendarEvent, error) {
	query := url.Values{}
	if req != nil && req.AllOccurrences {
		query.Set("all_occurrences", "true")
	}
	var resp []CalendarEvent
	if err := c.do(ctx, http.MethodPost, "/calendar_events/"+url.PathEscape(eventUUID)+"/bot", query, req, &resp); err != nil {
		return nil, fmt.Errorf("failed to schedule recording: %w", err)
	}
	return resp, nil
}

// UnscheduleRecordEvent removes a scheduled recording from a calendar event
func (c *Client) UnscheduleRecordEvent(ctx context.Context, eventUUID string, allOccurrences bool) ([]CalendarEvent, error) {
	query := url.Values{}
	if allOccurrences {
		query.Set("all_occurrences", "true")
	}
	var resp []CalendarEvent
	if err := c.do(ctx, http.MethodDelete, "/calendar_events/"+url.PathEscape(eventUUID)+"/bot", query, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to unschedule recording: %w", err)
	}
	return resp, nil
}

// do performs one API call. Requests carry the API key header and a JSON
// body when provided; responses are decoded into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{Status: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func setIfPresent(query url.Values, key, value string) {
	if value != "" {
		query.Set(key, value)
	}
}
