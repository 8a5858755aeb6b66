package baas

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meeting-baas/meeting-mcp/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	apiKey := "test-api-key"
	client := NewClient(&config.APIConfig{
		APIKey:  &apiKey,
		BaseURL: &server.URL,
	})
	return client, server
}

func TestCreateBotSendsKeyAndBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/bots", r.URL.Path)
		assert.Equal(t, "test-api-key", r.Header.Get("x-meeting-baas-api-key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "https://meet.example.com/abc", body["meeting_url"])
		assert.Equal(t, "Recorder", body["bot_name"])

		json.NewEncoder(w).Encode(map[string]string{"bot_id": "bot-123"})
	})

	botID, err := client.CreateBot(context.Background(), &JoinRequest{
		MeetingURL: "https://meet.example.com/abc",
		BotName:    "Recorder",
	})
	require.NoError(t, err)
	assert.Equal(t, "bot-123", botID)
}

func TestLeaveBotParsesStatus(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/bots/bot-123", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]bool{"ok": false})
	})

	ok, err := client.LeaveBot(context.Background(), "bot-123")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGetMeetingDataQuery(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bots/meeting_data", r.URL.Path)
		assert.Equal(t, "bot-123", r.URL.Query().Get("bot_id"))
		json.NewEncoder(w).Encode(map[string]interface{}{"mp4": "https://storage.example.com/rec.mp4"})
	})

	data, err := client.GetMeetingData(context.Background(), "bot-123")
	require.NoError(t, err)
	assert.Equal(t, "https://storage.example.com/rec.mp4", data["mp4"])
}

func TestNon2xxBecomesAPIError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid api key"}`))
	})

	_, err := client.GetMeetingData(context.Background(), "bot-123")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Contains(t, apiErr.Body, "invalid api key")
}

func TestDeleteCalendarTreatsNoContentAsSuccess(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/calendars/cal-1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	ok, err := client.DeleteCalendar(context.Background(), "cal-1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCreateCalendarUnwrapsEnvelope(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"calendar": map[string]interface{}{
				"uuid":     "cal-1",
				"name":     "Team",
				"platform": "Google",
			},
		})
	})

	calendar, err := client.CreateCalendar(context.Background(), &CalendarRequest{
		OAuthClientID:     "id",
		OAuthClientSecret: "secret",
		OAuthRefreshToken: "token",
		Platform:          "Google",
	})
	require.NoError(t, err)
	assert.Equal(t, "cal-1", calendar.UUID)
	assert.Equal(t, "Team", calendar.Name)
}

func TestListBotsEncodesFilters(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bots/bots_with_metadata", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "Recorder", q.Get("bot_name"))
		assert.Equal(t, "10", q.Get("limit"))
		assert.Equal(t, "page-2", q.Get("cursor"))

		var extra map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(q.Get("filter_by_extra")), &extra))
		assert.Equal(t, "cust-9", extra["customerId"])

		json.NewEncoder(w).Encode(map[string]interface{}{"bots": []interface{}{}})
	})

	_, err := client.ListBots(context.Background(), &ListBotsParams{
		BotName:       "Recorder",
		Limit:         10,
		Cursor:        "page-2",
		FilterByExtra: map[string]interface{}{"customerId": "cust-9"},
	})
	require.NoError(t, err)
}

func TestListEventsUnwrapsData(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/calendar_events", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "cal-1", q.Get("calendar_id"))
		assert.Equal(t, "upcoming", q.Get("status"))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []map[string]interface{}{{"uuid": "evt-1", "name": "Standup"}},
		})
	})

	events, err := client.ListEvents(context.Background(), "cal-1", &ListEventsParams{Status: "upcoming"})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "evt-1", events[0].UUID)
}

func TestScheduleRecordEventAllOccurrences(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/calendar_events/evt-9/bot", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("all_occurrences"))
		json.NewEncoder(w).Encode([]map[string]interface{}{{"uuid": "evt-9"}})
	})

	botName := "Recorder"
	events, err := client.ScheduleRecordEvent(context.Background(), "evt-9", &ScheduleRequest{
		BotName:        &botName,
		AllOccurrences: true,
	})
	require.NoError(t, err)
	require.Len(t, events, 1)
}

func TestUnscheduleRecordEvent(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/calendar_events/evt-9/bot", r.URL.Path)
		assert.Empty(t, r.URL.Query().Get("all_occurrences"))
		json.NewEncoder(w).Encode([]map[string]interface{}{})
	})

	_, err := client.UnscheduleRecordEvent(context.Background(), "evt-9", false)
	require.NoError(t, err)
}
