package test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(hour, min, sec int) func() time.Time {
	return func() time.Time {
		return time.Date(2026, time.August, 26, hour, min, sec, 0, time.Local)
	}
}

func TestCheckEndpointInsideTriggerWindow(t *testing.T) {
	router, scheduler := newTestRouter(routerDeps{now: fixedClock(17, 5, 0)})
	defer scheduler.Stop()

	w := doJSON(t, router, http.MethodPost, "/api/notifications/check", map[string]any{
		"timeString": "06:05 PM to 06:30 PM",
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		ShouldTrigger bool   `json:"shouldTrigger"`
		CurrentTime   string `json:"currentTime"`
		AlertTime     string `json:"alertTime"`
		TargetTime    string `json:"targetTime"`
		DiffSeconds   int    `json:"diffSeconds"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.ShouldTrigger)
	assert.Equal(t, "17:05:00", resp.CurrentTime)
	assert.Equal(t, "17:05:00", resp.AlertTime)
	assert.Equal(t, "18:05:00", resp.TargetTime)
	assert.Equal(t, 0, resp.DiffSeconds)
}

func TestCheckEndpointOutsideTriggerWindow(t *testing.T) {
	router, scheduler := newTestRouter(routerDeps{now: fixedClock(17, 5, 31)})
	defer scheduler.Stop()

	w := doJSON(t, router, http.MethodPost, "/api/notifications/check", map[string]any{
		"timeString": "06:05 PM to 06:30 PM",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		ShouldTrigger bool `json:"shouldTrigger"`
		DiffSeconds   int  `json:"diffSeconds"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.ShouldTrigger)
	assert.Equal(t, 31, resp.DiffSeconds)
}

func TestCheckEndpointAcceptsDurMuhurtamAlias(t *testing.T) {
	router, scheduler := newTestRouter(routerDeps{now: fixedClock(17, 5, 0)})
	defer scheduler.Stop()

	w := doJSON(t, router, http.MethodPost, "/api/notifications/check", map[string]any{
		"durMuhurtam": "06:05 PM to 06:30 PM",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		ShouldTrigger bool `json:"shouldTrigger"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.ShouldTrigger)
}

func TestCheckEndpointEmptyTimingIsSafeDefault(t *testing.T) {
	router, scheduler := newTestRouter(routerDeps{})
	defer scheduler.Stop()

	// Clients poll with whatever the day carries; a missing or undefined
	// timing replies with the quiet default, not an error.
	for _, body := range []map[string]any{{}, {"timeString": ""}, {"timeString": "-"}} {
		w := doJSON(t, router, http.MethodPost, "/api/notifications/check", body, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp struct {
			ShouldTrigger bool `json:"shouldTrigger"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.ShouldTrigger)
	}

	w := doJSON(t, router, http.MethodPost, "/api/notifications/status", map[string]any{}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var status struct {
		IsWithinOneHour bool `json:"isWithinOneHour"`
		HasPassed       bool `json:"hasPassed"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.False(t, status.IsWithinOneHour)
	assert.False(t, status.HasPassed)
}

func TestStatusEndpoint(t *testing.T) {
	router, scheduler := newTestRouter(routerDeps{now: fixedClock(17, 35, 0)})
	defer scheduler.Stop()

	w := doJSON(t, router, http.MethodPost, "/api/notifications/status", map[string]any{
		"timeString": "06:05 PM to 06:30 PM",
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		IsWithinOneHour   bool   `json:"isWithinOneHour"`
		HasPassed         bool   `json:"hasPassed"`
		MinutesUntilStart int    `json:"minutesUntilStart"`
		MuhurtaTime       string `json:"muhurtaTime"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.IsWithinOneHour)
	assert.False(t, resp.HasPassed)
	assert.Equal(t, 30, resp.MinutesUntilStart)
	assert.Equal(t, "18:05:00", resp.MuhurtaTime)
}

func TestStatusEndpointPassedWindow(t *testing.T) {
	router, scheduler := newTestRouter(routerDeps{now: fixedClock(18, 10, 0)})
	defer scheduler.Stop()

	w := doJSON(t, router, http.MethodPost, "/api/notifications/status", map[string]any{
		"timeString": "06:05 PM to 06:30 PM",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		IsWithinOneHour bool `json:"isWithinOneHour"`
		HasPassed       bool `json:"hasPassed"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.IsWithinOneHour)
	assert.True(t, resp.HasPassed)
}

func TestScheduleEndpoint(t *testing.T) {
	router, scheduler := newTestRouter(routerDeps{now: fixedClock(10, 0, 0)})
	defer scheduler.Stop()

	w := doJSON(t, router, http.MethodPost, "/api/notifications/schedule", map[string]any{
		"durMuhurtam": "02:30 PM to 03:00 PM",
		"date":        "26/08/2026",
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Scheduled      bool   `json:"scheduled"`
		AlertTime      string `json:"alertTime"`
		TimeUntilAlert string `json:"timeUntilAlert"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Scheduled)
	assert.Equal(t, "01:30 PM", resp.AlertTime)
	assert.Equal(t, "12600 seconds", resp.TimeUntilAlert)
}

func TestScheduleEndpointPastTime(t *testing.T) {
	router, scheduler := newTestRouter(routerDeps{now: fixedClock(16, 0, 0)})
	defer scheduler.Stop()

	w := doJSON(t, router, http.MethodPost, "/api/notifications/schedule", map[string]any{
		"durMuhurtam": "02:30 PM to 03:00 PM",
		"date":        "26/08/2026",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Scheduled bool   `json:"scheduled"`
		Message   string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Scheduled)
	assert.Equal(t, "Durmuhurtham time has already passed today", resp.Message)
}

func TestLanguageEndpointConfirmsSwitch(t *testing.T) {
	router, scheduler := newTestRouter(routerDeps{})
	defer scheduler.Stop()

	w := doJSON(t, router, http.MethodPost, "/api/notifications/language", map[string]any{
		"language": "te",
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Language string `json:"language"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "te", resp.Language)

	w = doJSON(t, router, http.MethodPost, "/api/notifications/language", map[string]any{}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestScheduledListingRequiresAuth(t *testing.T) {
	router, scheduler := newTestRouter(routerDeps{now: fixedClock(10, 0, 0)})
	defer scheduler.Stop()

	w := doJSON(t, router, http.MethodPost, "/api/notifications/schedule", map[string]any{
		"durMuhurtam": "02:30 PM to 03:00 PM",
		"date":        "26/08/2026",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/admin/notifications/scheduled", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/admin/auth/signup", map[string]any{
		"email":    "priest@example.com",
		"password": "password123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	var signup struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &signup))

	w = doJSON(t, router, http.MethodGet, "/api/admin/notifications/scheduled", nil, signup.Token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Dates []string `json:"dates"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"26/08/2026"}, resp.Dates)
}

func TestPollerStateEndpoint(t *testing.T) {
	router, scheduler := newTestRouter(routerDeps{})
	defer scheduler.Stop()

	w := doJSON(t, router, http.MethodGet, "/api/notifications/poller", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		State    string `json:"state"`
		Language string `json:"language"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "idle", resp.State)
	assert.Equal(t, "en", resp.Language)
}
