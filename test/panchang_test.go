package test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panchang-seva/panchangam/internal/model"
)

func seedAugust(t *testing.T, store *memStore) {
	t.Helper()
	days := []model.Day{
		{
			Date:      "25/08/2026",
			Weekday:   "Tuesday",
			Tithi:     "Trayodashi upto 11:42 AM",
			Nakshatra: "Swati",
			RahuKalam: "03:30 PM to 05:00 PM",
		},
		{
			Date:      "26/08/2026",
			Weekday:   "Wednesday",
			Tithi:     "Chaturdashi upto 01:02 PM",
			Nakshatra: "Vishaka",
			RahuKalam: "12:00 PM to 01:30 PM",
		},
	}
	for i := range days {
		require.NoError(t, store.UpsertDay(&days[i]))
	}
	require.NoError(t, store.ReplaceFestivals(2026, map[string][]string{
		"26/08/2026": {"Masik Shivaratri"},
	}))
}

func TestGetDayByDate(t *testing.T) {
	store := newMemStore()
	seedAugust(t, store)
	router, scheduler := newTestRouter(routerDeps{store: store})
	defer scheduler.Stop()

	w := doJSON(t, router, http.MethodGet, "/api/panchang/days/26-08-2026", nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var day model.Day
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &day))
	assert.Equal(t, "26/08/2026", day.Date)
	assert.Equal(t, "Chaturdashi upto 01:02 PM", day.Tithi)
	assert.Equal(t, []string{"Masik Shivaratri"}, day.Festivals)
}

func TestGetDayRejectsBadDateFormat(t *testing.T) {
	router, scheduler := newTestRouter(routerDeps{})
	defer scheduler.Stop()

	w := doJSON(t, router, http.MethodGet, "/api/panchang/days/2026-08-26", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetDayNotFound(t *testing.T) {
	router, scheduler := newTestRouter(routerDeps{})
	defer scheduler.Stop()

	w := doJSON(t, router, http.MethodGet, "/api/panchang/days/01-01-1901", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListMonth(t *testing.T) {
	store := newMemStore()
	seedAugust(t, store)
	router, scheduler := newTestRouter(routerDeps{store: store})
	defer scheduler.Stop()

	w := doJSON(t, router, http.MethodGet, "/api/panchang/days?year=2026&month=8", nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Year  int         `json:"year"`
		Month int         `json:"month"`
		Days  []model.Day `json:"days"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2026, resp.Year)
	assert.Equal(t, 8, resp.Month)
	require.Len(t, resp.Days, 2)
	assert.Equal(t, "25/08/2026", resp.Days[0].Date)

	w = doJSON(t, router, http.MethodGet, "/api/panchang/days?year=2026&month=13", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetFestivals(t *testing.T) {
	store := newMemStore()
	seedAugust(t, store)
	router, scheduler := newTestRouter(routerDeps{store: store})
	defer scheduler.Stop()

	w := doJSON(t, router, http.MethodGet, "/api/panchang/festivals/2026/26-08", nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Date      string   `json:"date"`
		Festivals []string `json:"festivals"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "26/08/2026", resp.Date)
	assert.Equal(t, []string{"Masik Shivaratri"}, resp.Festivals)

	// a date with nothing stored replies with an empty list, not an error
	w = doJSON(t, router, http.MethodGet, "/api/panchang/festivals/2026/27-08", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Festivals)
}
